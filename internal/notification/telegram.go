package notification

import (
	"context"
	"fmt"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking lifecycle updates to users who linked a
// telegram chat at registration. Without a bot token it degrades to a
// no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, owner *domain.User, house *domain.House, tenant *domain.User) {
	text := fmt.Sprintf(
		"*New booking request*\n\nHouse: %s\nTenant: %s\nApprove or reject it in your property bookings.",
		house.Title, tenant.Name,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, tenant *domain.User, house *domain.House) {
	text := fmt.Sprintf(
		"*Booking approved!*\n\nHouse: %s\nThe owner approved your booking request.",
		house.Title,
	)
	n.send(ctx, tenant.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, tenant *domain.User, house *domain.House) {
	text := fmt.Sprintf(
		"*Booking rejected*\n\nHouse: %s\nThe owner rejected your booking request. You can request again later.",
		house.Title,
	)
	n.send(ctx, tenant.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
