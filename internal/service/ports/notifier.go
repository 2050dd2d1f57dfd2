package ports

import (
	"context"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, owner *domain.User, house *domain.House, tenant *domain.User)
	NotifyBookingApproved(ctx context.Context, tenant *domain.User, house *domain.House)
	NotifyBookingRejected(ctx context.Context, tenant *domain.User, house *domain.House)
}
