package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/Raghuramreddyu/House-Rental-System/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	houseRepo   ports.HouseRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	houseRepo ports.HouseRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		houseRepo:   houseRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Request creates a pending booking for a house on behalf of a tenant.
// Owners cannot book at all, nobody can book their own house, and a house
// with an active booking cannot be booked again. The existence pre-check
// keeps the observed error message; the unique index in the store catches
// the concurrent case the pre-check cannot.
func (s *BookingService) Request(ctx context.Context, houseID, tenantID string) (*domain.Booking, error) {
	house, err := s.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return nil, fmt.Errorf("check house: %w", err)
	}

	tenant, err := s.userRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("check tenant: %w", err)
	}

	if tenantID == house.OwnerID {
		return nil, domain.ErrOwnHouseBooking
	}
	if tenant.Role == domain.RoleOwner {
		return nil, domain.ErrOwnerCannotBook
	}

	_, err = s.bookingRepo.FindActiveByHouse(ctx, houseID)
	if err == nil {
		return nil, domain.ErrHouseAlreadyBooked
	}
	if !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		HouseID:     houseID,
		TenantID:    tenantID,
		OwnerID:     house.OwnerID,
		Status:      domain.BookingStatusPending,
		BookingDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// Lost race against a concurrent request: surface the same
		// conflict as the pre-check.
		if errors.Is(err, domain.ErrHouseAlreadyBooked) {
			return nil, domain.ErrHouseAlreadyBooked
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking requested",
		logger.String("booking_id", booking.ID),
		logger.String("house_id", houseID),
		logger.String("tenant_id", tenantID),
	)

	if owner, err := s.userRepo.GetByID(ctx, house.OwnerID); err == nil {
		go s.notifier.NotifyBookingRequested(context.WithoutCancel(ctx), owner, house, tenant)
	} else {
		s.logger.Error("failed to get owner for notification",
			logger.String("owner_id", house.OwnerID),
			logger.String("error", err.Error()),
		)
	}

	return booking, nil
}

// UpdateStatus lets the house owner resolve a booking. Only the two
// terminal statuses are accepted; there is no way back to pending.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, requesterID string, status domain.BookingStatus) (*domain.Booking, error) {
	if status != domain.BookingStatusApproved && status != domain.BookingStatusRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: only the house owner can update this booking", domain.ErrForbidden)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", bookingID),
		logger.String("status", string(status)),
	)

	go s.notifyResolved(context.WithoutCancel(ctx), updated)

	return updated, nil
}

// CheckExisting returns the caller's most recent active booking for a
// house, or nil when there is none. Backs the client's "book now" button.
func (s *BookingService) CheckExisting(ctx context.Context, houseID, tenantID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindActiveByHouseAndTenant(ctx, houseID, tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("check existing booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) ListForTenant(ctx context.Context, tenantID string) ([]*domain.BookingDetails, error) {
	bookings, err := s.bookingRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list tenant bookings: %w", err)
	}

	return s.expand(ctx, bookings), nil
}

func (s *BookingService) ListForOwner(ctx context.Context, ownerID string) ([]*domain.BookingDetails, error) {
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner bookings: %w", err)
	}

	return s.expand(ctx, bookings), nil
}

// expand joins each booking with its house and the names of both parties.
// Bookings whose house or users have meanwhile disappeared are skipped.
func (s *BookingService) expand(ctx context.Context, bookings []*domain.Booking) []*domain.BookingDetails {
	res := make([]*domain.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		house, err := s.houseRepo.GetByID(ctx, b.HouseID)
		if err != nil {
			s.logger.Error("failed to expand booking house",
				logger.String("booking_id", b.ID),
				logger.String("house_id", b.HouseID),
			)
			continue
		}

		tenant, err := s.userRepo.GetByID(ctx, b.TenantID)
		if err != nil {
			s.logger.Error("failed to expand booking tenant",
				logger.String("booking_id", b.ID),
				logger.String("tenant_id", b.TenantID),
			)
			continue
		}

		owner, err := s.userRepo.GetByID(ctx, b.OwnerID)
		if err != nil {
			s.logger.Error("failed to expand booking owner",
				logger.String("booking_id", b.ID),
				logger.String("owner_id", b.OwnerID),
			)
			continue
		}

		res = append(res, &domain.BookingDetails{
			Booking:    *b,
			House:      *house,
			TenantName: tenant.Name,
			OwnerName:  owner.Name,
		})
	}

	return res
}

func (s *BookingService) notifyResolved(ctx context.Context, booking *domain.Booking) {
	tenant, err := s.userRepo.GetByID(ctx, booking.TenantID)
	if err != nil {
		s.logger.Error("failed to get tenant for notification",
			logger.String("tenant_id", booking.TenantID),
		)
		return
	}

	house, err := s.houseRepo.GetByID(ctx, booking.HouseID)
	if err != nil {
		s.logger.Error("failed to get house for notification",
			logger.String("house_id", booking.HouseID),
		)
		return
	}

	switch booking.Status {
	case domain.BookingStatusApproved:
		s.notifier.NotifyBookingApproved(ctx, tenant, house)
	case domain.BookingStatusRejected:
		s.notifier.NotifyBookingRejected(ctx, tenant, house)
	}
}
