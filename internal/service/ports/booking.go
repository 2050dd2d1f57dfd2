package ports

import (
	"context"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindActiveByHouse returns the active (pending or approved) booking for a
	// house, or domain.ErrBookingNotFound when there is none.
	FindActiveByHouse(ctx context.Context, houseID string) (*domain.Booking, error)
	FindActiveByHouseAndTenant(ctx context.Context, houseID, tenantID string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
}
