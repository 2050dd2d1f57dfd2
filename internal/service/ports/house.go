package ports

import (
	"context"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
)

type HouseRepo interface {
	Create(ctx context.Context, h *domain.House) error
	GetByID(ctx context.Context, id string) (*domain.House, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.House, error)
	Update(ctx context.Context, h *domain.House) error
	Delete(ctx context.Context, id string) error
}
