package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/Raghuramreddyu/House-Rental-System/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type HouseService struct {
	repo      ports.HouseRepo
	images    ports.ImageStore
	maxImages int
	logger    logger.Logger
}

func NewHouseService(repo ports.HouseRepo, images ports.ImageStore, maxImages int, logger logger.Logger) *HouseService {
	return &HouseService{
		repo:      repo,
		images:    images,
		maxImages: maxImages,
		logger:    logger,
	}
}

func (s *HouseService) Create(ctx context.Context, ownerID string, input domain.CreateHouseInput, images []*multipart.FileHeader) (*domain.House, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if input.Bedrooms <= 0 {
		return nil, fmt.Errorf("%w: bedrooms must be positive", domain.ErrValidation)
	}
	if input.Bathrooms <= 0 {
		return nil, fmt.Errorf("%w: bathrooms must be positive", domain.ErrValidation)
	}
	if input.SquareFeet <= 0 {
		return nil, fmt.Errorf("%w: square_feet must be positive", domain.ErrValidation)
	}

	refs, err := s.saveImages(ctx, images)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	house := &domain.House{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		SquareFeet:  input.SquareFeet,
		Address:     input.Address,
		Images:      refs,
		Amenities:   input.Amenities,
		OwnerID:     ownerID,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if house.Amenities == nil {
		house.Amenities = []string{}
	}

	if err := s.repo.Create(ctx, house); err != nil {
		return nil, fmt.Errorf("create house: %w", err)
	}

	s.logger.Info("house created",
		logger.String("house_id", house.ID),
		logger.String("owner_id", ownerID),
		logger.Int("images", len(refs)),
	)

	return house, nil
}

func (s *HouseService) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.House, error) {
	return s.repo.Search(ctx, filter)
}

func (s *HouseService) GetByID(ctx context.Context, id string) (*domain.House, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HouseService) Update(ctx context.Context, id, requesterID string, input domain.UpdateHouseInput, newImages []*multipart.FileHeader) (*domain.House, error) {
	house, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if house.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: only the owner can update this house", domain.ErrForbidden)
	}

	if input.Title != nil {
		house.Title = *input.Title
	}
	if input.Description != nil {
		house.Description = *input.Description
	}
	if input.Price != nil {
		house.Price = *input.Price
	}
	if input.Bedrooms != nil {
		house.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		house.Bathrooms = *input.Bathrooms
	}
	if input.SquareFeet != nil {
		house.SquareFeet = *input.SquareFeet
	}
	if input.Street != nil {
		house.Address.Street = *input.Street
	}
	if input.City != nil {
		house.Address.City = *input.City
	}
	if input.State != nil {
		house.Address.State = *input.State
	}
	if input.ZipCode != nil {
		house.Address.ZipCode = *input.ZipCode
	}
	if input.Amenities != nil {
		house.Amenities = input.Amenities
	}
	if input.Available != nil {
		house.Available = *input.Available
	}

	refs, err := s.saveImages(ctx, newImages)
	if err != nil {
		return nil, err
	}

	if input.ReplaceImages {
		s.removeImages(ctx, house.ID, house.Images)
		house.Images = refs
	} else {
		// Uploads extend the existing gallery by default.
		house.Images = append(house.Images, refs...)
	}

	if err := s.repo.Update(ctx, house); err != nil {
		return nil, fmt.Errorf("update house: %w", err)
	}

	return house, nil
}

// Delete removes the listing together with its stored images. Image file
// deletion is best effort: failures are logged and the record is removed
// regardless.
func (s *HouseService) Delete(ctx context.Context, id, requesterID string) error {
	house, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if house.OwnerID != requesterID {
		return fmt.Errorf("%w: only the owner can delete this house", domain.ErrForbidden)
	}

	s.removeImages(ctx, house.ID, house.Images)

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete house: %w", err)
	}

	s.logger.Info("house deleted",
		logger.String("house_id", id),
		logger.String("owner_id", requesterID),
	)

	return nil
}

func (s *HouseService) saveImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > s.maxImages {
		return nil, fmt.Errorf("%w: at most %d images allowed", domain.ErrValidation, s.maxImages)
	}

	refs := make([]string, 0, len(files))
	for _, f := range files {
		ref, err := s.images.Save(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

func (s *HouseService) removeImages(ctx context.Context, houseID string, refs []string) {
	for _, ref := range refs {
		if err := s.images.Remove(ctx, ref); err != nil {
			s.logger.Error("failed to remove house image",
				logger.String("house_id", houseID),
				logger.String("image", ref),
				logger.String("error", err.Error()),
			)
		}
	}
}
