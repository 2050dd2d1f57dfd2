package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HouseRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewHouseRepo(db *mongo.Database) *HouseRepository {
	return &HouseRepository{
		col: db.Collection(housesCollection),
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HouseRepository) Create(ctx context.Context, h *domain.House) error {
	if _, err := r.col.InsertOne(ctx, h); err != nil {
		return fmt.Errorf("insert house: %w", err)
	}

	return nil
}

func (r *HouseRepository) GetByID(ctx context.Context, id string) (*domain.House, error) {
	var h domain.House
	err := findOneWithRetry(r.strategy, func() *mongo.SingleResult {
		return r.col.FindOne(ctx, bson.M{"_id": id})
	}, &h)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHouseNotFound
		}
		return nil, fmt.Errorf("get house: %w", err)
	}

	return &h, nil
}

// Search applies the optional filters conjunctively and returns the newest
// listings first. The result set is unbounded.
func (r *HouseRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.House, error) {
	query := bson.M{}

	if filter.Query != "" {
		query["$text"] = bson.M{"$search": filter.Query}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	if filter.Bedrooms != nil {
		query["bedrooms"] = *filter.Bedrooms
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var houses []*domain.House
	err := retry.Do(func() error {
		cursor, err := r.col.Find(ctx, query, opts)
		if err != nil {
			return err
		}
		houses = houses[:0]
		return cursor.All(ctx, &houses)
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("search houses: %w", err)
	}

	return houses, nil
}

func (r *HouseRepository) Update(ctx context.Context, h *domain.House) error {
	h.UpdatedAt = time.Now().UTC()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": h.ID}, h)
	if err != nil {
		return fmt.Errorf("update house: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHouseNotFound
	}

	return nil
}

func (r *HouseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete house: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHouseNotFound
	}

	return nil
}
