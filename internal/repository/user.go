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
)

type UserRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewUserRepo(db *mongo.Database) *UserRepository {
	return &UserRepository{
		col: db.Collection(usersCollection),
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := findOneWithRetry(r.strategy, func() *mongo.SingleResult {
		return r.col.FindOne(ctx, bson.M{"_id": id})
	}, &u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := findOneWithRetry(r.strategy, func() *mongo.SingleResult {
		return r.col.FindOne(ctx, bson.M{"email": email})
	}, &u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &u, nil
}
