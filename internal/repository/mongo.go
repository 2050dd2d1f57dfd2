package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Raghuramreddyu/House-Rental-System/internal/config"
	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	housesCollection   = "houses"
	bookingsCollection = "bookings"
)

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the repositories rely on. Replaces
// SQL migrations: safe to run on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = db.Collection(housesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "address.city", Value: "text"},
			{Key: "address.state", Value: "text"},
		},
	})
	if err != nil {
		return fmt.Errorf("houses text index: %w", err)
	}

	// At most one active booking per house, enforced by the store so that
	// concurrent booking requests cannot both slip past the pre-check.
	// The $in filter needs MongoDB 6.0+.
	_, err = db.Collection(bookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "house", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": domain.ActiveStatuses},
			}),
	})
	if err != nil {
		return fmt.Errorf("bookings active-per-house index: %w", err)
	}

	return nil
}

// findOneWithRetry retries transient lookup failures. ErrNoDocuments is the
// expected miss and is returned straight away instead of being retried.
func findOneWithRetry(strategy retry.Strategy, find func() *mongo.SingleResult, v any) error {
	var decodeErr error
	err := retry.Do(func() error {
		decodeErr = find().Decode(v)
		if errors.Is(decodeErr, mongo.ErrNoDocuments) {
			return nil
		}
		return decodeErr
	}, strategy)
	if err != nil {
		return err
	}
	return decodeErr
}

