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

type BookingRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewBookingRepo(db *mongo.Database) *BookingRepository {
	return &BookingRepository{
		col: db.Collection(bookingsCollection),
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a pending booking. The partial unique index on the house
// field turns a lost check-then-insert race into a duplicate key error.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	_, err := r.col.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrHouseAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := findOneWithRetry(r.strategy, func() *mongo.SingleResult {
		return r.col.FindOne(ctx, bson.M{"_id": id})
	}, &b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) FindActiveByHouse(ctx context.Context, houseID string) (*domain.Booking, error) {
	return r.findActive(ctx, bson.M{
		"house":  houseID,
		"status": bson.M{"$in": domain.ActiveStatuses},
	})
}

func (r *BookingRepository) FindActiveByHouseAndTenant(ctx context.Context, houseID, tenantID string) (*domain.Booking, error) {
	return r.findActive(ctx, bson.M{
		"house":  houseID,
		"tenant": tenantID,
		"status": bson.M{"$in": domain.ActiveStatuses},
	})
}

func (r *BookingRepository) findActive(ctx context.Context, filter bson.M) (*domain.Booking, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var b domain.Booking
	err := findOneWithRetry(r.strategy, func() *mongo.SingleResult {
		return r.col.FindOne(ctx, filter, opts)
	}, &b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find active booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b domain.Booking
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"tenant": tenantID})
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"owner": ownerID})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var bookings []*domain.Booking
	err := retry.Do(func() error {
		cursor, err := r.col.Find(ctx, filter, opts)
		if err != nil {
			return err
		}
		bookings = bookings[:0]
		return cursor.All(ctx, &bookings)
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}
