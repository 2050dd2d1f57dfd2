package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// ActiveStatuses are the statuses that block a house from being booked again.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}

type Booking struct {
	ID          string        `json:"id" bson:"_id"`
	HouseID     string        `json:"house_id" bson:"house"`
	TenantID    string        `json:"tenant_id" bson:"tenant"`
	OwnerID     string        `json:"owner_id" bson:"owner"`
	Status      BookingStatus `json:"status" bson:"status"`
	BookingDate time.Time     `json:"booking_date" bson:"booking_date"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// BookingDetails is a booking expanded with its house and party names,
// the shape both booking lists are served in.
type BookingDetails struct {
	Booking    Booking `json:"booking"`
	House      House   `json:"house"`
	TenantName string  `json:"tenant_name"`
	OwnerName  string  `json:"owner_name"`
}
