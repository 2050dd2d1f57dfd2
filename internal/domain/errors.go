package domain

import "errors"

var (
	ErrHouseNotFound   = errors.New("House not found")
	ErrUserNotFound    = errors.New("User not found")
	ErrBookingNotFound = errors.New("Booking not found")
)

var (
	ErrHouseAlreadyBooked = errors.New("House is already booked or has a pending booking")
	ErrOwnHouseBooking    = errors.New("You cannot book your own house")
	ErrOwnerCannotBook    = errors.New("Property owners cannot make bookings")
)

var (
	ErrEmailTaken         = errors.New("Email is already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUnauthenticated    = errors.New("Please authenticate")
)

var (
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)
