package dto

import (
	"strings"
	"time"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type HouseResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	SquareFeet  int             `json:"square_feet"`
	Address     AddressResponse `json:"address"`
	Images      []string        `json:"images"`
	Amenities   []string        `json:"amenities"`
	OwnerID     string          `json:"owner_id"`
	Available   bool            `json:"available"`
	CreatedAt   string          `json:"created_at"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	HouseID     string `json:"house_id"`
	TenantID    string `json:"tenant_id"`
	OwnerID     string `json:"owner_id"`
	Status      string `json:"status"`
	BookingDate string `json:"booking_date"`
	CreatedAt   string `json:"created_at"`
}

type BookingDetailsResponse struct {
	BookingResponse
	House      HouseResponse `json:"house"`
	TenantName string        `json:"tenant_name"`
	OwnerName  string        `json:"owner_name"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuthResponse(u *domain.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  ToUserResponse(u),
	}
}

// ToHouseResponse renders a house with image references resolved to
// absolute URLs against the public base URL.
func ToHouseResponse(h *domain.House, baseURL string) HouseResponse {
	images := make([]string, 0, len(h.Images))
	for _, img := range h.Images {
		if strings.HasPrefix(img, "http") {
			images = append(images, img)
			continue
		}
		images = append(images, strings.TrimSuffix(baseURL, "/")+"/"+img)
	}

	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return HouseResponse{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Price:       h.Price,
		Bedrooms:    h.Bedrooms,
		Bathrooms:   h.Bathrooms,
		SquareFeet:  h.SquareFeet,
		Address: AddressResponse{
			Street:  h.Address.Street,
			City:    h.Address.City,
			State:   h.Address.State,
			ZipCode: h.Address.ZipCode,
		},
		Images:    images,
		Amenities: amenities,
		OwnerID:   h.OwnerID,
		Available: h.Available,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		HouseID:     b.HouseID,
		TenantID:    b.TenantID,
		OwnerID:     b.OwnerID,
		Status:      string(b.Status),
		BookingDate: b.BookingDate.Format(time.RFC3339),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingDetailsResponse(d *domain.BookingDetails, baseURL string) BookingDetailsResponse {
	return BookingDetailsResponse{
		BookingResponse: ToBookingResponse(&d.Booking),
		House:           ToHouseResponse(&d.House, baseURL),
		TenantName:      d.TenantName,
		OwnerName:       d.OwnerName,
	}
}
