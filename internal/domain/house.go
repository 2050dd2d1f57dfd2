package domain

import "time"

type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
}

type House struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Bedrooms    int       `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   int       `json:"bathrooms" bson:"bathrooms"`
	SquareFeet  int       `json:"square_feet" bson:"square_feet"`
	Address     Address   `json:"address" bson:"address"`
	Images      []string  `json:"images" bson:"images"`
	Amenities   []string  `json:"amenities" bson:"amenities"`
	OwnerID     string    `json:"owner_id" bson:"owner"`
	Available   bool      `json:"available" bson:"available"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

type CreateHouseInput struct {
	Title       string
	Description string
	Price       float64
	Bedrooms    int
	Bathrooms   int
	SquareFeet  int
	Address     Address
	Amenities   []string
}

// UpdateHouseInput carries only the fields the caller wants changed.
type UpdateHouseInput struct {
	Title       *string
	Description *string
	Price       *float64
	Bedrooms    *int
	Bathrooms   *int
	SquareFeet  *int
	Street      *string
	City        *string
	State       *string
	ZipCode     *string
	Amenities   []string
	Available   *bool
	// ReplaceImages drops the existing image list instead of appending.
	ReplaceImages bool
}

// SearchFilter fields are independently optional and combined with AND.
type SearchFilter struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
	Bedrooms *int
}
