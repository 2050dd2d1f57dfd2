package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateHouseRequest is bound from the multipart form; image files travel
// separately under the "images" field.
type CreateHouseRequest struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	Price       float64  `form:"price"`
	Bedrooms    int      `form:"bedrooms"`
	Bathrooms   int      `form:"bathrooms"`
	SquareFeet  int      `form:"square_feet"`
	Street      string   `form:"street"`
	City        string   `form:"city"`
	State       string   `form:"state"`
	ZipCode     string   `form:"zip_code"`
	Amenities   []string `form:"amenities"`
}

type UpdateHouseRequest struct {
	Title         *string  `form:"title"`
	Description   *string  `form:"description"`
	Price         *float64 `form:"price"`
	Bedrooms      *int     `form:"bedrooms"`
	Bathrooms     *int     `form:"bathrooms"`
	SquareFeet    *int     `form:"square_feet"`
	Street        *string  `form:"street"`
	City          *string  `form:"city"`
	State         *string  `form:"state"`
	ZipCode       *string  `form:"zip_code"`
	Amenities     []string `form:"amenities"`
	Available     *bool    `form:"available"`
	ReplaceImages bool     `form:"replace_images"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
