package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/Raghuramreddyu/House-Rental-System/internal/handler/dto"
	"github.com/Raghuramreddyu/House-Rental-System/internal/metrics"
	"github.com/Raghuramreddyu/House-Rental-System/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type HouseSvc interface {
	Create(ctx context.Context, ownerID string, input domain.CreateHouseInput, images []*multipart.FileHeader) (*domain.House, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.House, error)
	GetByID(ctx context.Context, id string) (*domain.House, error)
	Update(ctx context.Context, id, requesterID string, input domain.UpdateHouseInput, newImages []*multipart.FileHeader) (*domain.House, error)
	Delete(ctx context.Context, id, requesterID string) error
}

type BookingSvc interface {
	Request(ctx context.Context, houseID, tenantID string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, requesterID string, status domain.BookingStatus) (*domain.Booking, error)
	CheckExisting(ctx context.Context, houseID, tenantID string) (*domain.Booking, error)
	ListForTenant(ctx context.Context, tenantID string) ([]*domain.BookingDetails, error)
	ListForOwner(ctx context.Context, ownerID string) ([]*domain.BookingDetails, error)
}

type Handler struct {
	authService    AuthSvc
	houseService   HouseSvc
	bookingService BookingSvc
	baseURL        string
}

func NewHandler(authService AuthSvc, houseService HouseSvc, bookingService BookingSvc, baseURL string) *Handler {
	return &Handler{
		authService:    authService,
		houseService:   houseService,
		bookingService: bookingService,
		baseURL:        baseURL,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		TelegramChatID: req.TelegramChatID,
	}

	user, token, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(user, token))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(user, token))
}

func (h *Handler) Me(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Houses

func (h *Handler) CreateHouse(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	var req dto.CreateHouseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.CreateHouseInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		Address: domain.Address{
			Street:  req.Street,
			City:    req.City,
			State:   req.State,
			ZipCode: req.ZipCode,
		},
		Amenities: req.Amenities,
	}

	house, err := h.houseService.Create(c.Request.Context(), user.ID, input, formImages(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHouseResponse(house, h.baseURL))
}

func (h *Handler) ListHouses(c *ginext.Context) {
	filter := domain.SearchFilter{Query: c.Query("search")}

	if v := c.Query("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid minPrice"})
			return
		}
		filter.MinPrice = &p
	}
	if v := c.Query("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid maxPrice"})
			return
		}
		filter.MaxPrice = &p
	}
	if v := c.Query("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid bedrooms"})
			return
		}
		filter.Bedrooms = &n
	}

	houses, err := h.houseService.Search(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HouseResponse, 0, len(houses))
	for _, house := range houses {
		resp = append(resp, dto.ToHouseResponse(house, h.baseURL))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetHouse(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid house id"})
		return
	}

	house, err := h.houseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHouseResponse(house, h.baseURL))
}

func (h *Handler) UpdateHouse(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid house id"})
		return
	}

	var req dto.UpdateHouseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.UpdateHouseInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		Street:        req.Street,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Amenities:     req.Amenities,
		Available:     req.Available,
		ReplaceImages: req.ReplaceImages,
	}

	house, err := h.houseService.Update(c.Request.Context(), id, user.ID, input, formImages(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHouseResponse(house, h.baseURL))
}

func (h *Handler) DeleteHouse(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid house id"})
		return
	}

	if err := h.houseService.Delete(c.Request.Context(), id, user.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "House deleted successfully"})
}

// Bookings

func (h *Handler) CheckHouseBooking(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	houseID := c.Param("id")
	if _, err := uuid.Parse(houseID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid house id"})
		return
	}

	booking, err := h.bookingService.CheckExisting(c.Request.Context(), houseID, user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if booking == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) BookHouse(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	houseID := c.Param("id")
	if _, err := uuid.Parse(houseID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid house id"})
		return
	}

	booking, err := h.bookingService.Request(c.Request.Context(), houseID, user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	metrics.IncBookingCreated()

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	bookings, err := h.bookingService.ListForTenant(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toBookingDetails(bookings))
}

func (h *Handler) MyPropertyBookings(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	bookings, err := h.bookingService.ListForOwner(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toBookingDetails(bookings))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, user.ID, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) toBookingDetails(bookings []*domain.BookingDetails) []dto.BookingDetailsResponse {
	resp := make([]dto.BookingDetailsResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDetailsResponse(b, h.baseURL))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrHouseNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: domain.ErrHouseNotFound.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: domain.ErrUserNotFound.Error()})
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: domain.ErrBookingNotFound.Error()})

	case errors.Is(err, domain.ErrHouseAlreadyBooked):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domain.ErrHouseAlreadyBooked.Error()})
	case errors.Is(err, domain.ErrOwnHouseBooking):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domain.ErrOwnHouseBooking.Error()})
	case errors.Is(err, domain.ErrOwnerCannotBook):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domain.ErrOwnerCannotBook.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domain.ErrEmailTaken.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Something went wrong!"})
	}
}

func formImages(c *ginext.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
