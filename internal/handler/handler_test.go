package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/Raghuramreddyu/House-Rental-System/internal/handler/dto"
	hmocks "github.com/Raghuramreddyu/House-Rental-System/internal/handler/mocks"
	"github.com/Raghuramreddyu/House-Rental-System/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testToken = "test-token"

// stubAuth resolves the fixed test token to a fixed user, everything else
// fails. Token issuing itself is covered by the auth service tests.
type stubAuth struct {
	user *domain.User
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if token != testToken {
		return nil, domain.ErrUnauthenticated
	}
	return s.user, nil
}

func setupRouter(t *testing.T, caller *domain.User) (*hmocks.MockAuthSvc, *hmocks.MockHouseSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	authSvc := hmocks.NewMockAuthSvc(t)
	houseSvc := hmocks.NewMockHouseSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(authSvc, houseSvc, bookingSvc, "http://localhost:8080")
	auth := middleware.Auth(&stubAuth{user: caller})

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", auth, h.Me)

		api.POST("/houses", auth, h.CreateHouse)
		api.GET("/houses", h.ListHouses)
		api.GET("/houses/:id", h.GetHouse)
		api.PATCH("/houses/:id", auth, h.UpdateHouse)
		api.DELETE("/houses/:id", auth, h.DeleteHouse)

		api.GET("/houses/:id/bookings", auth, h.CheckHouseBooking)
		api.POST("/houses/:id/book", auth, h.BookHouse)
		api.GET("/my-bookings", auth, h.MyBookings)
		api.GET("/my-property-bookings", auth, h.MyPropertyBookings)
		api.PATCH("/bookings/:id/status", auth, h.UpdateBookingStatus)
	}

	return authSvc, houseSvc, bookingSvc, r
}

func testTenant() *domain.User {
	return &domain.User{ID: uuid.New().String(), Name: "alice", Email: "alice@example.com", Role: domain.RoleTenant}
}

func testOwner() *domain.User {
	return &domain.User{ID: uuid.New().String(), Name: "bob", Email: "bob@example.com", Role: domain.RoleOwner}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	authSvc, _, _, r := setupRouter(t, testTenant())

	user := testTenant()
	authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, "jwt-token", nil)

	body := dto.RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "secret123", Role: "tenant"}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "alice", resp.User.Name)
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	_, _, _, r := setupRouter(t, testTenant())

	body := dto.RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "123", Role: "tenant"}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	authSvc, _, _, r := setupRouter(t, testTenant())

	authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, "", domain.ErrEmailTaken)

	body := dto.RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "secret123", Role: "tenant"}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrEmailTaken.Error(), resp.Message)
}

func TestHandler_Login_Success(t *testing.T) {
	authSvc, _, _, r := setupRouter(t, testTenant())

	user := testTenant()
	authSvc.EXPECT().Login(mock.Anything, "alice@example.com", "secret123").Return(user, "jwt-token", nil)

	body := dto.LoginRequest{Email: "alice@example.com", Password: "secret123"}
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", body, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.Token)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	authSvc, _, _, r := setupRouter(t, testTenant())

	authSvc.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return(nil, "", domain.ErrInvalidCredentials)

	body := dto.LoginRequest{Email: "alice@example.com", Password: "wrong"}
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Me_Success(t *testing.T) {
	caller := testTenant()
	_, _, _, r := setupRouter(t, caller)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, testToken)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, caller.ID, resp.ID)
}

func TestHandler_Me_MissingToken(t *testing.T) {
	_, _, _, r := setupRouter(t, testTenant())

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Please authenticate", resp.Message)
}

func TestHandler_Me_BadToken(t *testing.T) {
	_, _, _, r := setupRouter(t, testTenant())

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Houses ---

func houseForm(t *testing.T, fields map[string]string, imageNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, name := range imageNames {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestHandler_CreateHouse_Success(t *testing.T) {
	owner := testOwner()
	_, houseSvc, _, r := setupRouter(t, owner)

	house := &domain.House{
		ID:      uuid.New().String(),
		Title:   "Cozy Cottage",
		OwnerID: owner.ID,
		Images:  []string{"uploads/a.jpg"},
	}
	houseSvc.EXPECT().Create(mock.Anything, owner.ID, mock.Anything, mock.Anything).Return(house, nil)

	buf, contentType := houseForm(t, map[string]string{
		"title":       "Cozy Cottage",
		"description": "Two bedrooms near the lake",
		"price":       "1200",
		"bedrooms":    "2",
		"bathrooms":   "1",
		"square_feet": "850",
		"street":      "12 Lake Rd",
		"city":        "Springfield",
		"state":       "IL",
		"zip_code":    "62701",
	}, "front.jpg")

	req := httptest.NewRequest(http.MethodPost, "/api/houses", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.HouseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cozy Cottage", resp.Title)
	assert.Equal(t, []string{"http://localhost:8080/uploads/a.jpg"}, resp.Images)
}

func TestHandler_CreateHouse_Unauthenticated(t *testing.T) {
	_, _, _, r := setupRouter(t, testOwner())

	buf, contentType := houseForm(t, map[string]string{"title": "X"})

	req := httptest.NewRequest(http.MethodPost, "/api/houses", buf)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateHouse_ValidationError(t *testing.T) {
	owner := testOwner()
	_, houseSvc, _, r := setupRouter(t, owner)

	houseSvc.EXPECT().Create(mock.Anything, owner.ID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation))

	buf, contentType := houseForm(t, map[string]string{"title": "X", "description": "Y"})

	req := httptest.NewRequest(http.MethodPost, "/api/houses", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListHouses_Filters(t *testing.T) {
	_, houseSvc, _, r := setupRouter(t, testTenant())

	houseSvc.EXPECT().Search(mock.Anything, mock.Anything).
		Run(func(_ context.Context, filter domain.SearchFilter) {
			assert.Equal(t, "lake", filter.Query)
			require.NotNil(t, filter.MinPrice)
			assert.Equal(t, 500.0, *filter.MinPrice)
			require.NotNil(t, filter.Bedrooms)
			assert.Equal(t, 2, *filter.Bedrooms)
		}).
		Return([]*domain.House{{ID: "h1", Title: "Cozy Cottage"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/houses?search=lake&minPrice=500&bedrooms=2", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.HouseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Cozy Cottage", resp[0].Title)
}

func TestHandler_ListHouses_BadPrice(t *testing.T) {
	_, _, _, r := setupRouter(t, testTenant())

	w := doJSON(t, r, http.MethodGet, "/api/houses?minPrice=abc", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetHouse_Success(t *testing.T) {
	_, houseSvc, _, r := setupRouter(t, testTenant())

	houseID := uuid.New().String()
	houseSvc.EXPECT().GetByID(mock.Anything, houseID).Return(&domain.House{ID: houseID, Title: "Loft"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/houses/"+houseID, nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetHouse_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, testTenant())

	w := doJSON(t, r, http.MethodGet, "/api/houses/not-a-uuid", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetHouse_NotFound(t *testing.T) {
	_, houseSvc, _, r := setupRouter(t, testTenant())

	houseID := uuid.New().String()
	houseSvc.EXPECT().GetByID(mock.Anything, houseID).Return(nil, domain.ErrHouseNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/houses/"+houseID, nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "House not found", resp.Message)
}

func TestHandler_UpdateHouse_Forbidden(t *testing.T) {
	caller := testOwner()
	_, houseSvc, _, r := setupRouter(t, caller)

	houseID := uuid.New().String()
	houseSvc.EXPECT().Update(mock.Anything, houseID, caller.ID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: only the owner can update this house", domain.ErrForbidden))

	buf, contentType := houseForm(t, map[string]string{"title": "New Title"})

	req := httptest.NewRequest(http.MethodPatch, "/api/houses/"+houseID, buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteHouse_Success(t *testing.T) {
	caller := testOwner()
	_, houseSvc, _, r := setupRouter(t, caller)

	houseID := uuid.New().String()
	houseSvc.EXPECT().Delete(mock.Anything, houseID, caller.ID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/houses/"+houseID, nil, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"House deleted successfully"}`, w.Body.String())
}

// --- Bookings ---

func TestHandler_BookHouse_Success(t *testing.T) {
	caller := testTenant()
	_, _, bookingSvc, r := setupRouter(t, caller)

	houseID := uuid.New().String()
	booking := &domain.Booking{
		ID:       uuid.New().String(),
		HouseID:  houseID,
		TenantID: caller.ID,
		Status:   domain.BookingStatusPending,
	}
	bookingSvc.EXPECT().Request(mock.Anything, houseID, caller.ID).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/houses/"+houseID+"/book", nil, testToken)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_BookHouse_AlreadyBooked(t *testing.T) {
	caller := testTenant()
	_, _, bookingSvc, r := setupRouter(t, caller)

	houseID := uuid.New().String()
	bookingSvc.EXPECT().Request(mock.Anything, houseID, caller.ID).Return(nil, domain.ErrHouseAlreadyBooked)

	w := doJSON(t, r, http.MethodPost, "/api/houses/"+houseID+"/book", nil, testToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "House is already booked or has a pending booking", resp.Message)
}

func TestHandler_BookHouse_OwnHouse(t *testing.T) {
	caller := testTenant()
	_, _, bookingSvc, r := setupRouter(t, caller)

	houseID := uuid.New().String()
	bookingSvc.EXPECT().Request(mock.Anything, houseID, caller.ID).Return(nil, domain.ErrOwnHouseBooking)

	w := doJSON(t, r, http.MethodPost, "/api/houses/"+houseID+"/book", nil, testToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "You cannot book your own house", resp.Message)
}

func TestHandler_CheckHouseBooking_None(t *testing.T) {
	caller := testTenant()
	_, _, bookingSvc, r := setupRouter(t, caller)

	houseID := uuid.New().String()
	bookingSvc.EXPECT().CheckExisting(mock.Anything, houseID, caller.ID).Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/houses/"+houseID+"/bookings", nil, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestHandler_CheckHouseBooking_Found(t *testing.T) {
	caller := testTenant()
	_, _, bookingSvc, r := setupRouter(t, caller)

	houseID := uuid.New().String()
	booking := &domain.Booking{ID: "b1", HouseID: houseID, TenantID: caller.ID, Status: domain.BookingStatusApproved}
	bookingSvc.EXPECT().CheckExisting(mock.Anything, houseID, caller.ID).Return(booking, nil)

	w := doJSON(t, r, http.MethodGet, "/api/houses/"+houseID+"/bookings", nil, testToken)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_MyBookings_Success(t *testing.T) {
	caller := testTenant()
	_, _, bookingSvc, r := setupRouter(t, caller)

	details := []*domain.BookingDetails{
		{
			Booking:    domain.Booking{ID: "b1", Status: domain.BookingStatusPending},
			House:      domain.House{ID: "h1", Title: "Cozy Cottage"},
			TenantName: "alice",
			OwnerName:  "bob",
		},
	}
	bookingSvc.EXPECT().ListForTenant(mock.Anything, caller.ID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/my-bookings", nil, testToken)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Cozy Cottage", resp[0].House.Title)
	assert.Equal(t, "alice", resp[0].TenantName)
}

func TestHandler_MyPropertyBookings_Success(t *testing.T) {
	caller := testOwner()
	_, _, bookingSvc, r := setupRouter(t, caller)

	bookingSvc.EXPECT().ListForOwner(mock.Anything, caller.ID).Return([]*domain.BookingDetails{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/my-property-bookings", nil, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_UpdateBookingStatus_Success(t *testing.T) {
	caller := testOwner()
	_, _, bookingSvc, r := setupRouter(t, caller)

	bookingID := uuid.New().String()
	updated := &domain.Booking{ID: bookingID, OwnerID: caller.ID, Status: domain.BookingStatusApproved}
	bookingSvc.EXPECT().UpdateStatus(mock.Anything, bookingID, caller.ID, domain.BookingStatusApproved).Return(updated, nil)

	body := dto.UpdateBookingStatusRequest{Status: "approved"}
	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"/status", body, testToken)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_UpdateBookingStatus_InvalidStatus(t *testing.T) {
	caller := testOwner()
	_, _, bookingSvc, r := setupRouter(t, caller)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().UpdateStatus(mock.Anything, bookingID, caller.ID, domain.BookingStatus("cancelled")).
		Return(nil, fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation))

	body := dto.UpdateBookingStatusRequest{Status: "cancelled"}
	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"/status", body, testToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus_Forbidden(t *testing.T) {
	caller := testOwner()
	_, _, bookingSvc, r := setupRouter(t, caller)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().UpdateStatus(mock.Anything, bookingID, caller.ID, domain.BookingStatusApproved).
		Return(nil, fmt.Errorf("%w: only the house owner can update this booking", domain.ErrForbidden))

	body := dto.UpdateBookingStatusRequest{Status: "approved"}
	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"/status", body, testToken)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateBookingStatus_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, testOwner())

	body := dto.UpdateBookingStatusRequest{Status: "approved"}
	w := doJSON(t, r, http.MethodPatch, "/api/bookings/not-a-uuid/status", body, testToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UnexpectedError_IsOpaque(t *testing.T) {
	_, houseSvc, _, r := setupRouter(t, testTenant())

	houseID := uuid.New().String()
	houseSvc.EXPECT().GetByID(mock.Anything, houseID).Return(nil, fmt.Errorf("connection reset"))

	w := doJSON(t, r, http.MethodGet, "/api/houses/"+houseID, nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Something went wrong!", resp.Message)
}
