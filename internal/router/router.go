package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)
	CreateHouse(c *ginext.Context)
	ListHouses(c *ginext.Context)
	GetHouse(c *ginext.Context)
	UpdateHouse(c *ginext.Context)
	DeleteHouse(c *ginext.Context)
	CheckHouseBooking(c *ginext.Context)
	BookHouse(c *ginext.Context)
	MyBookings(c *ginext.Context)
	MyPropertyBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
}

// InitRouter wires the route table. Listing reads are public; everything
// touching ownership or bookings goes through the auth middleware.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, uploadsDir string, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", auth, h.Me)

		// Houses
		api.POST("/houses", auth, h.CreateHouse)
		api.GET("/houses", h.ListHouses)
		api.GET("/houses/:id", h.GetHouse)
		api.PATCH("/houses/:id", auth, h.UpdateHouse)
		api.DELETE("/houses/:id", auth, h.DeleteHouse)

		// Bookings
		api.GET("/houses/:id/bookings", auth, h.CheckHouseBooking)
		api.POST("/houses/:id/book", auth, h.BookHouse)
		api.GET("/my-bookings", auth, h.MyBookings)
		api.GET("/my-property-bookings", auth, h.MyPropertyBookings)
		api.PATCH("/bookings/:id/status", auth, h.UpdateBookingStatus)
	}

	// Uploaded images; content type comes from the file extension.
	router.Static("/uploads", uploadsDir)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
