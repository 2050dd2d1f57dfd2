package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "house_booker",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "house_booker",
			Name:      "bookings_created_total",
			Help:      "Booking requests accepted.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated)
	})
}

// IncHTTP increments the counter for a route/status pair.
func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}

// IncBookingCreated counts an accepted booking request.
func IncBookingCreated() {
	bookingsCreated.Inc()
}
