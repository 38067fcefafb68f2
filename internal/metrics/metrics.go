package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthtick_http_requests_total",
			Help: "Total HTTP requests handled, by route and status code",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthtick_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthtick_bookings_created_total",
			Help: "Bookings successfully created, by call type",
		},
		[]string{"call_type"},
	)

	BookingsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "healthtick_bookings_deleted_total",
			Help: "Booking delete requests accepted",
		},
	)

	BookingConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthtick_booking_conflicts_total",
			Help: "Booking attempts rejected because the slot overlapped an existing call, by requested call type",
		},
		[]string{"call_type"},
	)

	ClientsSeeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "healthtick_clients_seeded_total",
			Help: "Clients inserted by the startup roster seeding",
		},
	)
)
