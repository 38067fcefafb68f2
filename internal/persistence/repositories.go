package persistence

import "context"

// ClientRepository exposes read and seed operations for clients. Clients are
// immutable after seeding in this scope.
type ClientRepository interface {
	GetClient(ctx context.Context, id string) (Client, error)
	ListClients(ctx context.Context) ([]Client, error)
	CountClients(ctx context.Context) (int, error)
	SeedClients(ctx context.Context, clients []Client) error
}

// BookingRepository stores booking records. The calendar core refetches per
// operation and holds no long-lived references.
type BookingRepository interface {
	InsertBooking(ctx context.Context, booking Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	// ListBookingsByDate returns bookings whose stored date matches exactly.
	ListBookingsByDate(ctx context.Context, date string) ([]Booking, error)
	// ListRecurringBookings returns every booking with recurring set,
	// regardless of its anchor date.
	ListRecurringBookings(ctx context.Context) ([]Booking, error)
	// DeleteBooking removes a record by id. Deleting an unknown id succeeds.
	DeleteBooking(ctx context.Context, id string) error
}
