package testfixtures

import (
	"context"
	"sort"
	"sync"

	"github.com/Mukulraj109/healthtick/internal/application"
)

// MemoryBookingStore is an in-memory application.BookingStore for tests that
// exercise services without a database.
type MemoryBookingStore struct {
	mu       sync.Mutex
	bookings map[string]application.Booking
}

// NewMemoryBookingStore returns an empty in-memory booking store.
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{bookings: make(map[string]application.Booking)}
}

// InsertBooking stores the booking keyed by id.
func (s *MemoryBookingStore) InsertBooking(_ context.Context, booking application.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = booking
	return nil
}

// ListBookingsByDate returns bookings stored for the exact date, ordered by
// start time.
func (s *MemoryBookingStore) ListBookingsByDate(_ context.Context, date string) ([]application.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []application.Booking
	for _, booking := range s.bookings {
		if booking.Date == date {
			out = append(out, booking)
		}
	}
	sortBookings(out)
	return out, nil
}

// ListRecurringBookings returns every stored recurring booking.
func (s *MemoryBookingStore) ListRecurringBookings(context.Context) ([]application.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []application.Booking
	for _, booking := range s.bookings {
		if booking.Recurring {
			out = append(out, booking)
		}
	}
	sortBookings(out)
	return out, nil
}

// DeleteBooking removes the booking; unknown ids are ignored.
func (s *MemoryBookingStore) DeleteBooking(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, id)
	return nil
}

// Len reports the number of stored bookings.
func (s *MemoryBookingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func sortBookings(bookings []application.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		if bookings[i].StartTime != bookings[j].StartTime {
			return bookings[i].StartTime < bookings[j].StartTime
		}
		return bookings[i].ID < bookings[j].ID
	})
}

// MemoryClientStore is an in-memory application.ClientStore for tests.
type MemoryClientStore struct {
	mu      sync.Mutex
	clients map[string]application.Client
}

// NewMemoryClientStore returns a store pre-populated with the given clients.
func NewMemoryClientStore(clients ...application.Client) *MemoryClientStore {
	store := &MemoryClientStore{clients: make(map[string]application.Client, len(clients))}
	for _, client := range clients {
		store.clients[client.ID] = client
	}
	return store
}

// GetClient retrieves a client by id.
func (s *MemoryClientStore) GetClient(_ context.Context, id string) (application.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients[id]
	if !ok {
		return application.Client{}, application.ErrNotFound
	}
	return client, nil
}

// ListClients returns all clients ordered by display name.
func (s *MemoryClientStore) ListClients(context.Context) ([]application.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]application.Client, 0, len(s.clients))
	for _, client := range s.clients {
		out = append(out, client)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CountClients reports the number of stored clients.
func (s *MemoryClientStore) CountClients(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients), nil
}

// SeedClients inserts the provided clients.
func (s *MemoryClientStore) SeedClients(_ context.Context, clients []application.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, client := range clients {
		s.clients[client.ID] = client
	}
	return nil
}
