package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Mukulraj109/healthtick/internal/persistence"
)

const bookingColumns = `id, client_id, client_name, client_phone, call_type, date, start_time, end_time, duration, recurring, created_at, updated_at`

// BookingRepository implements persistence.BookingRepository using SQLite.
type BookingRepository struct {
	pool *ConnectionPool
}

// NewBookingRepository creates a SQLite-backed booking repository.
func NewBookingRepository(pool *ConnectionPool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// InsertBooking stores a new booking record.
func (r *BookingRepository) InsertBooking(ctx context.Context, booking persistence.Booking) error {
	if booking.ID == "" {
		return persistence.ErrConstraintViolation
	}

	_, err := r.pool.db.ExecContext(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		booking.ID,
		booking.ClientID,
		booking.ClientName,
		booking.ClientPhone,
		booking.CallType,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Duration,
		boolToInt(booking.Recurring),
		booking.CreatedAt.UTC().Format(time.RFC3339),
		booking.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return mapError(err)
	}

	return nil
}

// GetBooking retrieves a booking by id.
func (r *BookingRepository) GetBooking(ctx context.Context, id string) (persistence.Booking, error) {
	if id == "" {
		return persistence.Booking{}, persistence.ErrNotFound
	}

	row := r.pool.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)

	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Booking{}, persistence.ErrNotFound
		}
		return persistence.Booking{}, err
	}

	return booking, nil
}

// ListBookingsByDate returns bookings stored for the exact date.
func (r *BookingRepository) ListBookingsByDate(ctx context.Context, date string) ([]persistence.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE date = ? ORDER BY start_time ASC`, date)
}

// ListRecurringBookings returns every recurring booking regardless of date.
func (r *BookingRepository) ListRecurringBookings(ctx context.Context) ([]persistence.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE recurring = 1 ORDER BY date ASC, start_time ASC`)
}

// DeleteBooking removes a booking by id. Deleting an unknown id is treated as
// success; callers must not rely on delete confirming prior existence.
func (r *BookingRepository) DeleteBooking(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := r.pool.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]persistence.Booking, error) {
	rows, err := r.pool.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var bookings []persistence.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (persistence.Booking, error) {
	var booking persistence.Booking
	var recurring int
	var createdAt, updatedAt string

	err := row.Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.CallType,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Duration,
		&recurring,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Booking{}, err
		}
		return persistence.Booking{}, mapError(err)
	}

	booking.Recurring = recurring != 0
	if booking.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return persistence.Booking{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if booking.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return persistence.Booking{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return booking, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
