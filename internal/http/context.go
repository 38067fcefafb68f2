package http

import "context"

type contextKey string

const (
	bookingIDContextKey contextKey = "booking_id"
	dateContextKey      contextKey = "date"
)

// ContextWithBookingID injects the booking identifier resolved from the request path.
func ContextWithBookingID(ctx context.Context, bookingID string) context.Context {
	return context.WithValue(ctx, bookingIDContextKey, bookingID)
}

// BookingIDFromContext extracts a booking identifier previously associated with the context.
func BookingIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(bookingIDContextKey).(string)
	return id, ok
}

// ContextWithDate injects the calendar date resolved from the request path.
func ContextWithDate(ctx context.Context, date string) context.Context {
	return context.WithValue(ctx, dateContextKey, date)
}

// DateFromContext extracts a calendar date previously associated with the context.
func DateFromContext(ctx context.Context) (string, bool) {
	date, ok := ctx.Value(dateContextKey).(string)
	return date, ok
}
