package persistence

import "time"

// Client represents a coaching client seeded into the calendar.
type Client struct {
	ID    string
	Name  string
	Phone string
}

// Booking represents a stored calendar entry. Recurring bookings store only
// their anchor date; later occurrences are derived at read time and never
// persisted. Client name and phone are denormalized at creation time, so a
// booking does not reflect later client edits.
type Booking struct {
	ID          string
	ClientID    string
	ClientName  string
	ClientPhone string
	CallType    string
	Date        string
	StartTime   string
	EndTime     string
	Duration    int
	Recurring   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
