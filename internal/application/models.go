package application

import (
	"time"

	"github.com/Mukulraj109/healthtick/internal/scheduling"
)

// Client is a coach client who can be booked for calls.
type Client struct {
	ID    string
	Name  string
	Phone string
}

// Booking is a calendar entry for one call. Occurrences projected from a
// weekly follow-up series carry a synthetic ID and name their stored anchor
// in SeriesID; only the anchor row exists in the store.
type Booking struct {
	ID          string
	SeriesID    string
	ClientID    string
	ClientName  string
	ClientPhone string
	CallType    scheduling.CallType
	Date        string
	StartTime   string
	EndTime     string
	Duration    int
	Recurring   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookingInput carries the fields a caller supplies when booking a call.
type BookingInput struct {
	ClientID  string
	CallType  string
	Date      string
	StartTime string
}

// TimeSlot is one 20 minute slot of the daily grid together with the booking
// that starts in it, when any.
type TimeSlot struct {
	Time      string
	Available bool
	Booking   *Booking
}

// DayView is the calendar page for a single date: every booking effective on
// that date plus the availability grid derived from them.
type DayView struct {
	Date     string
	Bookings []Booking
	Slots    []TimeSlot
}
