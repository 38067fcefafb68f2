package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Mukulraj109/healthtick/internal/application"
	"github.com/Mukulraj109/healthtick/internal/persistence"
	"github.com/Mukulraj109/healthtick/internal/scheduling"
)

var (
	clientCounter  uint64
	bookingCounter uint64
)

// referenceTime is a Saturday; fixture bookings default to the following
// Monday so weekday based recurrence behaves predictably.
var referenceTime = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ClientFixture is a deterministic client record for tests.
type ClientFixture struct {
	ID    string
	Name  string
	Phone string
}

// ClientOption configures the generated client fixture.
type ClientOption func(*ClientFixture)

// NewClientFixture returns a deterministic client fixture with optional overrides.
func NewClientFixture(opts ...ClientOption) ClientFixture {
	idx := atomic.AddUint64(&clientCounter, 1)
	fixture := ClientFixture{
		ID:    fmt.Sprintf("client%03d", idx),
		Name:  fmt.Sprintf("Client %03d", idx),
		Phone: fmt.Sprintf("+1-555-%04d", idx),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithClientName overrides the fixture display name.
func WithClientName(name string) ClientOption {
	return func(f *ClientFixture) { f.Name = name }
}

// Application converts the fixture to an application model.
func (f ClientFixture) Application() application.Client {
	return application.Client{ID: f.ID, Name: f.Name, Phone: f.Phone}
}

// Persistence converts the fixture to a persistence model.
func (f ClientFixture) Persistence() persistence.Client {
	return persistence.Client{ID: f.ID, Name: f.Name, Phone: f.Phone}
}

// BookingFixture is a deterministic booking record for tests.
type BookingFixture struct {
	ID        string
	Client    ClientFixture
	CallType  scheduling.CallType
	Date      string
	StartTime string
	CreatedAt time.Time
}

// BookingOption configures the generated booking fixture.
type BookingOption func(*BookingFixture)

// NewBookingFixture returns a deterministic booking fixture. The default is a
// one-time onboarding call on Monday 2024-06-03 at 10:30.
func NewBookingFixture(opts ...BookingOption) BookingFixture {
	idx := atomic.AddUint64(&bookingCounter, 1)
	fixture := BookingFixture{
		ID:        fmt.Sprintf("booking%03d", idx),
		Client:    NewClientFixture(),
		CallType:  scheduling.CallTypeOnboarding,
		Date:      "2024-06-03",
		StartTime: "10:30",
		CreatedAt: referenceTime.Add(time.Duration(idx) * time.Minute),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithCallType overrides the fixture call type.
func WithCallType(callType scheduling.CallType) BookingOption {
	return func(f *BookingFixture) { f.CallType = callType }
}

// WithDate overrides the fixture date.
func WithDate(date string) BookingOption {
	return func(f *BookingFixture) { f.Date = date }
}

// WithStartTime overrides the fixture start time.
func WithStartTime(startTime string) BookingOption {
	return func(f *BookingFixture) { f.StartTime = startTime }
}

// WithClient attaches an existing client fixture instead of generating one.
func WithClient(client ClientFixture) BookingOption {
	return func(f *BookingFixture) { f.Client = client }
}

// Application converts the fixture to an application model.
func (f BookingFixture) Application() application.Booking {
	endTime, err := scheduling.EndTime(f.StartTime, f.CallType)
	if err != nil {
		panic(fmt.Sprintf("testfixtures: invalid start time %q: %v", f.StartTime, err))
	}
	return application.Booking{
		ID:          f.ID,
		ClientID:    f.Client.ID,
		ClientName:  f.Client.Name,
		ClientPhone: f.Client.Phone,
		CallType:    f.CallType,
		Date:        f.Date,
		StartTime:   f.StartTime,
		EndTime:     endTime,
		Duration:    f.CallType.DurationMinutes(),
		Recurring:   f.CallType.Recurring(),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.CreatedAt,
	}
}

// Persistence converts the fixture to a persistence model.
func (f BookingFixture) Persistence() persistence.Booking {
	booking := f.Application()
	return persistence.Booking{
		ID:          booking.ID,
		ClientID:    booking.ClientID,
		ClientName:  booking.ClientName,
		ClientPhone: booking.ClientPhone,
		CallType:    string(booking.CallType),
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Duration:    booking.Duration,
		Recurring:   booking.Recurring,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}
