package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Mukulraj109/healthtick/internal/recurrence"
	"github.com/Mukulraj109/healthtick/internal/scheduling"
)

// BookingStore captures the persistence interactions needed by the service.
type BookingStore interface {
	InsertBooking(ctx context.Context, booking Booking) error
	ListBookingsByDate(ctx context.Context, date string) ([]Booking, error)
	ListRecurringBookings(ctx context.Context) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// ClientDirectory exposes the client lookup needed when booking calls.
type ClientDirectory interface {
	GetClient(ctx context.Context, id string) (Client, error)
}

// BookingService orchestrates validation, conflict detection and persistence
// for calendar operations.
type BookingService struct {
	bookings    BookingStore
	clients     ClientDirectory
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
	dates       *dateLocks
}

// NewBookingService wires dependencies for booking operations.
func NewBookingService(bookings BookingStore, clients ClientDirectory, idGenerator func() string, now func() time.Time) *BookingService {
	return NewBookingServiceWithLogger(bookings, clients, idGenerator, now, nil)
}

// NewBookingServiceWithLogger constructs a BookingService with a specified logger.
func NewBookingServiceWithLogger(bookings BookingStore, clients ClientDirectory, idGenerator func() string, now func() time.Time, logger *slog.Logger) *BookingService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &BookingService{
		bookings:    bookings,
		clients:     clients,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
		dates:       newDateLocks(),
	}
}

func (s *BookingService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "BookingService", operation, attrs...)
}

// CreateBooking validates the request, rejects overlaps with calls already
// effective on the requested date and stores the new booking. Writes for the
// same date are serialized so concurrent requests cannot both pass the
// conflict check.
func (s *BookingService) CreateBooking(ctx context.Context, input BookingInput) (result Booking, err error) {
	if s == nil {
		return Booking{}, fmt.Errorf("BookingService is nil")
	}

	logger := s.loggerWith(ctx, "CreateBooking",
		"client_id", input.ClientID,
		"date", input.Date,
		"start_time", input.StartTime,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "booking creation failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With(
			"booking_id", result.ID,
			"call_type", string(result.CallType),
		).InfoContext(ctx, "booking created")
	}()

	vErr := &ValidationError{}

	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" {
		vErr.add("clientId", "client id is required")
	}

	callType, parseErr := scheduling.ParseCallType(input.CallType)
	if parseErr != nil {
		vErr.add("callType", "call type must be onboarding or follow-up")
	}

	if _, parseErr := recurrence.ParseDate(input.Date); parseErr != nil {
		vErr.add("date", "date must be formatted as YYYY-MM-DD")
	}

	startMinute, parseErr := scheduling.MinuteOfDay(input.StartTime)
	if parseErr != nil {
		vErr.add("startTime", "start time must be formatted as HH:mm")
	} else if !scheduling.IsSlotStart(input.StartTime) {
		vErr.add("startTime", "start time must be one of the bookable slots")
	}

	if vErr.HasErrors() {
		err = vErr
		return
	}

	lock := s.dates.acquire(input.Date)
	defer lock.Unlock()

	client, lookupErr := s.clients.GetClient(ctx, clientID)
	if lookupErr != nil {
		if errors.Is(lookupErr, ErrNotFound) || errors.Is(lookupErr, ErrClientNotFound) {
			err = ErrClientNotFound
			return
		}
		err = storeError(lookupErr)
		return
	}

	existing, listErr := s.effectiveBookingsForDate(ctx, input.Date)
	if listErr != nil {
		err = listErr
		return
	}

	endMinute := startMinute + callType.DurationMinutes()
	for _, other := range existing {
		otherStart, minuteErr := scheduling.MinuteOfDay(other.StartTime)
		if minuteErr != nil {
			err = fmt.Errorf("stored booking %s has invalid start time: %w", other.ID, minuteErr)
			return
		}
		if scheduling.Overlaps(startMinute, endMinute, otherStart, otherStart+other.Duration) {
			err = &ConflictError{
				CallType:   other.CallType,
				ClientName: other.ClientName,
				StartTime:  other.StartTime,
			}
			return
		}
	}

	now := s.now().UTC()
	booking := Booking{
		ID:          s.idGenerator(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		CallType:    callType,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     scheduling.FormatMinute(endMinute),
		Duration:    callType.DurationMinutes(),
		Recurring:   callType.Recurring(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if insertErr := s.bookings.InsertBooking(ctx, booking); insertErr != nil {
		err = storeError(insertErr)
		return
	}

	result = booking
	return
}

// EffectiveBookingsForDate returns every booking on the given date: rows
// stored for that exact date plus occurrences of weekly follow-up series
// whose anchor shares the weekday and lies strictly before it.
func (s *BookingService) EffectiveBookingsForDate(ctx context.Context, date string) ([]Booking, error) {
	if s == nil {
		return nil, fmt.Errorf("BookingService is nil")
	}
	if _, err := recurrence.ParseDate(date); err != nil {
		vErr := &ValidationError{}
		vErr.add("date", "date must be formatted as YYYY-MM-DD")
		return nil, vErr
	}
	return s.effectiveBookingsForDate(ctx, date)
}

func (s *BookingService) effectiveBookingsForDate(ctx context.Context, date string) ([]Booking, error) {
	direct, err := s.bookings.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, storeError(err)
	}

	series, err := s.bookings.ListRecurringBookings(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	effective := make([]Booking, 0, len(direct)+len(series))
	effective = append(effective, direct...)

	for _, anchor := range series {
		materializes, err := recurrence.Materializes(anchor.Date, date)
		if err != nil {
			return nil, fmt.Errorf("stored booking %s has invalid date: %w", anchor.ID, err)
		}
		if !materializes {
			continue
		}
		occurrence := anchor
		occurrence.SeriesID = anchor.ID
		occurrence.ID = recurrence.OccurrenceID(anchor.ID, date)
		occurrence.Date = date
		effective = append(effective, occurrence)
	}

	sort.Slice(effective, func(i, j int) bool {
		if effective[i].StartTime != effective[j].StartTime {
			return effective[i].StartTime < effective[j].StartTime
		}
		return effective[i].ID < effective[j].ID
	})

	return effective, nil
}

// DayView assembles the calendar page for a date: the effective bookings and
// the availability grid projected from them.
func (s *BookingService) DayView(ctx context.Context, date string) (DayView, error) {
	bookings, err := s.EffectiveBookingsForDate(ctx, date)
	if err != nil {
		return DayView{}, err
	}

	gridBookings := make([]scheduling.Booking, 0, len(bookings))
	for _, booking := range bookings {
		gridBookings = append(gridBookings, scheduling.Booking{
			ID:        booking.ID,
			Date:      booking.Date,
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
		})
	}

	slots, err := scheduling.ProjectSlots(gridBookings)
	if err != nil {
		return DayView{}, err
	}

	byID := make(map[string]*Booking, len(bookings))
	for i := range bookings {
		byID[bookings[i].ID] = &bookings[i]
	}

	view := DayView{
		Date:     date,
		Bookings: bookings,
		Slots:    make([]TimeSlot, 0, len(slots)),
	}
	for _, slot := range slots {
		view.Slots = append(view.Slots, TimeSlot{
			Time:      slot.Time,
			Available: slot.Available,
			Booking:   byID[slot.BookingID],
		})
	}

	return view, nil
}

// DeleteBooking removes a stored booking. Synthetic occurrence ids resolve to
// their series anchor, so deleting any occurrence removes the whole series.
// Deleting an id that does not exist succeeds.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("BookingService is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		vErr := &ValidationError{}
		vErr.add("id", "booking id is required")
		return vErr
	}

	target := id
	if seriesID, _, isOccurrence := recurrence.SplitID(id); isOccurrence {
		target = seriesID
	}

	logger := s.loggerWith(ctx, "DeleteBooking", "booking_id", target)
	if err := s.bookings.DeleteBooking(ctx, target); err != nil {
		wrapped := storeError(err)
		logger.ErrorContext(ctx, "booking deletion failed", "error", wrapped, "error_kind", ErrorKind(wrapped))
		return wrapped
	}

	logger.InfoContext(ctx, "booking deleted")
	return nil
}
