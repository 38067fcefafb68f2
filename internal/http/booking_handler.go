package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Mukulraj109/healthtick/internal/application"
	"github.com/Mukulraj109/healthtick/internal/metrics"
)

type bookingService interface {
	CreateBooking(ctx context.Context, input application.BookingInput) (application.Booking, error)
	DayView(ctx context.Context, date string) (application.DayView, error)
	DeleteBooking(ctx context.Context, id string) error
}

// BookingHandler serves the calendar endpoints.
type BookingHandler struct {
	service   bookingService
	responder responder
}

// NewBookingHandler wires a booking handler with its service dependency.
func NewBookingHandler(service bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{service: service, responder: newResponder(logger)}
}

type createBookingRequest struct {
	ClientID  string `json:"clientId"`
	CallType  string `json:"callType"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

type bookingDTO struct {
	ID          string `json:"id"`
	SeriesID    string `json:"seriesId,omitempty"`
	ClientID    string `json:"clientId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	CallType    string `json:"callType"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Duration    int    `json:"duration"`
	Recurring   bool   `json:"recurring"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type timeSlotDTO struct {
	Time      string      `json:"time"`
	Available bool        `json:"available"`
	Booking   *bookingDTO `json:"booking,omitempty"`
}

type dayViewResponse struct {
	Date      string        `json:"date"`
	Bookings  []bookingDTO  `json:"bookings"`
	TimeSlots []timeSlotDTO `json:"timeSlots"`
}

func toBookingDTO(booking application.Booking) bookingDTO {
	return bookingDTO{
		ID:          booking.ID,
		SeriesID:    booking.SeriesID,
		ClientID:    booking.ClientID,
		ClientName:  booking.ClientName,
		ClientPhone: booking.ClientPhone,
		CallType:    string(booking.CallType),
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Duration:    booking.Duration,
		Recurring:   booking.Recurring,
		CreatedAt:   booking.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   booking.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// Day renders the calendar page for the date carried in the request context.
func (h *BookingHandler) Day(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := DateFromContext(r.Context())
	if !ok || strings.TrimSpace(date) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDate)
		return
	}

	view, err := h.service.DayView(r.Context(), date)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	resp := dayViewResponse{
		Date:      view.Date,
		Bookings:  make([]bookingDTO, 0, len(view.Bookings)),
		TimeSlots: make([]timeSlotDTO, 0, len(view.Slots)),
	}
	for _, booking := range view.Bookings {
		resp.Bookings = append(resp.Bookings, toBookingDTO(booking))
	}
	for _, slot := range view.Slots {
		dto := timeSlotDTO{Time: slot.Time, Available: slot.Available}
		if slot.Booking != nil {
			booking := toBookingDTO(*slot.Booking)
			dto.Booking = &booking
		}
		resp.TimeSlots = append(resp.TimeSlots, dto)
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, resp)
}

// Create books a new call.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), application.BookingInput{
		ClientID:  req.ClientID,
		CallType:  req.CallType,
		Date:      req.Date,
		StartTime: req.StartTime,
	})
	if err != nil {
		var cErr *application.ConflictError
		if errors.As(err, &cErr) {
			metrics.BookingConflicts.WithLabelValues(req.CallType).Inc()
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	metrics.BookingsCreated.WithLabelValues(string(booking.CallType)).Inc()
	handlerLogger(r.Context(), h.responder.logger, "BookingHandler", "Create").
		InfoContext(r.Context(), "booking created", "booking_id", booking.ID)

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toBookingDTO(booking))
}

// Delete removes the booking identified in the request context. Occurrence
// ids resolve to their series; deletes are idempotent and always return 204.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidBookingID)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	metrics.BookingsDeleted.Inc()
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
