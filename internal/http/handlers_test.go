package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Mukulraj109/healthtick/internal/application"
	"github.com/Mukulraj109/healthtick/internal/scheduling"
)

type stubBookingService struct {
	createFn func(ctx context.Context, input application.BookingInput) (application.Booking, error)
	dayFn    func(ctx context.Context, date string) (application.DayView, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, input application.BookingInput) (application.Booking, error) {
	if s.createFn == nil {
		return application.Booking{}, errors.New("not implemented")
	}
	return s.createFn(ctx, input)
}

func (s *stubBookingService) DayView(ctx context.Context, date string) (application.DayView, error) {
	if s.dayFn == nil {
		return application.DayView{}, errors.New("not implemented")
	}
	return s.dayFn(ctx, date)
}

func (s *stubBookingService) DeleteBooking(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteFn(ctx, id)
}

type stubClientService struct {
	listFn func(ctx context.Context) ([]application.Client, error)
}

func (s *stubClientService) ListClients(ctx context.Context) ([]application.Client, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func newTestRouter(bookings *stubBookingService, clients *stubClientService) http.Handler {
	cfg := RouterConfig{}
	if bookings != nil {
		cfg.Bookings = NewBookingHandler(bookings, nil)
	}
	if clients != nil {
		cfg.Clients = NewClientHandler(clients, nil)
	}
	return NewRouter(cfg)
}

func sampleBooking() application.Booking {
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return application.Booking{
		ID:          "bk1",
		ClientID:    "client1",
		ClientName:  "Emma Johnson",
		ClientPhone: "+1-555-0101",
		CallType:    scheduling.CallTypeOnboarding,
		Date:        "2024-06-10",
		StartTime:   "10:30",
		EndTime:     "11:10",
		Duration:    40,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestBookingHandlers(t *testing.T) {
	t.Parallel()

	t.Run("day view returns bookings and time slots", func(t *testing.T) {
		t.Parallel()

		booking := sampleBooking()
		service := &stubBookingService{dayFn: func(_ context.Context, date string) (application.DayView, error) {
			if date != "2024-06-10" {
				t.Errorf("date: got %q", date)
			}
			return application.DayView{
				Date:     date,
				Bookings: []application.Booking{booking},
				Slots: []application.TimeSlot{
					{Time: "10:30", Available: false, Booking: &booking},
					{Time: "10:50", Available: false},
					{Time: "11:10", Available: true},
				},
			}, nil
		}}
		router := newTestRouter(service, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/2024-06-10", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d\n%s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["date"] != "2024-06-10" {
			t.Errorf("date: got %v", body["date"])
		}

		bookings, ok := body["bookings"].([]any)
		if !ok || len(bookings) != 1 {
			t.Fatalf("bookings: got %v", body["bookings"])
		}
		first := bookings[0].(map[string]any)
		if first["id"] != "bk1" || first["clientName"] != "Emma Johnson" || first["callType"] != "onboarding" {
			t.Errorf("booking payload wrong: %v", first)
		}
		if first["startTime"] != "10:30" || first["endTime"] != "11:10" {
			t.Errorf("booking times wrong: %v", first)
		}
		if _, present := first["seriesId"]; present {
			t.Errorf("stored booking must not expose a series id: %v", first)
		}

		slots, ok := body["timeSlots"].([]any)
		if !ok || len(slots) != 3 {
			t.Fatalf("timeSlots: got %v", body["timeSlots"])
		}
		bound := slots[0].(map[string]any)
		if bound["available"] != false || bound["booking"] == nil {
			t.Errorf("bound slot wrong: %v", bound)
		}
		blocked := slots[1].(map[string]any)
		if blocked["available"] != false {
			t.Errorf("blocked slot wrong: %v", blocked)
		}
		if _, present := blocked["booking"]; present {
			t.Errorf("blocked slot must omit booking: %v", blocked)
		}
	})

	t.Run("day view surfaces occurrence series ids", func(t *testing.T) {
		t.Parallel()

		occurrence := sampleBooking()
		occurrence.ID = "bk1-2024-06-17"
		occurrence.SeriesID = "bk1"
		occurrence.CallType = scheduling.CallTypeFollowUp
		occurrence.Recurring = true
		service := &stubBookingService{dayFn: func(_ context.Context, date string) (application.DayView, error) {
			return application.DayView{Date: date, Bookings: []application.Booking{occurrence}}, nil
		}}
		router := newTestRouter(service, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/2024-06-17", nil))

		body := decodeBody(t, rec)
		first := body["bookings"].([]any)[0].(map[string]any)
		if first["id"] != "bk1-2024-06-17" || first["seriesId"] != "bk1" {
			t.Errorf("occurrence payload wrong: %v", first)
		}
	})

	t.Run("day view maps validation errors to 422", func(t *testing.T) {
		t.Parallel()

		service := &stubBookingService{dayFn: func(_ context.Context, date string) (application.DayView, error) {
			return application.DayView{}, &application.ValidationError{FieldErrors: map[string]string{"date": "date must be formatted as YYYY-MM-DD"}}
		}}
		router := newTestRouter(service, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/June-10", nil))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status: got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		fieldErrors, ok := body["errors"].(map[string]any)
		if !ok || fieldErrors["date"] == nil {
			t.Errorf("expected field errors: %v", body)
		}
	})

	t.Run("create responds 201 with the stored booking", func(t *testing.T) {
		t.Parallel()

		var received application.BookingInput
		service := &stubBookingService{createFn: func(_ context.Context, input application.BookingInput) (application.Booking, error) {
			received = input
			return sampleBooking(), nil
		}}
		router := newTestRouter(service, nil)

		payload := `{"clientId":"client1","callType":"onboarding","date":"2024-06-10","startTime":"10:30"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status: got %d\n%s", rec.Code, rec.Body.String())
		}
		if received.ClientID != "client1" || received.CallType != "onboarding" || received.StartTime != "10:30" {
			t.Errorf("service received wrong input: %+v", received)
		}
		body := decodeBody(t, rec)
		if body["id"] != "bk1" || body["duration"] != float64(40) {
			t.Errorf("unexpected payload: %v", body)
		}
		if body["createdAt"] != "2024-06-01T09:00:00Z" {
			t.Errorf("createdAt: got %v", body["createdAt"])
		}
	})

	t.Run("create rejects malformed JSON with 400", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(&stubBookingService{}, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json")))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d", rec.Code)
		}
	})

	t.Run("create maps conflicts to 409 with details", func(t *testing.T) {
		t.Parallel()

		service := &stubBookingService{createFn: func(context.Context, application.BookingInput) (application.Booking, error) {
			return application.Booking{}, &application.ConflictError{
				CallType:   scheduling.CallTypeFollowUp,
				ClientName: "Emma Johnson",
				StartTime:  "11:30",
			}
		}}
		router := newTestRouter(service, nil)

		payload := `{"clientId":"client1","callType":"onboarding","date":"2024-06-10","startTime":"11:30"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload)))

		if rec.Code != http.StatusConflict {
			t.Fatalf("status: got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		want := "booking conflicts with existing follow-up call for Emma Johnson at 11:30"
		if body["message"] != want {
			t.Errorf("message: got %v", body["message"])
		}
	})

	t.Run("create maps unknown clients to 404", func(t *testing.T) {
		t.Parallel()

		service := &stubBookingService{createFn: func(context.Context, application.BookingInput) (application.Booking, error) {
			return application.Booking{}, application.ErrClientNotFound
		}}
		router := newTestRouter(service, nil)

		payload := `{"clientId":"ghost","callType":"onboarding","date":"2024-06-10","startTime":"10:30"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload)))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status: got %d", rec.Code)
		}
	})

	t.Run("create maps storage failures to 500", func(t *testing.T) {
		t.Parallel()

		service := &stubBookingService{createFn: func(context.Context, application.BookingInput) (application.Booking, error) {
			return application.Booking{}, application.ErrStoreUnavailable
		}}
		router := newTestRouter(service, nil)

		payload := `{"clientId":"client1","callType":"onboarding","date":"2024-06-10","startTime":"10:30"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload)))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status: got %d", rec.Code)
		}
	})

	t.Run("delete responds 204 and forwards the raw id", func(t *testing.T) {
		t.Parallel()

		var deleted string
		service := &stubBookingService{deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		}}
		router := newTestRouter(service, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/bk1-2024-06-17", nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status: got %d", rec.Code)
		}
		if deleted != "bk1-2024-06-17" {
			t.Errorf("handler must pass the raw id through, got %q", deleted)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("204 response must have no body, got %q", rec.Body.String())
		}
	})

	t.Run("rejects unsupported methods", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(&stubBookingService{}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/bookings", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("PUT /api/bookings: got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings/2024-06-10", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("POST /api/bookings/{date}: got %d", rec.Code)
		}
	})
}

func TestClientHandler(t *testing.T) {
	t.Parallel()

	t.Run("lists clients as a JSON array", func(t *testing.T) {
		t.Parallel()

		service := &stubClientService{listFn: func(context.Context) ([]application.Client, error) {
			return []application.Client{
				{ID: "client1", Name: "Emma Johnson", Phone: "+1-555-0101"},
				{ID: "client2", Name: "Liam Williams", Phone: "+1-555-0102"},
			}, nil
		}}
		router := newTestRouter(nil, service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d", rec.Code)
		}
		var clients []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &clients); err != nil {
			t.Fatalf("response is not a JSON array: %v", err)
		}
		if len(clients) != 2 || clients[0]["name"] != "Emma Johnson" {
			t.Errorf("unexpected payload: %v", clients)
		}
	})

	t.Run("renders an empty roster as []", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(nil, &stubClientService{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Fatalf("expected [], got %q", rec.Body.String())
		}
	})

	t.Run("maps storage failures to 500", func(t *testing.T) {
		t.Parallel()

		service := &stubClientService{listFn: func(context.Context) ([]application.Client, error) {
			return nil, application.ErrStoreUnavailable
		}}
		router := newTestRouter(nil, service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status: got %d", rec.Code)
		}
	})
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	now := func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) }

	t.Run("healthy store", func(t *testing.T) {
		t.Parallel()

		router := NewRouter(RouterConfig{Health: NewHealthHandler(stubPinger{}, now, nil)})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["status"] != "OK" || body["timestamp"] != "2024-06-10T12:00:00Z" {
			t.Errorf("unexpected payload: %v", body)
		}
	})

	t.Run("unreachable store", func(t *testing.T) {
		t.Parallel()

		router := NewRouter(RouterConfig{Health: NewHealthHandler(stubPinger{err: errors.New("no such file")}, now, nil)})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status: got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["status"] != "UNAVAILABLE" {
			t.Errorf("unexpected payload: %v", body)
		}
	})
}
