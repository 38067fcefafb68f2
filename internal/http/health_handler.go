package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// StorePinger reports whether the backing store is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness checks, optionally probing the store.
type HealthHandler struct {
	pinger    StorePinger
	now       func() time.Time
	responder responder
}

// NewHealthHandler wires a health handler. pinger may be nil for a plain
// process liveness check.
func NewHealthHandler(pinger StorePinger, now func() time.Time, logger *slog.Logger) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{pinger: pinger, now: now, responder: newResponder(logger)}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Check responds 200 when the service and its store are healthy, 503 otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := healthResponse{Status: "OK", Timestamp: h.now().UTC().Format(time.RFC3339)}

	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			h.responder.loggerFor(r.Context()).ErrorContext(r.Context(), "store ping failed", "error", err)
			resp.Status = "UNAVAILABLE"
			h.responder.writeJSON(r.Context(), w, http.StatusServiceUnavailable, resp)
			return
		}
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, resp)
}
