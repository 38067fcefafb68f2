package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Mukulraj109/healthtick/internal/application"
)

type clientService interface {
	ListClients(ctx context.Context) ([]application.Client, error)
}

// ClientHandler serves the client roster endpoint.
type ClientHandler struct {
	service   clientService
	responder responder
}

// NewClientHandler wires a client handler with its service dependency.
func NewClientHandler(service clientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{service: service, responder: newResponder(logger)}
}

type clientDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// List returns every client ordered by display name.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	clients, err := h.service.ListClients(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]clientDTO, 0, len(clients))
	for _, client := range clients {
		dtos = append(dtos, clientDTO{ID: client.ID, Name: client.Name, Phone: client.Phone})
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}
