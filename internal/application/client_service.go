package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ClientStore captures the persistence interactions for the client roster.
type ClientStore interface {
	GetClient(ctx context.Context, id string) (Client, error)
	ListClients(ctx context.Context) ([]Client, error)
	CountClients(ctx context.Context) (int, error)
	SeedClients(ctx context.Context, clients []Client) error
}

// seedRoster is the starter client list inserted into an empty store on first
// start. IDs are generated at seeding time.
var seedRoster = []Client{
	{Name: "Emma Johnson", Phone: "+1-555-0101"},
	{Name: "Liam Williams", Phone: "+1-555-0102"},
	{Name: "Olivia Brown", Phone: "+1-555-0103"},
	{Name: "Noah Davis", Phone: "+1-555-0104"},
	{Name: "Ava Miller", Phone: "+1-555-0105"},
	{Name: "William Wilson", Phone: "+1-555-0106"},
	{Name: "Sophia Moore", Phone: "+1-555-0107"},
	{Name: "James Taylor", Phone: "+1-555-0108"},
	{Name: "Isabella Anderson", Phone: "+1-555-0109"},
	{Name: "Benjamin Thomas", Phone: "+1-555-0110"},
	{Name: "Mia Jackson", Phone: "+1-555-0111"},
	{Name: "Lucas White", Phone: "+1-555-0112"},
	{Name: "Charlotte Harris", Phone: "+1-555-0113"},
	{Name: "Henry Martin", Phone: "+1-555-0114"},
	{Name: "Amelia Thompson", Phone: "+1-555-0115"},
	{Name: "Alexander Garcia", Phone: "+1-555-0116"},
	{Name: "Harper Martinez", Phone: "+1-555-0117"},
	{Name: "Michael Robinson", Phone: "+1-555-0118"},
	{Name: "Evelyn Clark", Phone: "+1-555-0119"},
	{Name: "Daniel Rodriguez", Phone: "+1-555-0120"},
}

// ClientService exposes the client roster.
type ClientService struct {
	clients     ClientStore
	idGenerator func() string
	logger      *slog.Logger
}

// NewClientService wires dependencies for client operations.
func NewClientService(clients ClientStore, idGenerator func() string) *ClientService {
	return NewClientServiceWithLogger(clients, idGenerator, nil)
}

// NewClientServiceWithLogger constructs a ClientService with a specified logger.
func NewClientServiceWithLogger(clients ClientStore, idGenerator func() string, logger *slog.Logger) *ClientService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &ClientService{
		clients:     clients,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

func (s *ClientService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ClientService", operation, attrs...)
}

// GetClient retrieves a single client by id.
func (s *ClientService) GetClient(ctx context.Context, id string) (Client, error) {
	if s == nil {
		return Client{}, fmt.Errorf("ClientService is nil")
	}
	client, err := s.clients.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Client{}, ErrClientNotFound
		}
		return Client{}, storeError(err)
	}
	return client, nil
}

// ListClients returns the roster ordered by display name.
func (s *ClientService) ListClients(ctx context.Context) ([]Client, error) {
	if s == nil {
		return nil, fmt.Errorf("ClientService is nil")
	}
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return clients, nil
}

// EnsureSeeded populates an empty store with the starter roster. A store that
// already holds clients is left untouched; the returned count is the number
// of clients inserted.
func (s *ClientService) EnsureSeeded(ctx context.Context) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("ClientService is nil")
	}

	logger := s.loggerWith(ctx, "EnsureSeeded")

	count, err := s.clients.CountClients(ctx)
	if err != nil {
		return 0, storeError(err)
	}
	if count > 0 {
		logger.DebugContext(ctx, "client roster already populated", "count", count)
		return 0, nil
	}

	seeded := make([]Client, 0, len(seedRoster))
	for _, client := range seedRoster {
		client.ID = s.idGenerator()
		seeded = append(seeded, client)
	}

	if err := s.clients.SeedClients(ctx, seeded); err != nil {
		return 0, storeError(err)
	}

	logger.InfoContext(ctx, "client roster seeded", "count", len(seeded))
	return len(seeded), nil
}
