package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mukulraj109/healthtick/internal/application"
	"github.com/Mukulraj109/healthtick/internal/config"
	httptransport "github.com/Mukulraj109/healthtick/internal/http"
	"github.com/Mukulraj109/healthtick/internal/metrics"
	"github.com/Mukulraj109/healthtick/internal/persistence"
	"github.com/Mukulraj109/healthtick/internal/persistence/sqlite"
	"github.com/Mukulraj109/healthtick/internal/scheduling"
)

func main() {
	// Missing .env files are fine; the environment may be set directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.LogLevel != slog.LevelInfo {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := sqlite.NewConnectionPool(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := pool.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	idGenerator := func() string {
		// Occurrence ids append "-<date>" to booking ids, so generated ids
		// stay dash free.
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	bookingStore := newBookingStoreAdapter(sqlite.NewBookingRepository(pool))
	clientStore := newClientStoreAdapter(sqlite.NewClientRepository(pool))

	bookingService := application.NewBookingServiceWithLogger(bookingStore, clientStore, idGenerator, time.Now, logger)
	clientService := application.NewClientServiceWithLogger(clientStore, idGenerator, logger)

	if cfg.SeedClients {
		seeded, err := clientService.EnsureSeeded(context.Background())
		if err != nil {
			logger.Error("failed to seed client roster", "error", err)
			os.Exit(1)
		}
		metrics.ClientsSeeded.Add(float64(seeded))
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Bookings: httptransport.NewBookingHandler(bookingService, logger),
		Clients:  httptransport.NewClientHandler(clientService, logger),
		Health:   httptransport.NewHealthHandler(pool, time.Now, logger),
		Metrics:  promhttp.Handler(),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
			httptransport.CollectMetrics(),
			httptransport.CORS(cfg.CORSOrigins),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("calendar API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

type bookingStoreAdapter struct {
	repo persistence.BookingRepository
}

func newBookingStoreAdapter(repo persistence.BookingRepository) *bookingStoreAdapter {
	return &bookingStoreAdapter{repo: repo}
}

func (a *bookingStoreAdapter) InsertBooking(ctx context.Context, booking application.Booking) error {
	return mapStoreError(a.repo.InsertBooking(ctx, toPersistenceBooking(booking)))
}

func (a *bookingStoreAdapter) ListBookingsByDate(ctx context.Context, date string) ([]application.Booking, error) {
	stored, err := a.repo.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return toApplicationBookings(stored)
}

func (a *bookingStoreAdapter) ListRecurringBookings(ctx context.Context) ([]application.Booking, error) {
	stored, err := a.repo.ListRecurringBookings(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return toApplicationBookings(stored)
}

func (a *bookingStoreAdapter) DeleteBooking(ctx context.Context, id string) error {
	return mapStoreError(a.repo.DeleteBooking(ctx, id))
}

type clientStoreAdapter struct {
	repo persistence.ClientRepository
}

func newClientStoreAdapter(repo persistence.ClientRepository) *clientStoreAdapter {
	return &clientStoreAdapter{repo: repo}
}

func (a *clientStoreAdapter) GetClient(ctx context.Context, id string) (application.Client, error) {
	stored, err := a.repo.GetClient(ctx, id)
	if err != nil {
		return application.Client{}, mapStoreError(err)
	}
	return application.Client{ID: stored.ID, Name: stored.Name, Phone: stored.Phone}, nil
}

func (a *clientStoreAdapter) ListClients(ctx context.Context) ([]application.Client, error) {
	stored, err := a.repo.ListClients(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	clients := make([]application.Client, 0, len(stored))
	for _, client := range stored {
		clients = append(clients, application.Client{ID: client.ID, Name: client.Name, Phone: client.Phone})
	}
	return clients, nil
}

func (a *clientStoreAdapter) CountClients(ctx context.Context) (int, error) {
	count, err := a.repo.CountClients(ctx)
	if err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}

func (a *clientStoreAdapter) SeedClients(ctx context.Context, clients []application.Client) error {
	stored := make([]persistence.Client, 0, len(clients))
	for _, client := range clients {
		stored = append(stored, persistence.Client{ID: client.ID, Name: client.Name, Phone: client.Phone})
	}
	return mapStoreError(a.repo.SeedClients(ctx, stored))
}

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return application.ErrNotFound
	}
	return err
}

func toPersistenceBooking(booking application.Booking) persistence.Booking {
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

func toApplicationBookings(stored []persistence.Booking) ([]application.Booking, error) {
	bookings := make([]application.Booking, 0, len(stored))
	for _, row := range stored {
		booking, err := toApplicationBooking(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func toApplicationBooking(stored persistence.Booking) (application.Booking, error) {
	callType, err := scheduling.ParseCallType(stored.CallType)
	if err != nil {
		return application.Booking{}, fmt.Errorf("stored booking %s: %w", stored.ID, err)
	}
	return application.Booking{
		ID:          stored.ID,
		ClientID:    stored.ClientID,
		ClientName:  stored.ClientName,
		ClientPhone: stored.ClientPhone,
		CallType:    callType,
		Date:        stored.Date,
		StartTime:   stored.StartTime,
		EndTime:     stored.EndTime,
		Duration:    stored.Duration,
		Recurring:   stored.Recurring,
		CreatedAt:   stored.CreatedAt,
		UpdatedAt:   stored.UpdatedAt,
	}, nil
}
