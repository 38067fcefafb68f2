package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mukulraj109/healthtick/internal/persistence"
)

// ClientRepository implements persistence.ClientRepository using SQLite.
type ClientRepository struct {
	pool *ConnectionPool
}

// NewClientRepository creates a SQLite-backed client repository.
func NewClientRepository(pool *ConnectionPool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// GetClient retrieves a client by id.
func (r *ClientRepository) GetClient(ctx context.Context, id string) (persistence.Client, error) {
	if id == "" {
		return persistence.Client{}, persistence.ErrNotFound
	}

	var client persistence.Client
	err := r.pool.db.QueryRowContext(ctx,
		`SELECT id, name, phone FROM clients WHERE id = ?`, id,
	).Scan(&client.ID, &client.Name, &client.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Client{}, persistence.ErrNotFound
		}
		return persistence.Client{}, mapError(err)
	}

	return client, nil
}

// ListClients returns all clients ordered by display name.
func (r *ClientRepository) ListClients(ctx context.Context) ([]persistence.Client, error) {
	rows, err := r.pool.db.QueryContext(ctx,
		`SELECT id, name, phone FROM clients ORDER BY name ASC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var clients []persistence.Client
	for rows.Next() {
		var client persistence.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Phone); err != nil {
			return nil, mapError(err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return clients, nil
}

// CountClients reports the number of stored clients.
func (r *ClientRepository) CountClients(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

// SeedClients inserts the provided clients inside a single transaction.
func (r *ClientRepository) SeedClients(ctx context.Context, clients []persistence.Client) error {
	if len(clients) == 0 {
		return nil
	}

	return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		for _, client := range clients {
			if _, err := tx.Exec(
				`INSERT INTO clients (id, name, phone) VALUES (?, ?, ?)`,
				client.ID, client.Name, client.Phone,
			); err != nil {
				return mapError(err)
			}
		}
		return nil
	})
}
