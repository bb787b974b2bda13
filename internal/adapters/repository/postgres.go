// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/ports"
)

const createSlotsTable = `CREATE TABLE IF NOT EXISTS session_slots (
	slot_key VARCHAR(255) PRIMARY KEY,
	slot_value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
)`

// PostgresRepository stores session slots in a single key/value table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) ports.KeyValueStorePort {
	return &PostgresRepository{db: db}
}

// InitSchema creates the slot table when missing.
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, createSlotsTable)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT slot_value FROM session_slots WHERE slot_key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO session_slots (slot_key, slot_value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (slot_key) DO UPDATE SET slot_value = EXCLUDED.slot_value, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, key, string(value))
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM session_slots WHERE slot_key = $1", key)
	return err
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM session_slots")
	return err
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
