package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store defines notification settings data operations.
type Store interface {
	Get(ctx context.Context, userID string) (*Settings, error)
	Upsert(ctx context.Context, s Settings) (*Settings, error)
}

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates the notification_settings table if needed and
// returns a store bound to db.
func NewPostgresStore(db *sqlx.DB) (*PostgresStore, error) {
	schema := `
	CREATE TABLE IF NOT EXISTS notification_settings (
		user_id TEXT PRIMARY KEY,
		enabled BOOLEAN NOT NULL,
		timing TEXT NOT NULL,
		voice_enabled BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create notification_settings table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Get returns the stored settings for userID, or nil when the user has
// never saved any.
func (s *PostgresStore) Get(ctx context.Context, userID string) (*Settings, error) {
	var out Settings
	err := s.db.GetContext(ctx, &out,
		"SELECT user_id, enabled, timing, voice_enabled, created_at, updated_at FROM notification_settings WHERE user_id = $1",
		userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	return &out, nil
}

// Upsert writes the full settings record, materializing it on first write.
func (s *PostgresStore) Upsert(ctx context.Context, in Settings) (*Settings, error) {
	var out Settings
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO notification_settings (user_id, enabled, timing, voice_enabled, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET enabled = $2, timing = $3, voice_enabled = $4, updated_at = $6
		 RETURNING user_id, enabled, timing, voice_enabled, created_at, updated_at`,
		in.UserID, in.Enabled, in.Timing, in.VoiceEnabled, in.CreatedAt, in.UpdatedAt).StructScan(&out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert notification settings: %w", err)
	}
	return &out, nil
}
