package food

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store defines food item data operations. Every operation is scoped to an
// owner; lookups for rows owned by someone else behave as if the row does
// not exist.
type Store interface {
	List(ctx context.Context, userID string) ([]Food, error)
	Create(ctx context.Context, f *Food) error
	Get(ctx context.Context, userID, id string) (*Food, error)
	Update(ctx context.Context, f *Food) (*Food, error)
	Delete(ctx context.Context, userID, id string) (*Food, error)
}

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates the foods table if needed and returns a store
// bound to db.
func NewPostgresStore(db *sqlx.DB) (*PostgresStore, error) {
	schema := `
	CREATE TABLE IF NOT EXISTS foods (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		expiration_date TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS foods_user_id_idx ON foods (user_id);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create foods table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// List returns every food item owned by userID.
func (s *PostgresStore) List(ctx context.Context, userID string) ([]Food, error) {
	foods := []Food{}
	err := s.db.SelectContext(ctx, &foods,
		"SELECT id, user_id, name, category, expiration_date, image_url FROM foods WHERE user_id = $1 ORDER BY expiration_date, id",
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

// Create inserts a new food item, assigning an id when the caller did not.
func (s *PostgresStore) Create(ctx context.Context, f *Food) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO foods (id, user_id, name, category, expiration_date, image_url) VALUES ($1, $2, $3, $4, $5, $6)",
		f.ID, f.UserID, f.Name, f.Category, f.ExpirationDate, f.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to create food: %w", err)
	}
	return nil
}

// Get returns the item with the given id owned by userID, or nil when no
// such row exists.
func (s *PostgresStore) Get(ctx context.Context, userID, id string) (*Food, error) {
	var f Food
	err := s.db.GetContext(ctx, &f,
		"SELECT id, user_id, name, category, expiration_date, image_url FROM foods WHERE id = $1 AND user_id = $2",
		id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	return &f, nil
}

// Update rewrites an owned item and returns the stored row, or nil when the
// row does not exist for this owner.
func (s *PostgresStore) Update(ctx context.Context, f *Food) (*Food, error) {
	var out Food
	err := s.db.QueryRowxContext(ctx,
		`UPDATE foods SET name = $1, category = $2, expiration_date = $3, image_url = $4
		 WHERE id = $5 AND user_id = $6
		 RETURNING id, user_id, name, category, expiration_date, image_url`,
		f.Name, f.Category, f.ExpirationDate, f.ImageURL, f.ID, f.UserID).StructScan(&out)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update food: %w", err)
	}
	return &out, nil
}

// Delete removes an owned item and returns the deleted row, or nil when the
// row does not exist for this owner.
func (s *PostgresStore) Delete(ctx context.Context, userID, id string) (*Food, error) {
	var out Food
	err := s.db.QueryRowxContext(ctx,
		`DELETE FROM foods WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, category, expiration_date, image_url`,
		id, userID).StructScan(&out)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete food: %w", err)
	}
	return &out, nil
}
