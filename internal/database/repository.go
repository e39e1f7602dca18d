package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository provides common database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Get selects a single row into a destination struct
func (r *Repository) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return r.db.GetContext(ctx, dest, query, args...)
}

// Exec executes a query without returning any rows
func (r *Repository) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return r.db.ExecContext(ctx, query, args...)
}

// Error wraps repository errors with context
func (r *Repository) Error(op string, err error) error {
	return fmt.Errorf("repository %s: %w", op, err)
}
