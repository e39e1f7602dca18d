package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the stored representation of a user. ID and the timestamps are
// assigned by the store.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"password"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser is the record handed to a Store. The validate tags are the schema
// the store enforces before writing.
type NewUser struct {
	Name     string `json:"name" validate:"required,printable,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// Store persists users.
type Store interface {
	// Create stores u and returns the stored record. Schema violations are
	// reported as *ValidationError; any other error is a storage failure.
	Create(ctx context.Context, u NewUser) (*User, error)
}
