package user

import (
	"context"
	"userapi-go/internal/database"
	"userapi-go/internal/validation"

	"github.com/google/uuid"
)

type repository struct {
	*database.Repository
}

// NewRepository creates a PostgreSQL backed Store
func NewRepository(db *database.DB) Store {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, u NewUser) (*User, error) {
	if err := validation.Validate(&u); err != nil {
		return nil, &ValidationError{Errors: validation.Fields(err)}
	}

	query := `
        INSERT INTO users (id, name, email, password)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, email, password, created_at, updated_at`

	var user User
	if err := r.Get(ctx, &user, query, uuid.New(), u.Name, u.Email, u.Password); err != nil {
		return nil, r.Error("create user", translatePgError(err))
	}

	return &user, nil
}
