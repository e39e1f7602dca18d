package user

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that describe a bad value rather than a broken database.
const (
	pgNotNullViolation        = "23502"
	pgCheckViolation          = "23514"
	pgStringDataRightTruncate = "22001"
)

// constraintFields maps check constraints on the users table to the field
// they guard.
var constraintFields = map[string]string{
	"users_name_length":     "name",
	"users_email_length":    "email",
	"users_password_length": "password",
}

// translatePgError turns integrity violations on a single column into a
// *ValidationError. Everything else is returned unchanged.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgNotNullViolation:
		field := fieldName(pgErr)
		return &ValidationError{Errors: map[string]string{field: fmt.Sprintf("%s is required", field)}}
	case pgCheckViolation, pgStringDataRightTruncate:
		field := fieldName(pgErr)
		return &ValidationError{Errors: map[string]string{field: fmt.Sprintf("Invalid value for %s", field)}}
	default:
		return err
	}
}

func fieldName(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if field, ok := constraintFields[pgErr.ConstraintName]; ok {
		return field
	}
	return "user"
}
