package user

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrMissingFields = errors.New("missing required fields")

// ValidationError is returned by a Store when a record breaks its schema.
// Errors maps field names to a description of the problem.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
