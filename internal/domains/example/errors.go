package example

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Business Rule Errors
	ErrExampleNotFound = errors.New("example item not found")

	// Database Errors
	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseQuery      = errors.New("database query error")
)

// FieldError is a single field-level validation failure.
// The API serialises a list of these under "validation_errors".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors unwraps an ozzo validation error into a (field, message)
// list sorted by field name. Returns nil when err carries no field errors,
// so callers can use it to distinguish validation failures from other
// errors.
func FieldErrors(err error) []FieldError {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(verrs))
	for field, ferr := range verrs {
		fields = append(fields, FieldError{
			Field:   field,
			Message: ferr.Error(),
		})
	}

	// Map iteration order is random; sort for deterministic responses
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Field < fields[j].Field
	})

	return fields
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	if FieldErrors(err) != nil {
		return 400
	}
	switch {
	case errors.Is(err, ErrExampleNotFound):
		return 404
	default:
		return 500
	}
}
