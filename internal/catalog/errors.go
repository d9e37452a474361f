package catalog

import "errors"

var (
	// ErrNotFound is returned when a requested user, book, or page does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner is returned when a caller tries to mutate a book (or its
	// pages) they did not create.
	ErrNotOwner = errors.New("you do not have permission to access this resource")

	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicate is returned by stores when an insert or update violates a
	// uniqueness constraint (user email, page number within a book).
	ErrDuplicate = errors.New("already exists")
)

// ValidationError carries per-field validation messages for 400 responses.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func newValidationError(fields map[string][]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
