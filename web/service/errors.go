package service

import (
	"errors"
)

// Recoverable outcomes the presentation layer can act on. Lookup misses,
// uniqueness conflicts and failed logins are reported through these values,
// never through generic errors.
var (
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ConflictError reports a uniqueness violation on a specific account field.
// The field stays discriminated in the core even if the UI collapses the
// message.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + " already in use"
}

var (
	ErrUsernameTaken = &ConflictError{Field: "username"}
	ErrEmailTaken    = &ConflictError{Field: "email"}
)

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
