package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateUser rejects a registration whose email is taken.
	ErrDuplicateUser = errors.New("a user with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMovieNotFound means the referenced movie id has no document.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrUserNotFound means the session's user id has no document.
	ErrUserNotFound = errors.New("user not found")
)

// FieldError is one failed check on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects field errors in the order the checks are
// declared: required-ness first, then range checks.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors unwraps err into a ValidationErrors value.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
