package services

import (
	"errors"
	"strings"
)

// Recoverable error taxonomy: everything here maps to a 4xx and a user
// message; store errors pass through unmodified.
var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNoTransition = errors.New("no further transition")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("order changed concurrently")
)

// ValidationError lists the missing required fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PolicyDenied carries the exact denial reason, surfaced verbatim.
type PolicyDenied struct {
	Reason string
}

func (e *PolicyDenied) Error() string { return e.Reason }
