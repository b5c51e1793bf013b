// Package backend is the HTTP client for the external event backend, which
// owns authentication, event storage and promotions.
// File: backend/errors.go
package backend

import (
	"errors"
	"fmt"

	"go-event-portal/metrics"
)

var (
	// ErrUnreachable means the request never got an HTTP response.
	ErrUnreachable = errors.New("backend unreachable")
	// ErrIncompleteResponse means a 2xx response lacked fields the portal
	// depends on (user, role, token) or was not valid JSON.
	ErrIncompleteResponse = errors.New("backend response incomplete")
	// ErrNotFound is a 404 on a single-resource lookup.
	ErrNotFound = errors.New("not found")
)

// RejectedError is a non-2xx response or a response with success=false.
type RejectedError struct {
	Status  int
	Message string // backend-provided message, may be empty
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.Status)
	}
	return fmt.Sprintf("backend rejected request (status %d): %s", e.Status, e.Message)
}

// outcomeOf classifies err for metrics.
func outcomeOf(err error) string {
	var rejected *RejectedError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrUnreachable):
		return metrics.OutcomeUnreachable
	case errors.As(err, &rejected), errors.Is(err, ErrNotFound):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeInvalid
	}
}
