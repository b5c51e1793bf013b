// Package events file: events/lister.go
package events

import (
	"context"
	"errors"

	"go-event-portal/logger"
	"go-event-portal/models"
)

// Policy decides what a visitor without a session token gets.
type Policy int

const (
	// ShowcaseOnly shows guests the showcase events. Backend fetch failures
	// degrade to the showcase list with Listing.FetchErr set.
	ShowcaseOnly Policy = iota
	// LoginRequired refuses guests with ErrLoginRequired. Backend fetch
	// failures are returned to the caller.
	LoginRequired
)

// ErrLoginRequired is returned to guests under the LoginRequired policy.
var ErrLoginRequired = errors.New("please log in first to see events")

// RemoteSource fetches the backend-owned events.
type RemoteSource interface {
	ListEvents(ctx context.Context, token string) ([]models.RemoteEvent, error)
}

// Listing is one request's reconciled event list.
type Listing struct {
	Events   []models.CombinedEvent
	Remote   int   // number of backend events included
	FetchErr error // set when the backend fetch failed and was tolerated
}

// Lister fetches the remote list once per call and reconciles it with the
// showcase catalog.
type Lister struct {
	source RemoteSource
}

// NewLister creates a Lister over source.
func NewLister(source RemoteSource) *Lister {
	return &Lister{source: source}
}

// Build returns the combined list for a request. The backend is only
// contacted when token is non-empty.
func (l *Lister) Build(ctx context.Context, token string, policy Policy) (Listing, error) {
	showcase := Showcase()

	if token == "" {
		if policy == LoginRequired {
			return Listing{}, ErrLoginRequired
		}
		return Listing{Events: Reconcile(showcase, nil)}, nil
	}

	remote, err := l.source.ListEvents(ctx, token)
	if err != nil {
		if policy == LoginRequired {
			return Listing{}, err
		}
		logger.Warn.Printf("Lister.Build: backend fetch failed, showing showcase only: %v", err)
		return Listing{Events: Reconcile(showcase, nil), FetchErr: err}, nil
	}

	return Listing{Events: Reconcile(showcase, remote), Remote: len(remote)}, nil
}
