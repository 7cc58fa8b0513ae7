// Package storage defines the persistence contract for the habit
// collection.
package storage

import (
	"context"
	"errors"

	"github.com/habitual-app/habitual/internal/types"
)

// ErrNoState is returned by Load when nothing has been saved yet
var ErrNoState = errors.New("no saved state")

// Store persists the habit collection. Failures to save are
// best-effort from the caller's point of view: the in-memory
// collection stays authoritative for the session.
type Store interface {
	// Load reads the saved collection. Returns ErrNoState when no
	// collection has been written yet.
	Load(ctx context.Context) (types.Collection, error)

	// Save writes the full collection, replacing any previous state.
	Save(ctx context.Context, c types.Collection) error

	// Close releases the underlying resources
	Close() error
}
