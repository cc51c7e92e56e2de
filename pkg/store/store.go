// Package store defines the persistent group cache contract: an
// appendable keyed table mapping element-combination identifiers to their
// built isotopologue subtables, with partial reads by m/z window.
package store

import (
	"context"
	"errors"

	"github.com/mzgrid/interfere/pkg/core"
)

// ErrCorrupt indicates a cache whose schema or contents cannot be read.
// Callers should reset the cache rather than retry.
var ErrCorrupt = errors.New("store: corrupt group cache")

// Group pairs an element-combination identifier with its built subtable.
type Group struct {
	ID   string
	Rows []core.Ion
}

// LookupResult carries the union of rows for every identifier found plus
// the identifiers with nothing persisted. An identifier whose rows merely
// fall outside the requested window still counts as found, so callers do
// not rebuild groups the window happens to exclude.
type LookupResult struct {
	Rows    []core.Ion
	Missing []string
}

// Store is the persistent group cache. Appends are atomic per call and
// never rewrite previously persisted rows; stale mass-degenerate entries
// left behind by later appends are reconciled at consolidation, not
// in place.
type Store interface {
	// Lookup returns the union of rows for ids, restricted to an m/z
	// window at query time when one is given.
	Lookup(ctx context.Context, ids []string, window *core.Window) (*LookupResult, error)

	// Append persists newly built groups, dropping exact duplicates within
	// the call and mass-degenerate multiples of anything already persisted.
	Append(ctx context.Context, groups []Group) error

	// Keys returns every persisted canonical key in insertion order.
	Keys(ctx context.Context) ([]string, error)

	// Reset wipes all persisted groups for a clean rebuild.
	Reset(ctx context.Context) error

	Close() error
}
