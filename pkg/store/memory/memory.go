// Package memory provides an in-process group store, used by tests and by
// callers that want lookup/append symmetry without a cache file.
package memory

import (
	"context"
	"sync"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/store"
)

// Store keeps groups in maps behind one mutex. Lookups return rows grouped
// by requested identifier, each group in append order, so results are
// deterministic.
type Store struct {
	mu     sync.RWMutex
	groups map[string][]core.Ion
	order  []string
}

var _ store.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{groups: make(map[string][]core.Ion)}
}

// Lookup returns the union of rows for ids. Identifiers without any rows
// are reported in Missing; a window only narrows the rows of identifiers
// that are present.
func (s *Store) Lookup(ctx context.Context, ids []string, window *core.Window) (*store.LookupResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := &store.LookupResult{}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rows, ok := s.groups[id]
		if !ok {
			res.Missing = append(res.Missing, id)
			continue
		}
		for _, r := range rows {
			if window != nil && !window.Contains(r.MZ) {
				continue
			}
			res.Rows = append(res.Rows, r)
		}
	}
	return res, nil
}

// Append merges the new groups, removes exact duplicates within the call,
// drops mass-degenerate multiples of anything already persisted and stores
// the survivors. The mutation happens only after every check passes, so a
// failed call leaves the store untouched. Groups that end up empty are not
// recorded; rebuilding an empty group is cheaper than remembering it.
func (s *Store) Append(ctx context.Context, groups []store.Group) error {
	var rows []core.Ion
	gidOf := make(map[string]string)
	maxCharge := 0
	for _, g := range groups {
		for _, r := range g.Rows {
			rows = append(rows, r)
			if _, ok := gidOf[r.Key]; !ok {
				gidOf[r.Key] = g.ID
			}
			if r.Charge > maxCharge {
				maxCharge = r.Charge
			}
		}
	}
	rows, _ = core.DedupExact(rows)

	s.mu.Lock()
	defer s.mu.Unlock()
	kept, _, err := core.DedupMultiples(rows, s.keysLocked(), maxCharge)
	if err != nil {
		return err
	}
	for _, r := range kept {
		id := gidOf[r.Key]
		if _, ok := s.groups[id]; !ok {
			s.order = append(s.order, id)
		}
		s.groups[id] = append(s.groups[id], r)
	}
	return nil
}

// Keys returns every persisted canonical key in insertion order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keysLocked(), nil
}

func (s *Store) keysLocked() []string {
	var keys []string
	for _, id := range s.order {
		for _, r := range s.groups[id] {
			keys = append(keys, r.Key)
		}
	}
	return keys
}

// Reset drops all persisted groups.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = make(map[string][]core.Ion)
	s.order = nil
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }
