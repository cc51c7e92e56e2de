// Package table builds interference tables: it enumerates element
// combinations, expands them into isotopologue rows, deduplicates
// mass-degenerate entries and assembles sorted, optionally windowed
// result tables, consulting a persistent group store along the way.
package table

import (
	"fmt"
	"sort"

	"github.com/mzgrid/interfere/pkg/core"
)

// SortKey names a sortable table column.
type SortKey string

const (
	SortMZ         SortKey = "m_z"
	SortCharge     SortKey = "charge"
	SortMass       SortKey = "mass"
	SortIsoProduct SortKey = "iso_product"
	SortKeyName    SortKey = "key"
)

// DefaultSort is the column order applied when the caller does not choose:
// m/z, then charge, then mass.
var DefaultSort = []SortKey{SortMZ, SortCharge, SortMass}

// ParseSortKeys converts column names into sort keys.
func ParseSortKeys(names []string) ([]SortKey, error) {
	keys := make([]SortKey, 0, len(names))
	for _, n := range names {
		k := SortKey(n)
		switch k {
		case SortMZ, SortCharge, SortMass, SortIsoProduct, SortKeyName:
			keys = append(keys, k)
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadSortKey, n)
		}
	}
	return keys, nil
}

// Table is an ordered collection of candidate ions. Labels, when present,
// run parallel to Rows. They are attached after deduplication, so Dedup
// ignores them; operations that reorder or drop rows afterwards keep the
// two aligned.
type Table struct {
	Rows   []core.Ion
	Labels []string
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Keys returns the canonical keys of all rows in order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		keys[i] = r.Key
	}
	return keys
}

// Sort stable-sorts rows by the given column sequence; ties keep insertion
// order. An empty sequence applies DefaultSort.
func (t *Table) Sort(keys ...SortKey) error {
	if len(keys) == 0 {
		keys = DefaultSort
	}
	for _, k := range keys {
		switch k {
		case SortMZ, SortCharge, SortMass, SortIsoProduct, SortKeyName:
		default:
			return fmt.Errorf("%w: %q", ErrBadSortKey, string(k))
		}
	}
	sort.Stable(&tableSorter{t: t, keys: keys})
	return nil
}

type tableSorter struct {
	t    *Table
	keys []SortKey
}

func (s *tableSorter) Len() int { return len(s.t.Rows) }

func (s *tableSorter) Swap(i, j int) {
	rows := s.t.Rows
	rows[i], rows[j] = rows[j], rows[i]
	if s.t.Labels != nil {
		s.t.Labels[i], s.t.Labels[j] = s.t.Labels[j], s.t.Labels[i]
	}
}

func (s *tableSorter) Less(i, j int) bool {
	a, b := s.t.Rows[i], s.t.Rows[j]
	for _, k := range s.keys {
		switch k {
		case SortMZ:
			if a.MZ != b.MZ {
				return a.MZ < b.MZ
			}
		case SortCharge:
			if a.Charge != b.Charge {
				return a.Charge < b.Charge
			}
		case SortMass:
			if a.Mass != b.Mass {
				return a.Mass < b.Mass
			}
		case SortIsoProduct:
			if a.IsoProduct != b.IsoProduct {
				return a.IsoProduct < b.IsoProduct
			}
		case SortKeyName:
			if a.Key != b.Key {
				return a.Key < b.Key
			}
		}
	}
	return false
}

// FilterWindow keeps rows whose m/z lies inside w, preserving order. A nil
// window keeps everything.
func (t *Table) FilterWindow(w *Window) {
	if w == nil {
		return
	}
	rows := make([]core.Ion, 0, len(t.Rows))
	var labels []string
	if t.Labels != nil {
		labels = make([]string, 0, len(t.Labels))
	}
	for i, r := range t.Rows {
		if !w.Contains(r.MZ) {
			continue
		}
		rows = append(rows, r)
		if labels != nil {
			labels = append(labels, t.Labels[i])
		}
	}
	t.Rows = rows
	t.Labels = labels
}

// Dedup removes exact duplicate keys and then mass-degenerate multiples
// across the whole table, keeping first occurrences and simpler rows. The
// dropped keys are returned for debug logging.
func (t *Table) Dedup(maxCharge int) ([]string, error) {
	rows, droppedExact := core.DedupExact(t.Rows)
	rows, droppedMult, err := core.DedupMultiples(rows, nil, maxCharge)
	if err != nil {
		return nil, err
	}
	t.Rows = rows
	return append(droppedExact, droppedMult...), nil
}
