package core

import (
	"strings"

	"github.com/mzgrid/interfere/pkg/ptable"
)

// DedupExact drops rows whose key already appeared earlier in the slice,
// keeping the first occurrence. The dropped keys are returned for debug
// logging.
func DedupExact(rows []Ion) ([]Ion, []string) {
	seen := make(map[string]struct{}, len(rows))
	kept := make([]Ion, 0, len(rows))
	var dropped []string
	for _, r := range rows {
		if _, ok := seen[r.Key]; ok {
			dropped = append(dropped, r.Key)
			continue
		}
		seen[r.Key] = struct{}{}
		kept = append(kept, r)
	}
	return kept, dropped
}

// DedupMultiples drops mass-degenerate charge multiples. Repeating every
// component of a molecule t times while multiplying the charge by t leaves
// m/z bit-identical, so the expanded row labels the same observed peak as
// the simple one and only the simple row is kept.
//
// Seeds are compositions with at most half the atoms of the largest row in
// scope; target charges are the even values up to maxCharge. Odd charges
// and larger tiers are not checked, a known limitation carried over from
// the historical table behaviour. persisted supplies keys stored by
// earlier appends so their compositions seed the check too; only rows are
// filtered, persisted entries are reconciled at consolidation.
func DedupMultiples(rows []Ion, persisted []string, maxCharge int) ([]Ion, []string, error) {
	if len(rows) == 0 || maxCharge < 2 {
		return rows, nil, nil
	}

	type seed struct {
		comps []*ptable.Isotope
	}
	seeds := make([]seed, 0, len(rows)+len(persisted))
	keys := make(map[string]struct{}, len(rows)+len(persisted))
	largest := 0
	for _, r := range rows {
		keys[r.Key] = struct{}{}
		seeds = append(seeds, seed{comps: r.Components})
		if len(r.Components) > largest {
			largest = len(r.Components)
		}
	}
	for _, k := range persisted {
		comps, _, err := ParseKey(k)
		if err != nil {
			return nil, nil, err
		}
		keys[k] = struct{}{}
		seeds = append(seeds, seed{comps: comps})
		if len(comps) > largest {
			largest = len(comps)
		}
	}

	drop := make(map[string]struct{})
	for _, s := range seeds {
		if len(s.comps)*2 > largest {
			continue
		}
		for t := 2; t <= maxCharge; t += 2 {
			mult := multipleKey(s.comps, t)
			if _, ok := keys[mult]; ok {
				drop[mult] = struct{}{}
			}
		}
	}
	if len(drop) == 0 {
		return rows, nil, nil
	}

	kept := make([]Ion, 0, len(rows))
	dropped := make([]string, 0, len(drop))
	for _, r := range rows {
		if _, ok := drop[r.Key]; ok {
			dropped = append(dropped, r.Key)
			continue
		}
		kept = append(kept, r)
	}
	return kept, dropped, nil
}

// multipleKey renders the key of a composition repeated t times at charge
// t. Repeating each sorted component in place preserves canonical order.
func multipleKey(comps []*ptable.Isotope, t int) string {
	var b strings.Builder
	for _, iso := range comps {
		s := iso.String()
		for i := 0; i < t; i++ {
			b.WriteString(s)
		}
	}
	for i := 0; i < t; i++ {
		b.WriteByte('+')
	}
	return b.String()
}
