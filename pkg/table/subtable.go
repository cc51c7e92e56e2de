package table

import (
	"strings"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/ptable"
)

// DefaultThreshold is the abundance floor, in percent, below which
// isotopes are dropped from expansion. Stable isotopes sit orders of
// magnitude above it; it exists to exclude zero and trace abundances.
const DefaultThreshold = 1e-7

// expandIsotopes returns the per-position isotope choices for a
// combination. A plain element expands to its isotope list, a fixed
// isotope stays fixed; either way only isotopes with abundance strictly
// above threshold survive, so an unstable fixed isotope yields an empty
// position and the combination produces no rows.
func expandIsotopes(combo []ptable.Atom, threshold float64) [][]*ptable.Isotope {
	choices := make([][]*ptable.Isotope, len(combo))
	for i, a := range combo {
		var list []*ptable.Isotope
		if iso, ok := a.Isotope(); ok {
			list = []*ptable.Isotope{iso}
		} else {
			list = a.Element().Isotopes
		}
		kept := make([]*ptable.Isotope, 0, len(list))
		for _, iso := range list {
			// Zero-abundance isotopes never pass, whatever the threshold:
			// they would contribute an unobservable zero-probability row.
			if iso.Abundance > threshold && iso.Abundance > 0 {
				kept = append(kept, iso)
			}
		}
		choices[i] = kept
	}
	return choices
}

// isotopeCombinations walks the Cartesian product across positions and
// collapses tuples that are permutations of one another, keeping the first
// occurrence of each multiset in canonical order. Two positions holding
// the same element contribute interchangeably, so (H[1], H[2]) and
// (H[2], H[1]) are one isotopologue.
func isotopeCombinations(choices [][]*ptable.Isotope) [][]*ptable.Isotope {
	if len(choices) == 0 {
		return nil
	}
	for _, c := range choices {
		if len(c) == 0 {
			return nil
		}
	}

	var out [][]*ptable.Isotope
	seen := make(map[string]struct{})
	idx := make([]int, len(choices))
	for {
		comps := make([]*ptable.Isotope, len(choices))
		for i, k := range idx {
			comps[i] = choices[i][k]
		}
		ptable.SortIsotopes(comps)
		sig := componentSignature(comps)
		if _, ok := seen[sig]; !ok {
			seen[sig] = struct{}{}
			out = append(out, comps)
		}

		i := len(choices) - 1
		for i >= 0 && idx[i] == len(choices[i])-1 {
			idx[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
	}
}

func componentSignature(comps []*ptable.Isotope) string {
	var b strings.Builder
	for _, iso := range comps {
		b.WriteString(iso.String())
	}
	return b.String()
}

// Subtable builds every isotopologue row for one element combination:
// isotope expansion above the abundance threshold, assembled at each
// configured charge. Rows come out charge-major, all isotopologues at the
// first charge and then the next, matching the enumeration order group
// caches were populated with.
func Subtable(combo []ptable.Atom, charges []int, threshold float64) ([]core.Ion, error) {
	isocombs := isotopeCombinations(expandIsotopes(combo, threshold))
	rows := make([]core.Ion, 0, len(isocombs)*len(charges))
	for _, charge := range charges {
		for _, comps := range isocombs {
			ion, err := core.NewIon(comps, charge)
			if err != nil {
				return nil, err
			}
			rows = append(rows, ion)
		}
	}
	return rows, nil
}
