package table

import (
	"fmt"

	"github.com/mzgrid/interfere/pkg/ptable"
)

// Combinations enumerates the unordered multisets of size 1..maxAtoms
// drawn from atoms with repetition, smallest molecules first. Input atoms
// are canonically sorted up front, so every emitted combination is sorted
// and the derived group identifiers are order-independent. Within a size
// tier combinations run in reverse enumeration order; group identity makes
// the exact order cosmetic, but it is kept stable for reproducible logs.
func Combinations(atoms []ptable.Atom, maxAtoms int) ([][]ptable.Atom, error) {
	if len(atoms) == 0 {
		return nil, ErrEmptyElements
	}
	if maxAtoms < 1 {
		return nil, fmt.Errorf("%w: %d", ErrMaxAtoms, maxAtoms)
	}
	sorted := make([]ptable.Atom, len(atoms))
	copy(sorted, atoms)
	ptable.SortAtoms(sorted)

	var combos [][]ptable.Atom
	for n := maxAtoms; n >= 1; n-- {
		combos = append(combos, withReplacement(sorted, n)...)
	}
	for i, j := 0, len(combos)-1; i < j; i, j = i+1, j-1 {
		combos[i], combos[j] = combos[j], combos[i]
	}
	return combos, nil
}

// withReplacement yields the size-n multisets over atoms as non-decreasing
// index tuples in lexicographic order.
func withReplacement(atoms []ptable.Atom, n int) [][]ptable.Atom {
	var out [][]ptable.Atom
	idx := make([]int, n)
	for {
		combo := make([]ptable.Atom, n)
		for i, k := range idx {
			combo[i] = atoms[k]
		}
		out = append(out, combo)

		i := n - 1
		for i >= 0 && idx[i] == len(atoms)-1 {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < n; j++ {
			idx[j] = idx[i]
		}
	}
}
