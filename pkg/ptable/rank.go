package ptable

import (
	"fmt"
	"sort"
	"sync"
)

// Formula ordering follows the IUPAC electronegativity sequence used in
// inorganic nomenclature: the table is walked from the most electronegative
// end (halogens, chalcogens, hydrogen, then the remaining groups right to
// left, finishing with the alkali metals and noble gases) and the resulting
// list is reversed, so electropositive elements take the lowest ranks and
// fluorine the highest.

var (
	rankOnce sync.Once
	rankByZ  map[int]int
)

func ranks() map[int]int {
	rankOnce.Do(func() { rankByZ = buildRanks() })
	return rankByZ
}

func buildRanks() map[int]int {
	var fwd []*Element
	fwd = append(fwd, group(17)...)
	fwd = append(fwd, group(16)...)
	if h, err := Lookup("H"); err == nil {
		fwd = append(fwd, h)
	}
	for g := 15; g >= 4; g-- {
		fwd = append(fwd, group(g)...)
	}
	fwd = append(fwd, scandiumGroup()...)
	fwd = append(fwd, lanthanoids()...)
	fwd = append(fwd, actinoids()...)
	fwd = append(fwd, group(2)...)
	fwd = append(fwd, alkaliMetals()...)
	fwd = append(fwd, group(18)...)

	m := make(map[int]int, len(fwd))
	for i, el := range fwd {
		m[el.Z] = len(fwd) - 1 - i
	}
	return m
}

// group returns the members of an IUPAC group ordered by period. Callers
// never pass 3: the f-block and the d-block group 3 members are handled
// separately.
func group(g int) []*Element {
	var els []*Element
	for _, el := range Elements() {
		if el.Group == g && !isLanthanoid(el) && !isActinoid(el) {
			els = append(els, el)
		}
	}
	return els
}

func scandiumGroup() []*Element {
	var els []*Element
	for _, el := range Elements() {
		if el.Group == 3 && el.Period <= 5 {
			els = append(els, el)
		}
	}
	return els
}

func lanthanoids() []*Element {
	var els []*Element
	for _, el := range Elements() {
		if isLanthanoid(el) {
			els = append(els, el)
		}
	}
	return els
}

func actinoids() []*Element {
	var els []*Element
	for _, el := range Elements() {
		if isActinoid(el) {
			els = append(els, el)
		}
	}
	return els
}

func alkaliMetals() []*Element {
	var els []*Element
	for _, el := range Elements() {
		if el.Group == 1 && el.Symbol != "H" {
			els = append(els, el)
		}
	}
	return els
}

func isLanthanoid(el *Element) bool { return el.Z >= 57 && el.Z <= 71 }

func isActinoid(el *Element) bool { return el.Z >= 89 && el.Z <= 103 }

// Rank returns the ordering rank of the atom's element. Lower ranks sort
// first in a formula. Isotopes share their element's rank.
func Rank(a Atom) (int, error) {
	r, ok := ranks()[a.Element().Z]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnmappedRank, a.Element().Symbol)
	}
	return r, nil
}

// mustRank is for atoms built from the embedded table, which covers every
// ranked element. A miss means the dataset and the ordering disagree and is
// not recoverable.
func mustRank(a Atom) int {
	r, err := Rank(a)
	if err != nil {
		panic(err)
	}
	return r
}

// CompareAtoms orders atoms into canonical formula order: by element rank,
// then by mass number ascending, so a plain element sorts ahead of its
// isotopes and isotopes of one element sort light to heavy.
func CompareAtoms(a, b Atom) int {
	if ra, rb := mustRank(a), mustRank(b); ra != rb {
		return ra - rb
	}
	return a.massNumber() - b.massNumber()
}

// CompareIsotopes orders isotopes the same way CompareAtoms does.
func CompareIsotopes(a, b *Isotope) int {
	if ra, rb := mustRank(IsotopeAtom(a)), mustRank(IsotopeAtom(b)); ra != rb {
		return ra - rb
	}
	return a.A - b.A
}

// SortAtoms sorts atoms in place into canonical formula order.
func SortAtoms(atoms []Atom) {
	sort.SliceStable(atoms, func(i, j int) bool {
		return CompareAtoms(atoms[i], atoms[j]) < 0
	})
}

// SortIsotopes sorts isotopes in place into canonical formula order.
func SortIsotopes(isos []*Isotope) {
	sort.SliceStable(isos, func(i, j int) bool {
		return CompareIsotopes(isos[i], isos[j]) < 0
	})
}
