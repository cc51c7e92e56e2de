// Package ptable provides the read-only periodic-table service backing the
// interference engine: elements, isotopes, the compact formula-with-isotope
// notation (e.g. "Ca[40]"), and the electronegativity-style ordering used to
// canonicalize molecular formulae.
package ptable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrUnknownElement indicates an element symbol absent from the embedded table.
	ErrUnknownElement = errors.New("ptable: unknown element symbol")
	// ErrUnknownIsotope indicates a mass number not listed for the element.
	ErrUnknownIsotope = errors.New("ptable: unknown isotope")
	// ErrBadAtom indicates atom notation that does not parse.
	ErrBadAtom = errors.New("ptable: malformed atom notation")
	// ErrUnmappedRank indicates an element missing from the ordering table.
	ErrUnmappedRank = errors.New("ptable: element has no ordering rank")
)

// Element is an atomic species from the embedded periodic table. Immutable.
type Element struct {
	Symbol   string
	Z        int // atomic number
	Period   int
	Group    int     // IUPAC group 1-18; lanthanoids and actinoids carry 3
	Weight   float64 // standard atomic weight, amu
	Isotopes []*Isotope
}

// String returns the element symbol.
func (e *Element) String() string { return e.Symbol }

// Isotope returns the isotope of e with the given mass number.
func (e *Element) Isotope(a int) (*Isotope, error) {
	for _, iso := range e.Isotopes {
		if iso.A == a {
			return iso, nil
		}
	}
	return nil, fmt.Errorf("%w: %s[%d]", ErrUnknownIsotope, e.Symbol, a)
}

// Isotope is an element at a specific mass number. Immutable. Abundance is
// the natural abundance in percent; it is zero for unstable or unmeasured
// isotopes, which makes them invisible to any positive abundance threshold.
type Isotope struct {
	Element   *Element
	A         int     // mass number
	Mass      float64 // isotopic mass, amu
	Abundance float64 // percent
}

// String returns the compact notation for the isotope, e.g. "Ca[40]".
func (i *Isotope) String() string {
	return i.Element.Symbol + "[" + strconv.Itoa(i.A) + "]"
}

// Atom is the closed input variant accepted at engine boundaries: either a
// plain element or one of its isotopes. Raw strings are converted exactly
// once, via ParseAtom. The zero Atom is invalid.
type Atom struct {
	el  *Element
	iso *Isotope // nil for a plain element
}

// ElementAtom wraps a plain element.
func ElementAtom(el *Element) Atom { return Atom{el: el} }

// IsotopeAtom wraps a specific isotope.
func IsotopeAtom(iso *Isotope) Atom { return Atom{el: iso.Element, iso: iso} }

// Element returns the atom's element (the parent element for an isotope).
func (a Atom) Element() *Element { return a.el }

// Isotope returns the specific isotope and true, or nil and false for a
// plain element.
func (a Atom) Isotope() (*Isotope, bool) { return a.iso, a.iso != nil }

// IsZero reports whether the atom is the invalid zero value.
func (a Atom) IsZero() bool { return a.el == nil }

// Mass returns the isotopic mass for an isotope atom, or the standard
// atomic weight for a plain element.
func (a Atom) Mass() float64 {
	if a.iso != nil {
		return a.iso.Mass
	}
	return a.el.Weight
}

// String renders the atom in the same notation ParseAtom accepts.
func (a Atom) String() string {
	if a.iso != nil {
		return a.iso.String()
	}
	return a.el.Symbol
}

// massNumber is 0 for a plain element, so elements sort ahead of their
// isotopes when ranks tie.
func (a Atom) massNumber() int {
	if a.iso != nil {
		return a.iso.A
	}
	return 0
}

// ParseAtom parses compact atom notation: an element symbol optionally
// followed by a bracketed mass number ("O", "Ca[40]"). The inverse of
// Atom.String.
func ParseAtom(s string) (Atom, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Atom{}, fmt.Errorf("%w: empty input", ErrBadAtom)
	}
	sym := s
	mass := 0
	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") || i == 0 {
			return Atom{}, fmt.Errorf("%w: %q", ErrBadAtom, s)
		}
		n, err := strconv.Atoi(s[i+1 : len(s)-1])
		if err != nil || n <= 0 {
			return Atom{}, fmt.Errorf("%w: %q", ErrBadAtom, s)
		}
		sym, mass = s[:i], n
	}
	el, err := Lookup(sym)
	if err != nil {
		return Atom{}, err
	}
	if mass == 0 {
		return ElementAtom(el), nil
	}
	iso, err := el.Isotope(mass)
	if err != nil {
		return Atom{}, err
	}
	return IsotopeAtom(iso), nil
}

// ParseAtoms parses a list of atom notations.
func ParseAtoms(ss []string) ([]Atom, error) {
	atoms := make([]Atom, 0, len(ss))
	for _, s := range ss {
		a, err := ParseAtom(s)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, a)
	}
	return atoms, nil
}

// MassOf sums the masses of an atom multiset: isotopic mass for isotopes,
// standard atomic weight for plain elements.
func MassOf(atoms []Atom) float64 {
	total := 0.0
	for _, a := range atoms {
		total += a.Mass()
	}
	return total
}

// periodic is the linked in-memory form of the embedded dataset.
type periodic struct {
	bySymbol map[string]*Element
	byNumber map[int]*Element
	ordered  []*Element
}

var (
	loadOnce sync.Once
	loaded   *periodic
)

// load links the embedded dataset on first use. Construction happens once
// per process and costs a few hundred allocations; nothing runs at import
// time.
func load() *periodic {
	loadOnce.Do(func() {
		p := &periodic{
			bySymbol: make(map[string]*Element, len(elementTable)),
			byNumber: make(map[int]*Element, len(elementTable)),
			ordered:  make([]*Element, 0, len(elementTable)),
		}
		for _, row := range elementTable {
			el := &Element{
				Symbol: row.symbol,
				Z:      row.z,
				Period: row.period,
				Group:  row.group,
				Weight: row.weight,
			}
			el.Isotopes = make([]*Isotope, 0, len(row.isotopes))
			for _, ir := range row.isotopes {
				el.Isotopes = append(el.Isotopes, &Isotope{
					Element:   el,
					A:         ir.a,
					Mass:      ir.mass,
					Abundance: ir.abundance,
				})
			}
			p.bySymbol[el.Symbol] = el
			p.byNumber[el.Z] = el
			p.ordered = append(p.ordered, el)
		}
		loaded = p
	})
	return loaded
}

// Lookup returns the element with the given symbol.
func Lookup(symbol string) (*Element, error) {
	el, ok := load().bySymbol[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	return el, nil
}

// ByNumber returns the element with atomic number z.
func ByNumber(z int) (*Element, error) {
	el, ok := load().byNumber[z]
	if !ok {
		return nil, fmt.Errorf("%w: Z=%d", ErrUnknownElement, z)
	}
	return el, nil
}

// Elements returns all known elements ordered by atomic number. The slice
// is shared; callers must not modify it.
func Elements() []*Element {
	return load().ordered
}
