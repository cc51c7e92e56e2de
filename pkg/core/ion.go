// Package core defines the isotopologue row entity for interference
// tables: assembly from isotope components, the canonical key notation
// naming a row, and the deduplication rules that collapse rows describing
// one observed peak.
package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/mzgrid/interfere/pkg/ptable"
)

// Ion is one candidate molecular ion: an isotopologue at a specific charge.
type Ion struct {
	// Components holds the isotopes making up the molecule, count-expanded
	// and in canonical formula order.
	Components []*ptable.Isotope
	Charge     int
	Mass       float64 // summed isotopic mass, amu
	MZ         float64 // Mass / Charge
	IsoProduct float64 // product of fractional component abundances, in [0,1]
	Key        string  // canonical identity, e.g. "H[1]H[1]O[16]+"
}

// NewIon assembles an ion from isotope components and a charge. Components
// are copied and canonically sorted; mass, m/z, the abundance product and
// the key all derive from the sorted copy.
func NewIon(components []*ptable.Isotope, charge int) (Ion, error) {
	if len(components) == 0 {
		return Ion{}, ErrNoComponents
	}
	if charge < 1 {
		return Ion{}, fmt.Errorf("%w: %d", ErrBadCharge, charge)
	}
	comps := make([]*ptable.Isotope, len(components))
	copy(comps, components)
	ptable.SortIsotopes(comps)

	mass := 0.0
	product := 1.0
	for _, iso := range comps {
		mass += iso.Mass
		product *= iso.Abundance / 100
	}
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		mass = 0
	}
	return Ion{
		Components: comps,
		Charge:     charge,
		Mass:       mass,
		MZ:         mass / float64(charge),
		IsoProduct: product,
		Key:        IonKey(comps, charge),
	}, nil
}

// AtomCount returns the number of component isotopes.
func (i Ion) AtomCount() int { return len(i.Components) }

// IonKey renders the canonical key for sorted components at a charge: the
// concatenated isotope notations followed by one "+" per charge unit.
func IonKey(components []*ptable.Isotope, charge int) string {
	var b strings.Builder
	for _, iso := range components {
		b.WriteString(iso.String())
	}
	for i := 0; i < charge; i++ {
		b.WriteByte('+')
	}
	return b.String()
}

// ParseKey splits a canonical key back into sorted components and a
// charge. The inverse of IonKey for well-formed keys.
func ParseKey(key string) ([]*ptable.Isotope, int, error) {
	body := strings.TrimRight(key, "+")
	charge := len(key) - len(body)
	if charge == 0 || body == "" {
		return nil, 0, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	var comps []*ptable.Isotope
	for len(body) > 0 {
		end := strings.IndexByte(body, ']')
		if end < 0 {
			return nil, 0, fmt.Errorf("%w: %q", ErrBadKey, key)
		}
		atom, err := ptable.ParseAtom(body[:end+1])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %q: %v", ErrBadKey, key, err)
		}
		iso, ok := atom.Isotope()
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q: component without mass number", ErrBadKey, key)
		}
		comps = append(comps, iso)
		body = body[end+1:]
	}
	ptable.SortIsotopes(comps)
	return comps, charge, nil
}

// KeyAtomCount counts component isotopes in a canonical key without a full
// parse. Every component carries exactly one bracketed mass number.
func KeyAtomCount(key string) int { return strings.Count(key, "[") }

// GroupID derives the cache partition identifier for a combination of
// atoms: the canonically sorted atom notations joined with "-". The same
// multiset yields the same identifier regardless of input order.
func GroupID(atoms []ptable.Atom) string {
	sorted := make([]ptable.Atom, len(atoms))
	copy(sorted, atoms)
	ptable.SortAtoms(sorted)
	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = a.String()
	}
	return strings.Join(parts, "-")
}
