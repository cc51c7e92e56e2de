package ptable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		wantZ   int
		wantErr error
	}{
		{name: "hydrogen", symbol: "H", wantZ: 1},
		{name: "calcium", symbol: "Ca", wantZ: 20},
		{name: "uranium", symbol: "U", wantZ: 92},
		{name: "unknown symbol", symbol: "Xx", wantErr: ErrUnknownElement},
		{name: "lowercase", symbol: "ca", wantErr: ErrUnknownElement},
		{name: "empty", symbol: "", wantErr: ErrUnknownElement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := Lookup(tt.symbol)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantZ, el.Z)
			assert.Equal(t, tt.symbol, el.Symbol)
		})
	}
}

func TestByNumber(t *testing.T) {
	el, err := ByNumber(18)
	require.NoError(t, err)
	assert.Equal(t, "Ar", el.Symbol)

	_, err = ByNumber(200)
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestElementsOrderedByZ(t *testing.T) {
	els := Elements()
	require.Len(t, els, 92)
	for i, el := range els {
		assert.Equal(t, i+1, el.Z)
		assert.NotEmpty(t, el.Isotopes, "element %s has no isotopes", el.Symbol)
	}
}

func TestElementIsotope(t *testing.T) {
	o, err := Lookup("O")
	require.NoError(t, err)

	o16, err := o.Isotope(16)
	require.NoError(t, err)
	assert.InDelta(t, 15.9949146196, o16.Mass, 1e-9)
	assert.InDelta(t, 99.757, o16.Abundance, 1e-9)
	assert.Equal(t, "O[16]", o16.String())

	_, err = o.Isotope(99)
	assert.ErrorIs(t, err, ErrUnknownIsotope)
}

func TestParseAtom(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		isIso   bool
		wantErr error
	}{
		{name: "element", in: "Ca", want: "Ca"},
		{name: "isotope", in: "Ca[40]", want: "Ca[40]", isIso: true},
		{name: "trimmed", in: " O[18] ", want: "O[18]", isIso: true},
		{name: "unknown element", in: "Qq", wantErr: ErrUnknownElement},
		{name: "unknown isotope", in: "H[9]", wantErr: ErrUnknownIsotope},
		{name: "empty", in: "", wantErr: ErrBadAtom},
		{name: "unclosed bracket", in: "Ca[40", wantErr: ErrBadAtom},
		{name: "missing symbol", in: "[40]", wantErr: ErrBadAtom},
		{name: "non numeric mass", in: "Ca[x]", wantErr: ErrBadAtom},
		{name: "negative mass", in: "Ca[-1]", wantErr: ErrBadAtom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAtom(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
			_, ok := a.Isotope()
			assert.Equal(t, tt.isIso, ok)
		})
	}
}

func TestParseAtoms(t *testing.T) {
	atoms, err := ParseAtoms([]string{"H", "O[16]"})
	require.NoError(t, err)
	require.Len(t, atoms, 2)
	assert.Equal(t, "H", atoms[0].String())
	assert.Equal(t, "O[16]", atoms[1].String())

	_, err = ParseAtoms([]string{"H", "Zz"})
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestAtomMass(t *testing.T) {
	ca, err := ParseAtom("Ca")
	require.NoError(t, err)
	ca40, err := ParseAtom("Ca[40]")
	require.NoError(t, err)

	// A plain element reports the standard atomic weight, an isotope its
	// isotopic mass. The two differ for calcium by almost 0.12 amu.
	assert.InDelta(t, 40.078, ca.Mass(), 1e-9)
	assert.InDelta(t, 39.962590863, ca40.Mass(), 1e-9)
}

func TestMassOf(t *testing.T) {
	atoms, err := ParseAtoms([]string{"H[1]", "H[1]", "O[16]"})
	require.NoError(t, err)
	assert.InDelta(t, 2*1.0078250319+15.9949146196, MassOf(atoms), 1e-9)
}

func TestAtomZero(t *testing.T) {
	var a Atom
	assert.True(t, a.IsZero())

	h, err := ParseAtom("H")
	require.NoError(t, err)
	assert.False(t, h.IsZero())
}
