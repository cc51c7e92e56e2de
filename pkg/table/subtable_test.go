package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/ptable"
)

func mustAtoms(t *testing.T, notations ...string) []ptable.Atom {
	t.Helper()
	atoms, err := ptable.ParseAtoms(notations)
	require.NoError(t, err)
	return atoms
}

func rowKeys(rows []core.Ion) []string {
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	return keys
}

func TestSubtable(t *testing.T) {
	tests := []struct {
		name      string
		combo     []string
		charges   []int
		threshold float64
		want      []string
	}{
		{
			name:      "rows are charge major",
			combo:     []string{"H"},
			charges:   []int{1, 2},
			threshold: DefaultThreshold,
			want:      []string{"H[1]+", "H[2]+", "H[1]++", "H[2]++"},
		},
		{
			name:      "threshold drops rare isotopes",
			combo:     []string{"H"},
			charges:   []int{1},
			threshold: 1.0,
			want:      []string{"H[1]+"},
		},
		{
			name:      "fixed isotope only expands the free atom",
			combo:     []string{"Ca[40]", "O"},
			charges:   []int{1},
			threshold: DefaultThreshold,
			want:      []string{"Ca[40]O[16]+", "Ca[40]O[17]+", "Ca[40]O[18]+"},
		},
		{
			name:      "repeated atoms collapse equivalent assignments",
			combo:     []string{"H", "H"},
			charges:   []int{1},
			threshold: DefaultThreshold,
			want:      []string{"H[1]H[1]+", "H[1]H[2]+", "H[2]H[2]+"},
		},
		{
			name:      "fixed isotope below threshold empties the group",
			combo:     []string{"Ca[46]"},
			charges:   []int{1},
			threshold: 0.01,
			want:      []string{},
		},
		{
			name:      "zero abundance never passes",
			combo:     []string{"H"},
			charges:   []int{1},
			threshold: -1,
			want:      []string{"H[1]+", "H[2]+"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := Subtable(mustAtoms(t, tc.combo...), tc.charges, tc.threshold)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rowKeys(rows))
		})
	}
}

func TestSubtableValues(t *testing.T) {
	rows, err := Subtable(mustAtoms(t, "H", "O"), []int{1, 2}, DefaultThreshold)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	byKey := make(map[string]core.Ion, len(rows))
	for _, r := range rows {
		byKey[r.Key] = r
	}

	single, ok := byKey["H[1]O[16]+"]
	require.True(t, ok)
	assert.InDelta(t, 1.0078250319+15.9949146196, single.Mass, 1e-9)
	assert.InDelta(t, 0.999885*0.99757, single.IsoProduct, 1e-12)
	assert.Equal(t, single.Mass, single.MZ)

	double, ok := byKey["H[1]O[16]++"]
	require.True(t, ok)
	assert.Equal(t, single.Mass, double.Mass)
	assert.Equal(t, single.Mass/2, double.MZ)
}

func TestSubtableBadCharge(t *testing.T) {
	_, err := Subtable(mustAtoms(t, "H"), []int{0}, DefaultThreshold)
	assert.ErrorIs(t, err, core.ErrBadCharge)
}
