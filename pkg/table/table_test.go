package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/ptable"
)

func testIon(t *testing.T, charge int, notations ...string) core.Ion {
	t.Helper()
	isos := make([]*ptable.Isotope, len(notations))
	for i, n := range notations {
		a, err := ptable.ParseAtom(n)
		require.NoError(t, err)
		iso, ok := a.Isotope()
		require.True(t, ok, "want isotope notation, got %q", n)
		isos[i] = iso
	}
	ion, err := core.NewIon(isos, charge)
	require.NoError(t, err)
	return ion
}

func TestParseSortKeys(t *testing.T) {
	keys, err := ParseSortKeys([]string{"charge", "m_z", "key"})
	require.NoError(t, err)
	assert.Equal(t, []SortKey{SortCharge, SortMZ, SortKeyName}, keys)

	_, err = ParseSortKeys([]string{"m_z", "intensity"})
	assert.ErrorIs(t, err, ErrBadSortKey)
}

func TestTableSortDefault(t *testing.T) {
	ar := testIon(t, 1, "Ar[40]")
	arDouble := testIon(t, 2, "Ar[40]")
	o := testIon(t, 1, "O[16]")

	tbl := &Table{Rows: []core.Ion{ar, o, arDouble}}
	require.NoError(t, tbl.Sort())

	assert.Equal(t, []string{"O[16]+", "Ar[40]++", "Ar[40]+"}, tbl.Keys())
}

func TestTableSortByKey(t *testing.T) {
	tbl := &Table{Rows: []core.Ion{
		testIon(t, 1, "O[16]"),
		testIon(t, 1, "Ar[40]"),
		testIon(t, 1, "H[1]"),
	}}
	require.NoError(t, tbl.Sort(SortKeyName))
	assert.Equal(t, []string{"Ar[40]+", "H[1]+", "O[16]+"}, tbl.Keys())
}

func TestTableSortBadKey(t *testing.T) {
	tbl := &Table{}
	assert.ErrorIs(t, tbl.Sort(SortKey("intensity")), ErrBadSortKey)
}

func TestTableSortKeepsLabelsAligned(t *testing.T) {
	tbl := &Table{
		Rows: []core.Ion{
			testIon(t, 1, "Ar[40]"),
			testIon(t, 1, "H[1]"),
		},
		Labels: []string{"argon", "protium"},
	}
	require.NoError(t, tbl.Sort(SortMZ))
	assert.Equal(t, []string{"H[1]+", "Ar[40]+"}, tbl.Keys())
	assert.Equal(t, []string{"protium", "argon"}, tbl.Labels)
}

func TestTableFilterWindow(t *testing.T) {
	h := testIon(t, 1, "H[1]")
	o := testIon(t, 1, "O[16]")
	ar := testIon(t, 1, "Ar[40]")

	tbl := &Table{
		Rows:   []core.Ion{h, o, ar},
		Labels: []string{"protium", "oxygen", "argon"},
	}

	// Inclusive on both edges.
	w := core.NewWindow(o.MZ, ar.MZ)
	tbl.FilterWindow(&w)
	assert.Equal(t, []string{"O[16]+", "Ar[40]+"}, tbl.Keys())
	assert.Equal(t, []string{"oxygen", "argon"}, tbl.Labels)

	// Nil window keeps everything.
	tbl.FilterWindow(nil)
	assert.Equal(t, 2, tbl.Len())
}

func TestTableDedup(t *testing.T) {
	tbl := &Table{Rows: []core.Ion{
		testIon(t, 1, "Ar[40]"),
		testIon(t, 1, "Ar[40]"),
		testIon(t, 2, "Ar[40]", "Ar[40]"),
		testIon(t, 1, "O[16]"),
	}}

	dropped, err := tbl.Dedup(2)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ar[40]+", "O[16]+"}, tbl.Keys())
	assert.Equal(t, []string{"Ar[40]+", "Ar[40]Ar[40]++"}, dropped)
}

func TestTableDedupKeepsOddCharges(t *testing.T) {
	tbl := &Table{Rows: []core.Ion{
		testIon(t, 1, "Ar[40]"),
		testIon(t, 3, "Ar[40]", "Ar[40]", "Ar[40]"),
	}}

	dropped, err := tbl.Dedup(3)
	require.NoError(t, err)

	assert.Empty(t, dropped)
	assert.Equal(t, 2, tbl.Len())
}
