package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/ptable"
	"github.com/mzgrid/interfere/pkg/store"
)

func mustIon(t *testing.T, charge int, notations ...string) core.Ion {
	t.Helper()
	isos := make([]*ptable.Isotope, len(notations))
	for i, n := range notations {
		a, err := ptable.ParseAtom(n)
		require.NoError(t, err)
		iso, ok := a.Isotope()
		require.True(t, ok)
		isos[i] = iso
	}
	ion, err := core.NewIon(isos, charge)
	require.NoError(t, err)
	return ion
}

func TestLookupMissing(t *testing.T) {
	s := New()
	res, err := s.Lookup(context.Background(), []string{"Ar", "Ca", "Ar"}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, []string{"Ar", "Ca"}, res.Missing)
}

func TestAppendAndLookup(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Append(ctx, []store.Group{
		{ID: "Ar", Rows: []core.Ion{
			mustIon(t, 1, "Ar[36]"),
			mustIon(t, 1, "Ar[40]"),
		}},
		{ID: "Ca", Rows: []core.Ion{
			mustIon(t, 1, "Ca[40]"),
		}},
	}))

	res, err := s.Lookup(ctx, []string{"Ar", "Ca", "O"}, nil)
	require.NoError(t, err)
	assert.Len(t, res.Rows, 3)
	assert.Equal(t, []string{"O"}, res.Missing)
}

func TestLookupWindowedGroupStillPresent(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Append(ctx, []store.Group{
		{ID: "Ar", Rows: []core.Ion{mustIon(t, 1, "Ar[40]")}},
	}))

	// The window excludes every row, but the group itself is known, so it
	// must not be reported missing and rebuilt.
	w := core.NewWindow(100, 200)
	res, err := s.Lookup(ctx, []string{"Ar"}, &w)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Empty(t, res.Missing)
}

func TestAppendDropsExactDuplicates(t *testing.T) {
	ctx := context.Background()
	s := New()

	ion := mustIon(t, 1, "Ar[40]")
	require.NoError(t, s.Append(ctx, []store.Group{
		{ID: "Ar", Rows: []core.Ion{ion, ion}},
	}))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ar[40]+"}, keys)
}

func TestAppendDropsMultiplesAgainstPersisted(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Append(ctx, []store.Group{
		{ID: "Ar", Rows: []core.Ion{
			mustIon(t, 1, "Ar[40]"),
			mustIon(t, 2, "Ar[40]"),
		}},
	}))
	require.NoError(t, s.Append(ctx, []store.Group{
		{ID: "Ar-Ar", Rows: []core.Ion{
			mustIon(t, 2, "Ar[40]", "Ar[40]"),
			mustIon(t, 2, "Ar[36]", "Ar[40]"),
		}},
	}))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, "Ar[36]Ar[40]++")
	assert.NotContains(t, keys, "Ar[40]Ar[40]++")
}

func TestAppendSkipsEmptyGroups(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Append(ctx, []store.Group{{ID: "Ar", Rows: nil}}))

	res, err := s.Lookup(ctx, []string{"Ar"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ar"}, res.Missing)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Append(ctx, []store.Group{
		{ID: "Ar", Rows: []core.Ion{mustIon(t, 1, "Ar[40]")}},
	}))
	require.NoError(t, s.Reset(ctx))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
