package table

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/ptable"
	"github.com/mzgrid/interfere/pkg/store"
	"github.com/mzgrid/interfere/pkg/store/memory"
)

// spyStore counts calls so tests can tell cached from rebuilt paths apart.
type spyStore struct {
	store.Store
	lookups int
	appends int
}

func (s *spyStore) Lookup(ctx context.Context, ids []string, w *core.Window) (*store.LookupResult, error) {
	s.lookups++
	return s.Store.Lookup(ctx, ids, w)
}

func (s *spyStore) Append(ctx context.Context, groups []store.Group) error {
	s.appends++
	return s.Store.Append(ctx, groups)
}

type failingStore struct {
	store.Store
}

func (s *failingStore) Append(ctx context.Context, groups []store.Group) error {
	return errors.New("disk full")
}

func sortedByMZ(rows []core.Ion) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i-1].MZ > rows[i].MZ {
			return false
		}
	}
	return true
}

func TestBuildTwoElements(t *testing.T) {
	b := NewBuilder(memory.New())
	tbl, err := b.Build(context.Background(), Request{
		Elements: []string{"H", "O"},
		MaxAtoms: 2,
		Charges:  []int{1},
	})
	require.NoError(t, err)

	// H expands to 2 isotopes and O to 3: the singles contribute 2+3 rows,
	// the pairs 3 (H2) + 6 (HO) + 6 (O2).
	assert.Equal(t, 20, tbl.Len())
	assert.True(t, sortedByMZ(tbl.Rows), "rows are ordered by m/z")
	assert.Equal(t, "H[1]+", tbl.Rows[0].Key)
	assert.Contains(t, tbl.Keys(), "H[1]O[16]+")
	assert.Contains(t, tbl.Keys(), "O[16]O[18]+")
}

func TestBuildDropsDegenerateMultiples(t *testing.T) {
	b := NewBuilder(memory.New())
	tbl, err := b.Build(context.Background(), Request{
		Elements: []string{"Ar"},
		MaxAtoms: 2,
		Charges:  []int{1, 2},
	})
	require.NoError(t, err)

	keys := tbl.Keys()
	assert.Contains(t, keys, "Ar[40]+")
	assert.Contains(t, keys, "Ar[40]++")
	assert.Contains(t, keys, "Ar[36]Ar[40]++")
	// The homonuclear dimer at charge 2 collides with the single at
	// charge 1 on m/z and is suppressed.
	assert.NotContains(t, keys, "Ar[40]Ar[40]++")
	assert.NotContains(t, keys, "Ar[36]Ar[36]++")
}

func TestBuildWindow(t *testing.T) {
	w, err := WindowAround("Ca[40]", 0.02)
	require.NoError(t, err)

	st := memory.New()
	b := NewBuilder(st)
	tbl, err := b.Build(context.Background(), Request{
		Elements: []string{"Ca", "Ar"},
		MaxAtoms: 2,
		Charges:  []int{1},
		Window:   &w,
	})
	require.NoError(t, err)

	// Ar[40] sits 0.0002 below Ca[40]; everything else is far away.
	assert.Equal(t, []string{"Ar[40]+", "Ca[40]+"}, tbl.Keys())
	for _, r := range tbl.Rows {
		assert.True(t, w.Contains(r.MZ), "row %s outside window", r.Key)
	}

	// Groups whose mass range cannot reach the window are never built, so
	// nothing from the pair groups was persisted.
	keys, err := st.Keys(context.Background())
	require.NoError(t, err)
	for _, k := range keys {
		assert.Equal(t, 1, core.KeyAtomCount(k), "unexpected persisted key %s", k)
	}
}

func TestBuildPersistsFullGroupsDespiteWindow(t *testing.T) {
	w, err := WindowAround("Ca[40]", 0.02)
	require.NoError(t, err)

	st := memory.New()
	b := NewBuilder(st)
	_, err = b.Build(context.Background(), Request{
		Elements: []string{"Ca"},
		MaxAtoms: 1,
		Charges:  []int{1},
		Window:   &w,
	})
	require.NoError(t, err)

	// The window narrows the returned table, not the persisted group.
	keys, err := st.Keys(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 6)
	assert.Contains(t, keys, "Ca[48]+")
}

func TestBuildCacheRoundTrip(t *testing.T) {
	spy := &spyStore{Store: memory.New()}
	b := NewBuilder(spy)
	req := Request{Elements: []string{"Ar"}, MaxAtoms: 2, Charges: []int{1}}

	first, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, spy.appends)

	second, err := b.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Keys(), second.Keys())
	assert.Equal(t, 1, spy.appends, "cached build must not append")
	assert.Equal(t, 2, spy.lookups)
}

func TestBuildExtendsCacheIncrementally(t *testing.T) {
	st := memory.New()
	b := NewBuilder(st)

	_, err := b.Build(context.Background(), Request{
		Elements: []string{"Ar"}, MaxAtoms: 1, Charges: []int{1},
	})
	require.NoError(t, err)
	keys, err := st.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 3)

	tbl, err := b.Build(context.Background(), Request{
		Elements: []string{"Ar"}, MaxAtoms: 2, Charges: []int{1},
	})
	require.NoError(t, err)

	// The single-atom group came from the cache, only the pair group was
	// built and persisted.
	assert.Equal(t, 9, tbl.Len())
	keys, err = st.Keys(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 9)
}

func TestBuildThresholdOverrideBypassesCache(t *testing.T) {
	spy := &spyStore{Store: memory.New()}
	b := NewBuilder(spy)

	tbl, err := b.Build(context.Background(), Request{
		Elements:  []string{"H"},
		MaxAtoms:  1,
		Charges:   []int{1},
		Threshold: 1.0,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"H[1]+"}, tbl.Keys())
	assert.Zero(t, spy.lookups, "override must not read the cache")
	assert.Zero(t, spy.appends, "override must not write the cache")
}

func TestBuildNoCache(t *testing.T) {
	spy := &spyStore{Store: memory.New()}
	b := NewBuilder(spy)

	_, err := b.Build(context.Background(), Request{
		Elements: []string{"H"},
		NoCache:  true,
	})
	require.NoError(t, err)
	assert.Zero(t, spy.lookups)
	assert.Zero(t, spy.appends)
}

func TestBuildNilStore(t *testing.T) {
	b := NewBuilder(nil)
	tbl, err := b.Build(context.Background(), Request{Elements: []string{"H"}, MaxAtoms: 1})
	require.NoError(t, err)
	assert.NotZero(t, tbl.Len())
}

func TestBuildSurvivesAppendFailure(t *testing.T) {
	b := NewBuilder(&failingStore{Store: memory.New()})
	tbl, err := b.Build(context.Background(), Request{
		Elements: []string{"H"}, MaxAtoms: 1, Charges: []int{1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"H[1]+", "H[2]+"}, tbl.Keys())
}

func TestBuildLabels(t *testing.T) {
	b := NewBuilder(memory.New())
	tbl, err := b.Build(context.Background(), Request{
		Elements:  []string{"H"},
		MaxAtoms:  1,
		Charges:   []int{1},
		AddLabels: true,
	})
	require.NoError(t, err)

	require.Equal(t, []string{"H[1]+", "H[2]+"}, tbl.Keys())
	assert.Equal(t, []string{"¹H⁺", "²H⁺"}, tbl.Labels)
}

func TestBuildDuplicateElementsCollapse(t *testing.T) {
	b := NewBuilder(memory.New())
	tbl, err := b.Build(context.Background(), Request{
		Elements: []string{"Ar", "Ar"},
		MaxAtoms: 1,
		Charges:  []int{1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ar[36]+", "Ar[38]+", "Ar[40]+"}, tbl.Keys())
}

func TestBuildRequestErrors(t *testing.T) {
	b := NewBuilder(memory.New())
	ctx := context.Background()

	_, err := b.Build(ctx, Request{Elements: []string{"Xx"}})
	assert.ErrorIs(t, err, ptable.ErrUnknownElement)

	_, err = b.Build(ctx, Request{Elements: []string{"H"}, Charges: []int{0}})
	assert.ErrorIs(t, err, core.ErrBadCharge)

	_, err = b.Build(ctx, Request{})
	assert.ErrorIs(t, err, ErrEmptyElements)

	_, err = b.Build(ctx, Request{Elements: []string{"H"}, SortBy: []SortKey{"intensity"}})
	assert.ErrorIs(t, err, ErrBadSortKey)
}
