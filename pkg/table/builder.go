package table

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/labels"
	"github.com/mzgrid/interfere/pkg/metrics"
	"github.com/mzgrid/interfere/pkg/ptable"
	"github.com/mzgrid/interfere/pkg/store"
)

const (
	// DefaultMaxAtoms caps molecules at the generally relevant small sizes.
	DefaultMaxAtoms = 3
	// PruneMargin widens the window for the coarse group relevance check,
	// so isotopic spread never prunes a group the exact filter would keep.
	PruneMargin = 0.1

	defaultMemoSize = 128
)

// DefaultCharges returns the ionic charges modelled when a request does
// not choose: singly and doubly charged ions.
func DefaultCharges() []int { return []int{1, 2} }

// Request carries one table build invocation.
type Request struct {
	Elements  []string  // atom notations, e.g. "H", "Ca[40]"
	MaxAtoms  int       // molecule size cap; 0 applies DefaultMaxAtoms
	Charges   []int     // ionic charges; empty applies DefaultCharges
	Threshold float64   // abundance floor in percent; 0 applies DefaultThreshold
	Window    *Window   // optional m/z restriction
	SortBy    []SortKey // final ordering; empty applies DefaultSort
	AddLabels bool      // attach display labels to surviving rows
	NoCache   bool      // skip store reads and writes for this call
}

// Builder orchestrates table construction: combination enumeration, group
// cache lookups, parallel subtable builds, persistence and final assembly.
type Builder struct {
	store    store.Store
	log      log.FieldLogger
	metrics  *metrics.Metrics
	labelSrc *labels.Cache
	memo     *lru.Cache[string, []core.Ion]
	memoSize int
	workers  int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger routes builder logging to l.
func WithLogger(l log.FieldLogger) Option { return func(b *Builder) { b.log = l } }

// WithMetrics records build counters on m.
func WithMetrics(m *metrics.Metrics) Option { return func(b *Builder) { b.metrics = m } }

// WithLabelCache serves display labels through the persisted cache.
func WithLabelCache(c *labels.Cache) Option { return func(b *Builder) { b.labelSrc = c } }

// WithWorkers bounds concurrent group builds; n < 1 removes the bound.
func WithWorkers(n int) Option { return func(b *Builder) { b.workers = n } }

// WithMemoSize sizes the in-process subtable memo; 0 disables it.
func WithMemoSize(n int) Option { return func(b *Builder) { b.memoSize = n } }

// NewBuilder wires a builder to its group store. A nil store disables
// caching entirely.
func NewBuilder(st store.Store, opts ...Option) *Builder {
	b := &Builder{
		store:    st,
		log:      log.StandardLogger(),
		memoSize: defaultMemoSize,
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(b)
	}
	if b.memoSize > 0 {
		b.memo, _ = lru.New[string, []core.Ion](b.memoSize)
	}
	return b
}

type groupJob struct {
	id    string
	combo []ptable.Atom
}

// Build answers "all candidate ions for these elements", consulting the
// group store first, building and persisting only what is missing and
// assembling the sorted result table.
func (b *Builder) Build(ctx context.Context, req Request) (*Table, error) {
	start := time.Now()

	maxAtoms := req.MaxAtoms
	if maxAtoms == 0 {
		maxAtoms = DefaultMaxAtoms
	}
	charges := req.Charges
	if len(charges) == 0 {
		charges = DefaultCharges()
	}
	maxCharge := 0
	for _, c := range charges {
		if c < 1 {
			return nil, fmt.Errorf("%w: %d", core.ErrBadCharge, c)
		}
		if c > maxCharge {
			maxCharge = c
		}
	}
	threshold := req.Threshold
	overridden := threshold != 0 && threshold != DefaultThreshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	atoms, err := ptable.ParseAtoms(req.Elements)
	if err != nil {
		return nil, err
	}
	combos, err := Combinations(atoms, maxAtoms)
	if err != nil {
		return nil, err
	}

	// Duplicate input atoms yield repeated combinations; one job per
	// group identifier keeps builds and appends unique.
	jobs := make([]groupJob, 0, len(combos))
	seen := make(map[string]struct{}, len(combos))
	for _, combo := range combos {
		id := core.GroupID(combo)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		jobs = append(jobs, groupJob{id: id, combo: combo})
	}

	// A threshold override would poison cached groups built under the
	// default rule, so it forces a full cache bypass.
	useCache := b.store != nil && !req.NoCache && !overridden

	var cached []core.Ion
	var toBuild []groupJob
	if useCache {
		ids := make([]string, len(jobs))
		for i, j := range jobs {
			ids[i] = j.id
		}
		res, err := b.store.Lookup(ctx, ids, req.Window)
		if err != nil {
			return nil, err
		}
		cached = res.Rows
		missing := make(map[string]struct{}, len(res.Missing))
		for _, id := range res.Missing {
			missing[id] = struct{}{}
		}
		for _, j := range jobs {
			if _, miss := missing[j.id]; miss {
				toBuild = append(toBuild, j)
			}
		}
		b.metrics.RecordCacheHits(len(jobs) - len(toBuild))
		b.metrics.RecordCacheMisses(len(toBuild))
		b.log.WithFields(log.Fields{
			"hits":   len(jobs) - len(toBuild),
			"misses": len(toBuild),
		}).Debug("group cache lookup")
	} else {
		toBuild = jobs
	}

	if req.Window != nil && len(toBuild) > 0 {
		margin := req.Window.Widen(PruneMargin)
		kept := make([]groupJob, 0, len(toBuild))
		for _, j := range toBuild {
			if groupInWindow(j.combo, charges, margin) {
				kept = append(kept, j)
			}
		}
		if pruned := len(toBuild) - len(kept); pruned > 0 {
			b.metrics.RecordGroupsPruned(pruned)
			b.log.WithField("pruned", pruned).Debug("window pruning skipped groups")
		}
		toBuild = kept
	}

	built := make([][]core.Ion, len(toBuild))
	g, gctx := errgroup.WithContext(ctx)
	if b.workers > 0 {
		g.SetLimit(b.workers)
	}
	for i, job := range toBuild {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := b.buildGroup(job, charges, threshold)
			if err != nil {
				return err
			}
			built[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	b.metrics.RecordGroupsBuilt(len(toBuild))

	if useCache && len(toBuild) > 0 {
		groups := make([]store.Group, 0, len(toBuild))
		for i, job := range toBuild {
			if len(built[i]) == 0 {
				continue
			}
			groups = append(groups, store.Group{ID: job.id, Rows: built[i]})
		}
		if len(groups) > 0 {
			// A failed write costs a rebuild next call, not this table.
			if err := b.store.Append(ctx, groups); err != nil {
				b.log.WithError(err).Warn("persisting built groups failed, returning unpersisted table")
			}
		}
	}

	rows := make([]core.Ion, 0, len(cached))
	rows = append(rows, cached...)
	for _, rs := range built {
		rows = append(rows, rs...)
	}
	t := &Table{Rows: rows}
	dropped, err := t.Dedup(maxCharge)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		b.log.Debugf("dropping duplicate m_z rows: %s", strings.Join(dropped, ", "))
	}
	t.FilterWindow(req.Window)
	if err := t.Sort(req.SortBy...); err != nil {
		return nil, err
	}
	if req.AddLabels {
		t.Labels = b.labelRows(t.Rows)
	}

	b.metrics.RecordRows(t.Len())
	b.metrics.ObserveBuildDuration(time.Since(start))
	b.log.WithFields(log.Fields{
		"rows":    t.Len(),
		"elapsed": time.Since(start),
	}).Debug("table build complete")
	return t, nil
}

func (b *Builder) buildGroup(job groupJob, charges []int, threshold float64) ([]core.Ion, error) {
	key := memoKey(job.id, charges, threshold)
	if b.memo != nil {
		if rows, ok := b.memo.Get(key); ok {
			return rows, nil
		}
	}
	rows, err := Subtable(job.combo, charges, threshold)
	if err != nil {
		return nil, err
	}
	if b.memo != nil {
		b.memo.Add(key, rows)
	}
	return rows, nil
}

func memoKey(id string, charges []int, threshold float64) string {
	var sb strings.Builder
	sb.WriteString(id)
	for _, c := range charges {
		fmt.Fprintf(&sb, "|%d", c)
	}
	fmt.Fprintf(&sb, "|%g", threshold)
	return sb.String()
}

func (b *Builder) labelRows(rows []core.Ion) []string {
	if b.labelSrc == nil {
		return labels.ForIons(rows)
	}
	ls, err := b.labelSrc.Annotate(rows)
	if err != nil {
		// Labels are still complete, only the cache append failed.
		b.log.WithError(err).Warn("label cache update failed")
	}
	return ls
}

// groupMassBounds returns the coarse molecular mass range for a
// combination: the lightest and heaviest isotope per position, summed.
func groupMassBounds(combo []ptable.Atom) (lo, hi float64) {
	for _, a := range combo {
		if iso, ok := a.Isotope(); ok {
			lo += iso.Mass
			hi += iso.Mass
			continue
		}
		isos := a.Element().Isotopes
		min, max := isos[0].Mass, isos[0].Mass
		for _, iso := range isos[1:] {
			if iso.Mass < min {
				min = iso.Mass
			}
			if iso.Mass > max {
				max = iso.Mass
			}
		}
		lo += min
		hi += max
	}
	return lo, hi
}

// groupInWindow reports whether any configured charge puts part of the
// group's coarse mass range inside the window.
func groupInWindow(combo []ptable.Atom, charges []int, w Window) bool {
	lo, hi := groupMassBounds(combo)
	for _, c := range charges {
		mzLo, mzHi := lo/float64(c), hi/float64(c)
		if mzHi >= w.Lo && mzLo <= w.Hi {
			return true
		}
	}
	return false
}
