// Package metrics exposes Prometheus instrumentation for table builds.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const prefix = "interfere_"

// Metrics records build pipeline counters. A nil *Metrics records
// nothing, so instrumentation stays optional at call sites.
type Metrics struct {
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	groupsBuilt   prometheus.Counter
	groupsPruned  prometheus.Counter
	rowsReturned  prometheus.Counter
	buildDuration prometheus.Histogram
}

// New registers build metrics with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: prefix + "cache_hits_total",
			Help: "Group cache lookups answered from the store.",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: prefix + "cache_misses_total",
			Help: "Group cache lookups that required a fresh build.",
		}),
		groupsBuilt: f.NewCounter(prometheus.CounterOpts{
			Name: prefix + "groups_built_total",
			Help: "Element groups expanded into isotopologue subtables.",
		}),
		groupsPruned: f.NewCounter(prometheus.CounterOpts{
			Name: prefix + "groups_pruned_total",
			Help: "Uncached groups skipped by window pruning.",
		}),
		rowsReturned: f.NewCounter(prometheus.CounterOpts{
			Name: prefix + "rows_returned_total",
			Help: "Rows returned across all built tables.",
		}),
		buildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "build_duration_seconds",
			Help:    "Wall time of complete table builds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// NewLocal returns metrics bound to a private registry, for dumping after
// one-shot CLI runs.
func NewLocal() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return New(reg), reg
}

// WriteText renders a registry's current metrics in the Prometheus text
// exposition format.
func WriteText(reg *prometheus.Registry, w io.Writer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// RecordCacheHits adds n to the cache hit counter.
func (m *Metrics) RecordCacheHits(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.cacheHits.Add(float64(n))
}

// RecordCacheMisses adds n to the cache miss counter.
func (m *Metrics) RecordCacheMisses(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.cacheMisses.Add(float64(n))
}

// RecordGroupsBuilt adds n to the built group counter.
func (m *Metrics) RecordGroupsBuilt(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.groupsBuilt.Add(float64(n))
}

// RecordGroupsPruned adds n to the pruned group counter.
func (m *Metrics) RecordGroupsPruned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.groupsPruned.Add(float64(n))
}

// RecordRows adds n to the returned row counter.
func (m *Metrics) RecordRows(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.rowsReturned.Add(float64(n))
}

// ObserveBuildDuration records one build's wall time.
func (m *Metrics) ObserveBuildDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.buildDuration.Observe(d.Seconds())
}
