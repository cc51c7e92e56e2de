// Package filter provides post-build table filtering functions
package filter

import (
	"fmt"
	"sort"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/table"
)

// Config holds filtering configuration
type Config struct {
	Window     *table.Window // Keep only rows inside this m/z window (nil = no window)
	MinProduct float64       // Keep only rows at or above this abundance product (0 = no cutoff)
	Charges    []int         // Keep only rows with these charges (nil = all)
	TopN       int           // Keep only the N most abundant rows (0 = no limit)
}

// Apply applies all configured filters to a table. Surviving rows keep
// their relative order and any attached labels stay aligned.
func (c *Config) Apply(t *table.Table) error {
	for _, ch := range c.Charges {
		if ch < 1 {
			return fmt.Errorf("%w: %d", core.ErrBadCharge, ch)
		}
	}

	if c.Window != nil {
		t.FilterWindow(c.Window)
	}

	if len(c.Charges) > 0 {
		c.filterByCharge(t)
	}

	if c.MinProduct > 0 {
		c.filterByProduct(t)
	}

	if c.TopN > 0 {
		c.filterTopN(t)
	}

	return nil
}

// filterByCharge keeps only rows carrying one of the configured charges
func (c *Config) filterByCharge(t *table.Table) {
	allowed := make(map[int]struct{}, len(c.Charges))
	for _, ch := range c.Charges {
		allowed[ch] = struct{}{}
	}
	filterRows(t, func(i int) bool {
		_, ok := allowed[t.Rows[i].Charge]
		return ok
	})
}

// filterByProduct removes rows below the abundance product cutoff
func (c *Config) filterByProduct(t *table.Table) {
	filterRows(t, func(i int) bool {
		return t.Rows[i].IsoProduct >= c.MinProduct
	})
}

// filterTopN keeps only the N most abundant rows
func (c *Config) filterTopN(t *table.Table) {
	if t.Len() <= c.TopN {
		return
	}

	// Rank indices by abundance product descending; ties resolve to the
	// earlier row. The table itself keeps its original order.
	idx := make([]int, t.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return t.Rows[idx[a]].IsoProduct > t.Rows[idx[b]].IsoProduct
	})

	keep := make(map[int]struct{}, c.TopN)
	for _, i := range idx[:c.TopN] {
		keep[i] = struct{}{}
	}
	filterRows(t, func(i int) bool {
		_, ok := keep[i]
		return ok
	})
}

// filterRows rewrites the table with the rows passing pred, carrying
// labels along when present
func filterRows(t *table.Table, pred func(int) bool) {
	rows := make([]core.Ion, 0, len(t.Rows))
	var labels []string
	if t.Labels != nil {
		labels = make([]string, 0, len(t.Labels))
	}
	for i, r := range t.Rows {
		if !pred(i) {
			continue
		}
		rows = append(rows, r)
		if labels != nil {
			labels = append(labels, t.Labels[i])
		}
	}
	t.Rows = rows
	t.Labels = labels
}
