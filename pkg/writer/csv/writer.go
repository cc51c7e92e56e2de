// Package csv exports interference tables as CSV for downstream tooling
// that does not link the engine.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/table"
)

// Columns is the exported header, in order. The label column is appended
// only when the writer is opened with labels.
var Columns = []string{"key", "m_z", "mass", "charge", "iso_product", "components"}

// Writer streams table rows as CSV records.
type Writer struct {
	w          *stdcsv.Writer
	withLabels bool
	rows       int
}

// NewWriter writes the header and returns a writer for the rows. Set
// withLabels when rows carry display labels.
func NewWriter(w io.Writer, withLabels bool) (*Writer, error) {
	cw := &Writer{w: stdcsv.NewWriter(w), withLabels: withLabels}
	header := Columns
	if withLabels {
		header = append(append([]string{}, Columns...), "label")
	}
	if err := cw.w.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return cw, nil
}

// WriteRow appends one row. The label is ignored unless the writer was
// opened with labels.
func (w *Writer) WriteRow(ion core.Ion, label string) error {
	rec := []string{
		ion.Key,
		formatFloat(ion.MZ),
		formatFloat(ion.Mass),
		strconv.Itoa(ion.Charge),
		formatFloat(ion.IsoProduct),
		componentsColumn(ion),
	}
	if w.withLabels {
		rec = append(rec, label)
	}
	if err := w.w.Write(rec); err != nil {
		return fmt.Errorf("writing row %s: %w", ion.Key, err)
	}
	w.rows++
	return nil
}

// WriteTable appends every row of t, carrying labels when both the table
// and the writer have them.
func (w *Writer) WriteTable(t *table.Table) error {
	for i, r := range t.Rows {
		label := ""
		if t.Labels != nil {
			label = t.Labels[i]
		}
		if err := w.WriteRow(r, label); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the number of data rows written so far.
func (w *Writer) Rows() int { return w.rows }

// Finalize flushes buffered records and reports any write error.
func (w *Writer) Finalize() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// formatFloat renders a float so that parsing it back yields the same
// bits.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func componentsColumn(ion core.Ion) string {
	parts := make([]string, len(ion.Components))
	for i, iso := range ion.Components {
		parts[i] = iso.String()
	}
	return strings.Join(parts, " ")
}
