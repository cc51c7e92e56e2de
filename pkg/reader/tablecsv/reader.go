// Package tablecsv provides streaming readers for exported interference
// tables.
package tablecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/table"
)

// Reader provides streaming access to CSV table exports.
type Reader struct {
	csv      *csv.Reader
	cols     map[string]int
	hasLabel bool
	started  bool
	rowNum   int
	row      core.Ion
	label    string
	err      error
}

// NewReader creates a reader over an exported table.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Next advances to the next row. It returns false at the end of the input
// or on error; Err distinguishes the two.
func (r *Reader) Next() bool {
	r.row, r.label = core.Ion{}, ""
	if r.err != nil {
		return false
	}
	if !r.started {
		if err := r.readHeader(); err != nil {
			r.err = err
			return false
		}
		r.started = true
	}

	rec, err := r.csv.Read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}
	r.rowNum++

	row, label, err := r.parseRecord(rec)
	if err != nil {
		r.err = fmt.Errorf("row %d: %w", r.rowNum, err)
		return false
	}
	r.row, r.label = row, label
	return true
}

// Row returns the current row.
func (r *Reader) Row() core.Ion { return r.row }

// Label returns the current row's label; it is empty when the file has no
// label column.
func (r *Reader) Label() string { return r.label }

// HasLabels reports whether the file carries a label column. Valid after
// the first Next call.
func (r *Reader) HasLabels() bool { return r.hasLabel }

// Err returns any error encountered during reading.
func (r *Reader) Err() error { return r.err }

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("empty table: missing header")
		}
		return fmt.Errorf("reading header: %w", err)
	}

	r.cols = make(map[string]int, len(header))
	for i, name := range header {
		r.cols[name] = i
	}
	for _, name := range []string{"key", "m_z", "mass", "charge", "iso_product"} {
		if _, ok := r.cols[name]; !ok {
			return fmt.Errorf("header is missing column %q", name)
		}
	}
	_, r.hasLabel = r.cols["label"]
	return nil
}

// parseRecord rebuilds the ion from one record. Components come from the
// key against the live dataset; the numeric columns are trusted as
// written, matching how persisted cache rows are read back.
func (r *Reader) parseRecord(rec []string) (core.Ion, string, error) {
	key := rec[r.cols["key"]]
	comps, charge, err := core.ParseKey(key)
	if err != nil {
		return core.Ion{}, "", err
	}

	mz, err := strconv.ParseFloat(rec[r.cols["m_z"]], 64)
	if err != nil {
		return core.Ion{}, "", fmt.Errorf("bad m_z: %w", err)
	}
	mass, err := strconv.ParseFloat(rec[r.cols["mass"]], 64)
	if err != nil {
		return core.Ion{}, "", fmt.Errorf("bad mass: %w", err)
	}
	chargeCol, err := strconv.Atoi(rec[r.cols["charge"]])
	if err != nil {
		return core.Ion{}, "", fmt.Errorf("bad charge: %w", err)
	}
	if chargeCol != charge {
		return core.Ion{}, "", fmt.Errorf("charge column %d does not match key %q", chargeCol, key)
	}
	isoProd, err := strconv.ParseFloat(rec[r.cols["iso_product"]], 64)
	if err != nil {
		return core.Ion{}, "", fmt.Errorf("bad iso_product: %w", err)
	}

	label := ""
	if r.hasLabel {
		label = rec[r.cols["label"]]
	}
	return core.Ion{
		Components: comps,
		Charge:     charge,
		Mass:       mass,
		MZ:         mz,
		IsoProduct: isoProd,
		Key:        key,
	}, label, nil
}

// ReadTable drains a reader into a table, attaching labels when the file
// has them.
func ReadTable(src io.Reader) (*table.Table, error) {
	r := NewReader(src)
	t := &table.Table{}
	for r.Next() {
		t.Rows = append(t.Rows, r.Row())
		if r.HasLabels() {
			t.Labels = append(t.Labels, r.Label())
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
