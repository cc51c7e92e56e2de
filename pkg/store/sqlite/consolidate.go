package sqlite

import (
	"context"
	"database/sql"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mzgrid/interfere/pkg/core"
)

const flatSchema = `
CREATE TABLE IF NOT EXISTS interferences (
	ion_key     TEXT NOT NULL PRIMARY KEY,
	m_z         REAL NOT NULL,
	mass        REAL NOT NULL,
	charge      INTEGER NOT NULL,
	iso_product REAL NOT NULL,
	components  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interferences_m_z ON interferences (m_z);
`

// Consolidate flattens every persisted group into a standalone sorted,
// fully deduplicated SQLite file suitable for distribution. The complete
// dedup pass reruns over the union, since groups merged across appends can
// hide mass-degenerate collisions no single append could see. The flat
// table is rewritten from scratch each time. Returns the rows written.
func (s *Store) Consolidate(ctx context.Context, outPath string) (int, error) {
	rows, err := s.allRows(ctx)
	if err != nil {
		return 0, err
	}
	maxCharge := 0
	for _, r := range rows {
		if r.Charge > maxCharge {
			maxCharge = r.Charge
		}
	}
	rows, dupKeys := core.DedupExact(rows)
	rows, multiples, err := core.DedupMultiples(rows, nil, maxCharge)
	if err != nil {
		return 0, err
	}
	if n := len(dupKeys) + len(multiples); n > 0 {
		log.Debugf("consolidation dropped %d duplicate rows", n)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.MZ != b.MZ {
			return a.MZ < b.MZ
		}
		if a.Charge != b.Charge {
			return a.Charge < b.Charge
		}
		return a.Mass < b.Mass
	})

	out, err := sql.Open("sqlite3", outPath)
	if err != nil {
		return 0, errors.Wrapf(err, "opening output %s", outPath)
	}
	defer out.Close()

	if _, err := out.ExecContext(ctx, flatSchema); err != nil {
		return 0, classify(errors.Wrap(err, "initializing output schema"))
	}

	tx, err := out.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "starting consolidation transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM interferences`); err != nil {
		return 0, errors.Wrap(err, "clearing previous consolidation")
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO interferences (ion_key, m_z, mass, charge, iso_product, components)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, errors.Wrap(err, "preparing insert")
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.ExecContext(ctx,
			r.Key, r.MZ, r.Mass, r.Charge, r.IsoProduct, componentsColumn(r))
		if err != nil {
			return 0, classify(errors.Wrapf(err, "inserting %s", r.Key))
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "committing consolidation")
	}
	return len(rows), nil
}

func (s *Store) allRows(ctx context.Context) ([]core.Ion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ion_key, m_z, mass, charge, iso_product
		FROM ion_groups ORDER BY rowid
	`)
	if err != nil {
		return nil, classify(errors.Wrap(err, "querying all rows"))
	}
	return scanIons(rows)
}
