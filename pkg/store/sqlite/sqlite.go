// Package sqlite implements the persistent group store on a single SQLite
// file.
package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/store"
)

const groupsSchema = `
CREATE TABLE IF NOT EXISTS ion_groups (
	element_group TEXT NOT NULL,
	ion_key       TEXT NOT NULL,
	m_z           REAL NOT NULL,
	mass          REAL NOT NULL,
	charge        INTEGER NOT NULL,
	iso_product   REAL NOT NULL,
	components    TEXT NOT NULL,
	PRIMARY KEY (element_group, ion_key)
);

CREATE INDEX IF NOT EXISTS idx_ion_groups_m_z ON ion_groups (m_z);
`

var (
	ionGroups = goqu.T("ion_groups")

	colGroup      = goqu.I("ion_groups.element_group")
	colKey        = goqu.I("ion_groups.ion_key")
	colMZ         = goqu.I("ion_groups.m_z")
	colMass       = goqu.I("ion_groups.mass")
	colCharge     = goqu.I("ion_groups.charge")
	colIsoProduct = goqu.I("ion_groups.iso_product")
)

// Store is the on-disk group cache. It assumes a single writer; SQLite's
// file lock guards against accidental concurrent writers but does not make
// them safe.
type Store struct {
	db   *sql.DB
	qb   *goqu.Database
	path string
}

var _ store.Store = (*Store)(nil)

// Open opens or creates the cache file and verifies its schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening cache %s", path)
	}
	s := &Store{db: db, qb: goqu.New("sqlite3", db), path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// init validates any pre-existing ion_groups table before touching the
// schema, so files written by something else surface as corruption instead
// of failing on a mismatched index statement.
func (s *Store) init() error {
	cols, err := s.tableColumns()
	if err != nil {
		return err
	}
	if len(cols) > 0 {
		if err := matchSchema(cols); err != nil {
			return err
		}
	}
	if _, err := s.db.Exec(groupsSchema); err != nil {
		return classify(errors.Wrapf(err, "initializing cache schema at %s", s.path))
	}
	return nil
}

// tableColumns lists the ion_groups columns in declaration order; an
// absent table yields an empty list.
func (s *Store) tableColumns() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM pragma_table_info('ion_groups') ORDER BY cid`)
	if err != nil {
		return nil, classify(errors.Wrap(err, "reading cache schema"))
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scanning schema row")
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return cols, nil
}

// matchSchema confirms the columns match what this version writes. A
// mismatch means the file was produced by something else and is reported
// as corruption rather than misread.
func matchSchema(cols []string) error {
	want := []string{"element_group", "ion_key", "m_z", "mass", "charge", "iso_product", "components"}
	if len(cols) != len(want) {
		return errors.Wrapf(store.ErrCorrupt, "ion_groups has columns %v", cols)
	}
	for i, c := range cols {
		if c != want[i] {
			return errors.Wrapf(store.ErrCorrupt, "ion_groups has columns %v", cols)
		}
	}
	return nil
}

// classify maps low-level SQLite corruption onto the store error taxonomy.
func classify(err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) && (serr.Code == sqlite3.ErrNotADB || serr.Code == sqlite3.ErrCorrupt) {
		return errors.Wrapf(store.ErrCorrupt, "%v", err)
	}
	return err
}

// Lookup returns the union of rows for ids. Identifiers with no persisted
// rows are reported in Missing; a window only narrows the rows of
// identifiers that are present. Rows come back ordered by group then key.
func (s *Store) Lookup(ctx context.Context, ids []string, window *core.Window) (*store.LookupResult, error) {
	res := &store.LookupResult{}
	if len(ids) == 0 {
		return res, nil
	}
	unique := dedupeIDs(ids)

	present, err := s.presentGroups(ctx, unique)
	if err != nil {
		return nil, err
	}
	found := make([]string, 0, len(present))
	for _, id := range unique {
		if _, ok := present[id]; ok {
			found = append(found, id)
		} else {
			res.Missing = append(res.Missing, id)
		}
	}
	if len(found) == 0 {
		return res, nil
	}

	res.Rows, err = s.selectRows(ctx, found, window)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *Store) presentGroups(ctx context.Context, ids []string) (map[string]struct{}, error) {
	q, args, err := s.qb.From(ionGroups).
		Select(colGroup).
		Distinct().
		Where(colGroup.In(ids)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "building presence query")
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify(errors.Wrap(err, "querying group presence"))
	}
	defer rows.Close()

	present := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scanning group id")
		}
		present[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return present, nil
}

func (s *Store) selectRows(ctx context.Context, ids []string, window *core.Window) ([]core.Ion, error) {
	ds := s.qb.From(ionGroups).
		Select(colKey, colMZ, colMass, colCharge, colIsoProduct).
		Where(colGroup.In(ids)).
		Order(colGroup.Asc(), colKey.Asc())
	if window != nil {
		ds = ds.Where(colMZ.Gte(window.Lo), colMZ.Lte(window.Hi))
	}
	q, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "building row query")
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify(errors.Wrap(err, "querying rows"))
	}
	return scanIons(rows)
}

func scanIons(rows *sql.Rows) ([]core.Ion, error) {
	defer rows.Close()
	var out []core.Ion
	for rows.Next() {
		var (
			key              string
			mz, mass, isoPrd float64
			charge           int
		)
		if err := rows.Scan(&key, &mz, &mass, &charge, &isoPrd); err != nil {
			return nil, errors.Wrap(err, "scanning ion row")
		}
		comps, _, err := core.ParseKey(key)
		if err != nil {
			return nil, errors.Wrapf(store.ErrCorrupt, "persisted key %q: %v", key, err)
		}
		out = append(out, core.Ion{
			Components: comps,
			Charge:     charge,
			Mass:       mass,
			MZ:         mz,
			IsoProduct: isoPrd,
			Key:        key,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// Append persists newly built groups in one transaction: exact duplicates
// within the call are dropped, then multiples of any key already
// persisted; survivors are inserted or the whole call rolls back.
func (s *Store) Append(ctx context.Context, groups []store.Group) error {
	var rows []core.Ion
	gidOf := make(map[string]string)
	maxCharge := 0
	for _, g := range groups {
		for _, r := range g.Rows {
			rows = append(rows, r)
			if _, ok := gidOf[r.Key]; !ok {
				gidOf[r.Key] = g.ID
			}
			if r.Charge > maxCharge {
				maxCharge = r.Charge
			}
		}
	}
	rows, dups := core.DedupExact(rows)
	if len(dups) > 0 {
		log.Debugf("dropping duplicate keys before append: %s", strings.Join(dups, ", "))
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting append transaction")
	}
	defer tx.Rollback()

	persisted, err := keysTx(ctx, tx)
	if err != nil {
		return err
	}
	kept, dropped, err := core.DedupMultiples(rows, persisted, maxCharge)
	if err != nil {
		if errors.Is(err, core.ErrBadKey) {
			return errors.Wrapf(store.ErrCorrupt, "%v", err)
		}
		return err
	}
	if len(dropped) > 0 {
		log.Debugf("dropping multiples (duplicate m_z): %s", strings.Join(dropped, ", "))
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ion_groups (element_group, ion_key, m_z, mass, charge, iso_product, components)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(err, "preparing insert")
	}
	defer stmt.Close()

	for _, r := range kept {
		_, err := stmt.ExecContext(ctx,
			gidOf[r.Key], r.Key, r.MZ, r.Mass, r.Charge, r.IsoProduct, componentsColumn(r))
		if err != nil {
			return classify(errors.Wrapf(err, "inserting %s", r.Key))
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing append")
	}
	return nil
}

// componentsColumn renders the human-queryable component list, e.g.
// "H[1] H[1] O[16]".
func componentsColumn(r core.Ion) string {
	parts := make([]string, len(r.Components))
	for i, iso := range r.Components {
		parts[i] = iso.String()
	}
	return strings.Join(parts, " ")
}

func keysTx(ctx context.Context, tx *sql.Tx) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT ion_key FROM ion_groups ORDER BY rowid`)
	if err != nil {
		return nil, classify(errors.Wrap(err, "querying persisted keys"))
	}
	return scanKeys(rows)
}

// Keys returns every persisted canonical key in insertion order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ion_key FROM ion_groups ORDER BY rowid`)
	if err != nil {
		return nil, classify(errors.Wrap(err, "querying keys"))
	}
	return scanKeys(rows)
}

func scanKeys(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, errors.Wrap(err, "scanning key")
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return keys, nil
}

// Stats reports the persisted group and row counts.
func (s *Store) Stats(ctx context.Context) (groups, rows int, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT element_group), COUNT(*) FROM ion_groups`)
	if err := row.Scan(&groups, &rows); err != nil {
		return 0, 0, classify(errors.Wrap(err, "counting cache contents"))
	}
	return groups, rows, nil
}

// Reset clears all persisted groups in place, keeping the file usable.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM ion_groups`); err != nil {
		return classify(errors.Wrap(err, "clearing cache"))
	}
	return nil
}

// Path returns the cache file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "closing cache")
}
