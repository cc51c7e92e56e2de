package table

import "errors"

var (
	// ErrEmptyElements indicates a build request without any elements.
	ErrEmptyElements = errors.New("table: no elements given")
	// ErrMaxAtoms indicates a molecule size cap below one.
	ErrMaxAtoms = errors.New("table: max atoms must be at least one")
	// ErrBadSortKey indicates an unknown sort column name.
	ErrBadSortKey = errors.New("table: unknown sort column")
)
