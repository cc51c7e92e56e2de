package core

import "errors"

var (
	// ErrNoComponents indicates an ion assembled from an empty component list.
	ErrNoComponents = errors.New("core: ion requires at least one component")
	// ErrBadCharge indicates a charge below one.
	ErrBadCharge = errors.New("core: charge must be a positive integer")
	// ErrBadKey indicates a canonical key that does not parse.
	ErrBadKey = errors.New("core: malformed ion key")
)
