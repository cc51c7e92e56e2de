package table

import "github.com/mzgrid/interfere/pkg/core"

// Window aliases the core m/z interval so builder callers need only this
// package.
type Window = core.Window

// NewWindow normalizes explicit bounds into a Window.
func NewWindow(lo, hi float64) Window { return core.NewWindow(lo, hi) }

// WindowAround centres a window of the given full width on an atom's mass.
func WindowAround(notation string, width float64) (Window, error) {
	return core.WindowAround(notation, width)
}
