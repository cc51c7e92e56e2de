package core

import (
	"fmt"

	"github.com/mzgrid/interfere/pkg/ptable"
)

// Window is a closed m/z interval with inclusive bounds.
type Window struct {
	Lo, Hi float64
}

// NewWindow normalizes explicit bounds, swapping them when given reversed.
func NewWindow(lo, hi float64) Window {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Window{Lo: lo, Hi: hi}
}

// WindowAround centres a window of the given full width on an atom's mass:
// the standard atomic weight for a plain element, the isotopic mass for an
// isotope. ("Ca", 0.1) covers 40.028 to 40.128.
func WindowAround(notation string, width float64) (Window, error) {
	a, err := ptable.ParseAtom(notation)
	if err != nil {
		return Window{}, err
	}
	if width < 0 {
		width = -width
	}
	m := a.Mass()
	return Window{Lo: m - width/2, Hi: m + width/2}, nil
}

// Contains reports whether mz falls inside the window, bounds included.
func (w Window) Contains(mz float64) bool { return mz >= w.Lo && mz <= w.Hi }

// Widen grows each bound away from the interval by frac of its magnitude.
// Pruning heuristics test against the widened window so that float error
// and isotopic spread never exclude rows the exact filter would keep.
func (w Window) Widen(frac float64) Window {
	lo, hi := w.Lo, w.Hi
	if lo >= 0 {
		lo *= 1 - frac
	} else {
		lo *= 1 + frac
	}
	if hi >= 0 {
		hi *= 1 + frac
	} else {
		hi *= 1 - frac
	}
	return Window{Lo: lo, Hi: hi}
}

func (w Window) String() string {
	return fmt.Sprintf("[%g, %g]", w.Lo, w.Hi)
}
