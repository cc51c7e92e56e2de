// interfere - isotopologue interference tables for mass spectrometry
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mzgrid/interfere/cmd/interfere/cmd"
	"github.com/mzgrid/interfere/pkg/config"
	"github.com/mzgrid/interfere/pkg/core"
	"github.com/mzgrid/interfere/pkg/ptable"
	"github.com/mzgrid/interfere/pkg/store"
	"github.com/mzgrid/interfere/pkg/table"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds onto the documented exit codes: 2 for
// configuration and usage mistakes, 3 for cache corruption, 1 otherwise.
func exitCode(err error) int {
	switch {
	case errors.Is(err, store.ErrCorrupt):
		return 3
	case errors.Is(err, ptable.ErrUnknownElement),
		errors.Is(err, ptable.ErrUnknownIsotope),
		errors.Is(err, ptable.ErrBadAtom),
		errors.Is(err, ptable.ErrUnmappedRank),
		errors.Is(err, table.ErrEmptyElements),
		errors.Is(err, table.ErrMaxAtoms),
		errors.Is(err, table.ErrBadSortKey),
		errors.Is(err, core.ErrBadCharge),
		errors.Is(err, config.ErrBadLogLevel),
		errors.Is(err, cmd.ErrMissingInput),
		errors.Is(err, cmd.ErrBadWindow),
		errors.Is(err, cmd.ErrBadFormat):
		return 2
	default:
		return 1
	}
}
