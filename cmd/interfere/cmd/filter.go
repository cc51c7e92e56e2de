package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzgrid/interfere/pkg/filter"
	"github.com/mzgrid/interfere/pkg/reader/tablecsv"
	"github.com/mzgrid/interfere/pkg/table"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter a pre-built or freshly built interference table",
	Long: `Filter narrows a table by m/z window, charge, abundance product and
row count. The table comes either from a CSV export (--in) or from a fresh
build (--elements); exactly one of the two must be given.

Examples:
  # Narrow an exported table to the doubly charged rows around m/z 40
  interfere filter --in table.csv --window 39.9:40.1 --charges 2

  # Build and keep only the 20 most abundant rows
  interfere filter --elements C,H,O --top-n 20`,
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	if (inFile == "") == (len(elements) == 0) {
		return fmt.Errorf("%w", ErrMissingInput)
	}

	var tbl *table.Table
	if inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			return err
		}
		defer f.Close()
		tbl, err = tablecsv.ReadTable(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", inFile, err)
		}
	} else {
		req, err := buildRequest(cmd)
		if err != nil {
			return err
		}
		builder, cleanup, _, err := newBuilder(req)
		if err != nil {
			return err
		}
		defer cleanup()
		tbl, err = builder.Build(cmd.Context(), req)
		if err != nil {
			return err
		}
	}

	fc, err := filterConfig(cmd)
	if err != nil {
		return err
	}
	if inFile == "" {
		// A fresh build already applied the window and only contains the
		// requested charges.
		fc.Window = nil
		fc.Charges = nil
	}
	if err := fc.Apply(tbl); err != nil {
		return err
	}

	keys := table.DefaultSort
	if len(sortBy) > 0 {
		keys, err = table.ParseSortKeys(sortBy)
		if err != nil {
			return err
		}
	}
	if err := tbl.Sort(keys...); err != nil {
		return err
	}
	return writeOut(tbl)
}

// filterConfig collects the row filter flags. Charges only act as a keep
// list when the user set them.
func filterConfig(cmd *cobra.Command) (filter.Config, error) {
	fc := filter.Config{
		MinProduct: minProduct,
		TopN:       topN,
	}
	if windowSpec != "" {
		w, err := parseWindow(windowSpec)
		if err != nil {
			return filter.Config{}, err
		}
		fc.Window = &w
	}
	if cmd.Flags().Changed("charges") {
		fc.Charges = charges
	}
	return fc, nil
}
