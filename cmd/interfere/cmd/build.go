package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mzgrid/interfere/pkg/labels"
	"github.com/mzgrid/interfere/pkg/metrics"
	"github.com/mzgrid/interfere/pkg/table"
	csvwriter "github.com/mzgrid/interfere/pkg/writer/csv"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build an interference table for a set of elements",
	Long: `Build enumerates every molecule the given atoms can form up to the size
limit, expands each into its isotopologue ions at the configured charges and
prints the resulting table. Groups already in the cache are served from it;
newly built groups are persisted for the next run.

Examples:
  # All ions two H and O atoms can form
  interfere build --elements H,O --max-atoms 2

  # What interferes with the calcium-40 peak on a 0.02 u window
  interfere build --elements Ca,Ar,K --window Ca[40]:0.02 --labels

  # Full-precision export for downstream tooling
  interfere build --elements C,H,N,O --format csv --out table.csv`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	builder, cleanup, reg, err := newBuilder(req)
	if err != nil {
		return err
	}
	defer cleanup()

	tbl, err := builder.Build(cmd.Context(), req)
	if err != nil {
		return err
	}
	if err := applyRowFilters(cmd, tbl); err != nil {
		return err
	}

	if reg != nil {
		if err := metrics.WriteText(reg, os.Stderr); err != nil {
			return err
		}
	}
	return writeOut(tbl)
}

// buildRequest assembles a build request from flags, falling back to the
// loaded config for flags the user did not set.
func buildRequest(cmd *cobra.Command) (table.Request, error) {
	req := table.Request{
		Elements:  elements,
		MaxAtoms:  maxAtoms,
		Charges:   charges,
		Threshold: threshold,
		AddLabels: addLabels,
		NoCache:   noCache,
	}
	if !cmd.Flags().Changed("max-atoms") {
		req.MaxAtoms = cfg.MaxAtoms
	}
	if !cmd.Flags().Changed("charges") {
		req.Charges = cfg.Charges
	}
	if !cmd.Flags().Changed("threshold") {
		req.Threshold = cfg.Threshold
	}

	if windowSpec != "" {
		w, err := parseWindow(windowSpec)
		if err != nil {
			return table.Request{}, err
		}
		req.Window = &w
	}
	if len(sortBy) > 0 {
		keys, err := table.ParseSortKeys(sortBy)
		if err != nil {
			return table.Request{}, err
		}
		req.SortBy = keys
	}
	return req, nil
}

// parseWindow accepts lo:hi with both sides numeric, or atom:width where
// the atom names the window center.
func parseWindow(spec string) (table.Window, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return table.Window{}, fmt.Errorf("%w, got %q", ErrBadWindow, spec)
	}
	width, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return table.Window{}, fmt.Errorf("%w, got %q", ErrBadWindow, spec)
	}
	if lo, err := strconv.ParseFloat(parts[0], 64); err == nil {
		return table.NewWindow(lo, width), nil
	}
	return table.WindowAround(parts[0], width)
}

// newBuilder wires a builder according to the cache and metrics flags. The
// cleanup closes the store; the registry is non-nil only when metrics
// printing is on.
func newBuilder(req table.Request) (*table.Builder, func(), *prometheus.Registry, error) {
	var opts []table.Option
	if workers > 0 {
		opts = append(opts, table.WithWorkers(workers))
	}

	var reg *prometheus.Registry
	if printMetrics {
		var m *metrics.Metrics
		m, reg = metrics.NewLocal()
		opts = append(opts, table.WithMetrics(m))
	}
	if req.AddLabels {
		if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, table.WithLabelCache(labels.OpenCache(cfg.LabelFile())))
	}

	if req.NoCache {
		return table.NewBuilder(nil, opts...), func() {}, reg, nil
	}

	st, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	return table.NewBuilder(st, opts...), func() { st.Close() }, reg, nil
}

// applyRowFilters applies the post-build filter flags. The window and
// charges are skipped: the build already honored both exactly.
func applyRowFilters(cmd *cobra.Command, tbl *table.Table) error {
	if topN == 0 && minProduct == 0 {
		return nil
	}
	fc, err := filterConfig(cmd)
	if err != nil {
		return err
	}
	fc.Window = nil
	fc.Charges = nil
	return fc.Apply(tbl)
}

// writeOut renders the table to --out (or stdout) in the chosen format.
func writeOut(tbl *table.Table) error {
	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch outFormat {
	case "csv":
		w, err := csvwriter.NewWriter(out, tbl.Labels != nil)
		if err != nil {
			return err
		}
		if err := w.WriteTable(tbl); err != nil {
			return err
		}
		return w.Finalize()
	case "table":
		return printHuman(out, tbl)
	default:
		return fmt.Errorf("%w, got %q", ErrBadFormat, outFormat)
	}
}

func printHuman(out io.Writer, tbl *table.Table) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	if tbl.Labels != nil {
		fmt.Fprintln(w, "KEY\tM_Z\tMASS\tCHARGE\tISO_PRODUCT\tLABEL")
	} else {
		fmt.Fprintln(w, "KEY\tM_Z\tMASS\tCHARGE\tISO_PRODUCT")
	}
	for i, r := range tbl.Rows {
		if tbl.Labels != nil {
			fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%d\t%.4g\t%s\n",
				r.Key, r.MZ, r.Mass, r.Charge, r.IsoProduct, tbl.Labels[i])
		} else {
			fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%d\t%.4g\n",
				r.Key, r.MZ, r.Mass, r.Charge, r.IsoProduct)
		}
	}
	return w.Flush()
}
