// Package cmd provides CLI command implementations
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzgrid/interfere/pkg/config"
	"github.com/mzgrid/interfere/pkg/store/sqlite"
	"github.com/mzgrid/interfere/pkg/table"
)

// Sentinel errors for usage mistakes; the binary maps them to exit code 2.
var (
	ErrMissingInput = errors.New("exactly one of --in or --elements must be given")
	ErrBadWindow    = errors.New("window must be lo:hi or atom:width")
	ErrBadFormat    = errors.New(`format must be "table" or "csv"`)
)

var (
	// Persistent flags
	cfgFile  string
	logLevel string

	// Build/filter flags
	elements     []string
	maxAtoms     int
	charges      []int
	windowSpec   string
	threshold    float64
	addLabels    bool
	noCache      bool
	topN         int
	minProduct   float64
	sortBy       []string
	outPath      string
	outFormat    string
	printMetrics bool
	workers      int
	inFile       string

	// Cache flags
	consolidateOut string
)

// cfg is loaded once before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "interfere",
	Short: "interfere - isotopologue interference tables for mass spectrometry",
	Long: `interfere enumerates the molecular ions a set of elements can form,
computes their m/z and isotopic abundance and assembles sorted interference
tables. Built element groups are cached in a SQLite file so repeated and
overlapping requests stay fast.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		return config.ConfigureLogging(level)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: interfere.yaml in . or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: panic, fatal, error, warn, info, debug, trace")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(cacheCmd)

	addTableFlags(buildCmd)
	buildCmd.Flags().BoolVar(&printMetrics, "print-metrics", false, "Dump build counters to stderr on exit")
	buildCmd.MarkFlagRequired("elements")

	addTableFlags(filterCmd)
	filterCmd.Flags().StringVarP(&inFile, "in", "i", "", "Pre-built table CSV to filter instead of building")

	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheResetCmd)
	cacheCmd.AddCommand(cacheConsolidateCmd)
	cacheConsolidateCmd.Flags().StringVarP(&consolidateOut, "out", "o", "", "Output file (default: interferences.db in the cache dir)")
}

// addTableFlags wires the flags shared by build and filter.
func addTableFlags(c *cobra.Command) {
	c.Flags().StringSliceVarP(&elements, "elements", "e", nil, "Atoms to combine, e.g. H,O or Ca[40] (comma separated)")
	c.Flags().IntVar(&maxAtoms, "max-atoms", table.DefaultMaxAtoms, "Largest molecule size to enumerate")
	c.Flags().IntSliceVar(&charges, "charges", table.DefaultCharges(), "Ionic charges to model")
	c.Flags().StringVarP(&windowSpec, "window", "w", "", "m/z window, lo:hi or atom:width (e.g. 39.9:40.0 or Ca[40]:0.02)")
	c.Flags().Float64Var(&threshold, "threshold", table.DefaultThreshold, "Isotope abundance floor in percent; overriding it bypasses the cache")
	c.Flags().BoolVar(&addLabels, "labels", false, "Attach display labels to the output")
	c.Flags().BoolVar(&noCache, "no-cache", false, "Build everything fresh, without reading or writing the cache")
	c.Flags().IntVar(&topN, "top-n", 0, "Keep only the N most abundant rows (0 = no limit)")
	c.Flags().Float64Var(&minProduct, "min-product", 0, "Keep only rows at or above this abundance product (0 = no cutoff)")
	c.Flags().StringSliceVar(&sortBy, "sort", nil, "Sort columns: m_z, charge, mass, iso_product, key (default m_z,charge,mass)")
	c.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	c.Flags().StringVar(&outFormat, "format", "table", "Output format: table or csv")
	c.Flags().IntVar(&workers, "workers", 0, "Concurrent group builds (0 = number of CPUs)")
}

// openStore opens the group cache, creating the cache directory on first
// use.
func openStore() (*sqlite.Store, error) {
	if cfg.CachePath == "" {
		if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
			return nil, err
		}
	}
	return sqlite.Open(cfg.CacheFile())
}
