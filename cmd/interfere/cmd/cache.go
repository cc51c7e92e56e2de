package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mzgrid/interfere/pkg/labels"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the group cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache location and contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		groups, rows, err := st.Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Cache:  %s\n", st.Path())
		fmt.Printf("Groups: %d\n", groups)
		fmt.Printf("Rows:   %d\n", rows)
		fmt.Printf("Labels: %d (%s)\n", labels.OpenCache(cfg.LabelFile()).Len(), cfg.LabelFile())
		return nil
	},
}

var cacheResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every cached group",
	Long: `Reset clears the group cache in place. The next build recomputes and
re-persists whatever it needs; nothing else is affected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Cache cleared: %s\n", st.Path())
		return nil
	},
}

var cacheConsolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Flatten the cache into a distributable table file",
	Long: `Consolidate merges every cached group, removes rows that duplicate an
m/z already covered by a simpler ion and writes the result as a single
m/z-sorted SQLite table. The output file is self-contained and needs no
engine to query.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		out := consolidateOut
		if out == "" {
			out = filepath.Join(cfg.CacheDir, "interferences.db")
		}
		n, err := st.Consolidate(cmd.Context(), out)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", n, out)
		return nil
	},
}
