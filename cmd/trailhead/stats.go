package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
	"github.com/Mr-Dark-debug/trailhead/pkg/textutil"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.store.GetCatalogStats()
			if err != nil {
				return fmt.Errorf("catalog stats: %w", err)
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), stats)
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Trails:\t%d\n", stats.TotalTrails)
			fmt.Fprintf(w, "Average rating:\t%.2f\n", stats.AverageRating)
			fmt.Fprintf(w, "Best rating:\t%s\n", textutil.FormatRating(stats.MaxRating))
			fmt.Fprintf(w, "Top rated:\t%s\n", strings.Join(stats.TopRated, ", "))
			for _, d := range trail.Difficulties() {
				fmt.Fprintf(w, "%s:\t%d\n", d, stats.ByDifficulty[d])
			}
			return w.Flush()
		},
	}
}
