package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/trailhead/internal/database"
	"github.com/Mr-Dark-debug/trailhead/internal/trail"
	"github.com/Mr-Dark-debug/trailhead/pkg/textutil"
)

func newListCmd(a *app) *cobra.Command {
	var (
		category   string
		difficulty string
		minRating  float64
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trails",
		Long: `List trails in display order, the order the discover screen shows.

Example:
  trailhead list
  trailhead list --category hiking
  trailhead list --difficulty easy --min-rating 4.5
  trailhead list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := database.TrailFilter{MinRating: minRating, Limit: limit}
			if category != "" {
				c, err := trail.ParseCategory(category)
				if err != nil {
					return err
				}
				filter.Category = c
			}
			if difficulty != "" {
				d, err := trail.ParseDifficulty(difficulty)
				if err != nil {
					return err
				}
				filter.Difficulty = &d
			}

			trails, err := a.store.QueryTrails(filter)
			if err != nil {
				return fmt.Errorf("query trails: %w", err)
			}
			a.log.Debug("listed trails",
				zap.String("category", string(filter.Category)), zap.Int("count", len(trails)))

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), trails)
			}
			printTrailTable(cmd.OutOrStdout(), trails)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (all, hiking, mountains, rivers, caves)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty (easy, moderate, hard)")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "only trails rated at least this")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 = no limit)")
	return cmd
}

// printTrailTable prints trails in a human-readable table.
func printTrailTable(out io.Writer, trails []trail.Trail) {
	if len(trails) == 0 {
		fmt.Fprintln(out, "No trails found.")
		return
	}

	w := newTable(out)
	fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tCATEGORY\tDIFFICULTY\tRATING")
	fmt.Fprintln(w, "--\t-----\t--------\t--------\t----------\t------")
	for _, t := range trails {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			textutil.Truncate(t.Title, 40),
			textutil.Truncate(t.Location, 24),
			t.Category,
			t.Difficulty,
			textutil.FormatRating(t.Rating),
		)
	}
	w.Flush()

	fmt.Fprintf(out, "Total: %d trail(s)\n", len(trails))
}
