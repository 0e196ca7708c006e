package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show how many trails each category holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := a.store.CategoryCounts()
			if err != nil {
				return fmt.Errorf("count categories: %w", err)
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), counts)
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "CATEGORY\tTRAILS")
			for _, c := range counts {
				fmt.Fprintf(w, "%s\t%d\n", c.Category, c.Count)
			}
			return w.Flush()
		},
	}
}
