package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
	"github.com/Mr-Dark-debug/trailhead/pkg/textutil"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one trail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.store.GetTrail(args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), t)
			}
			printTrail(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func printTrail(out io.Writer, t *trail.Trail) {
	w := newTable(out)
	fmt.Fprintf(w, "Title:\t%s\n", t.Title)
	fmt.Fprintf(w, "Location:\t%s\n", t.Location)
	fmt.Fprintf(w, "Category:\t%s\n", t.Category)
	fmt.Fprintf(w, "Difficulty:\t%s\n", t.Difficulty)
	fmt.Fprintf(w, "Rating:\t%s %s\n", textutil.FormatRating(t.Rating), textutil.Stars(t.Rating))
	fmt.Fprintf(w, "Image:\t%s\n", t.Image)
	w.Flush()
}
