package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/govox/pkg/drop"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var urls bool

	cmd := &cobra.Command{
		Use:   "classify [paths...]",
		Short: "Show how files would be loaded",
		Long:  "Print the load operation (volume, surface or series) the viewer picks for the given files, and their normalized paths.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if urls {
				files = drop.FileURLs(args)
			}

			dec, err := drop.Classify(files)
			if errors.Is(err, drop.ErrEmptyPayload) {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to load")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Load: %s\n", dec.Kind)
			for _, p := range dec.Paths {
				marker := ""
				if dec.Kind != drop.Surface && !drop.IsKnownVolume(p) {
					marker = " (unknown volume format)"
				}
				fmt.Fprintf(out, "  %s%s\n", p, marker)
			}
			if dec.Kind == drop.Series {
				fmt.Fprintf(out, "Label: %s\n", drop.CommonPrefix(dec.Paths))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&urls, "urls", false, "treat arguments as dropped URLs; only file:// URLs are kept")
	return cmd
}
