// Package cli — regions.go implements the "gridpath regions" command.
//
// It lists the connected regions of free cells. Two cells have a path
// between them exactly when they are in the same region.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridfile"
)

// regionSummary is one entry in the regions output.
type regionSummary struct {
	ID    int    `json:"id"`
	Size  int    `json:"size"`
	First [2]int `json:"first"`
}

// NewRegionsCommand creates the "regions" cobra command.
func NewRegionsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "regions <scenario-file>",
		Short: "List connected regions of free cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := gridfile.Load(args[0])
			if err != nil {
				return classify("failed to load scenario", err)
			}
			grid, err := scenario.GridGraph()
			if err != nil {
				return classify("invalid grid", err)
			}

			regions := grid.FreeRegions()
			summaries := make([]regionSummary, len(regions))
			for i, region := range regions {
				summaries[i] = regionSummary{ID: i, Size: len(region), First: [2]int{region[0].Row, region[0].Col}}
			}
			rows, cols := grid.Dims()
			verboseLog(cmd, opts, "%d regions in %dx%d grid", len(regions), rows, cols)

			if opts.jsonOutput {
				return writeJSON(cmd, summaries)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d regions\n", len(summaries))
			for _, s := range summaries {
				fmt.Fprintf(w, "region %d: %d cells, first (%d,%d)\n", s.ID, s.Size, s.First[0], s.First[1])
			}
			if scenario.Start != nil && scenario.Goal != nil {
				fmt.Fprintf(w, "start %v and goal %v connected: %t\n",
					*scenario.Start, *scenario.Goal, grid.Connected(*scenario.Start, *scenario.Goal))
			}

			return nil
		},
	}
}
