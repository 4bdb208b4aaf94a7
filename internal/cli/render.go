// Package cli — render.go implements the "gridpath render" command, which
// prints a scenario without searching it.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridfile"
)

type renderFlags struct {
	pngPath  string
	cellSize int
}

// NewRenderCommand creates the "render" cobra command.
func NewRenderCommand(opts *options) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <scenario-file>",
		Short: "Print a scenario as an ASCII map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := gridfile.Load(args[0])
			if err != nil {
				return classify("failed to load scenario", err)
			}
			verboseLog(cmd, opts, "loaded %s", args[0])

			if flags.pngPath != "" {
				if err := gridfile.SavePNG(flags.pngPath, scenario.Grid, nil, flags.cellSize); err != nil {
					return classify("failed to write PNG", err)
				}
			}
			if opts.jsonOutput {
				return writeJSON(cmd, map[string]interface{}{
					"rows": len(scenario.Grid),
					"cols": len(scenario.Grid[0]),
					"grid": scenario.Grid,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), gridfile.RenderScenario(scenario, nil))

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.pngPath, "png", "", "Also write the map to this PNG file")
	cmd.Flags().IntVar(&flags.cellSize, "cell-size", 24, "Pixels per cell for --png")

	return cmd
}
