// Package cli — find.go implements the "gridpath find" command.
//
// The find command loads a scenario, runs A* between its start and goal
// (optionally overridden by flags) and prints the map with the path drawn
// on it. With --verify the result is cross-checked against an exhaustive
// breadth-first search.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridfile"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// findFlags holds the flag values for the find command.
type findFlags struct {
	start         string
	goal          string
	verify        bool
	pngPath       string
	cellSize      int
	maxExpansions int
}

// findOutput is the JSON shape printed by find --json.
type findOutput struct {
	Found    bool     `json:"found"`
	Cost     int      `json:"cost"`
	Path     [][2]int `json:"path"`
	Start    [2]int   `json:"start"`
	Goal     [2]int   `json:"goal"`
	Expanded int      `json:"expanded"`
	Pushed   int      `json:"pushed"`
	Verified *bool    `json:"verified,omitempty"`
}

// NewFindCommand creates the "find" cobra command.
func NewFindCommand(opts *options) *cobra.Command {
	flags := &findFlags{}

	cmd := &cobra.Command{
		Use:   "find <scenario-file>",
		Short: "Find a shortest path in a grid scenario",
		Long: `Find a shortest 4-connected path between start and goal.

Start and goal come from the scenario file unless --start / --goal are given.
The exit code is 0 when a path exists, 3 when the goal is unreachable and
2 when the request is malformed.

Examples:
  gridpath find maze.yaml
  gridpath find maze.txt --start 0,0 --goal 4,4 --verify
  gridpath find maze.jsonc --png route.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, opts, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", "Start cell as row,col (overrides the scenario)")
	cmd.Flags().StringVar(&flags.goal, "goal", "", "Goal cell as row,col (overrides the scenario)")
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "Cross-check the path length with breadth-first search")
	cmd.Flags().StringVar(&flags.pngPath, "png", "", "Also write the map and path to this PNG file")
	cmd.Flags().IntVar(&flags.cellSize, "cell-size", 24, "Pixels per cell for --png")
	cmd.Flags().IntVar(&flags.maxExpansions, "max-expansions", 0, "Abort after expanding this many cells (0 = no limit)")

	return cmd
}

// runFind is the main logic function for the find command.
func runFind(cmd *cobra.Command, opts *options, flags *findFlags, file string) error {
	// Step 1: Load the scenario and resolve the endpoints.
	scenario, err := gridfile.Load(file)
	if err != nil {
		return classify("failed to load scenario", err)
	}
	start, err := endpoint("start", flags.start, scenario.Start)
	if err != nil {
		return err
	}
	goal, err := endpoint("goal", flags.goal, scenario.Goal)
	if err != nil {
		return err
	}
	scenario.Start, scenario.Goal = &start, &goal

	grid, err := scenario.GridGraph()
	if err != nil {
		return classify("invalid grid", err)
	}
	if opts.verbose {
		rows, cols := grid.Dims()
		verboseLog(cmd, opts, "loaded %s: %dx%d grid, %d free regions", file, rows, cols, len(grid.FreeRegions()))
	}

	// Step 2: Search.
	res, err := astar.FindPath(grid, start, goal,
		astar.WithMaxExpansions(flags.maxExpansions),
		astar.WithOnExpand(func(c gridgraph.Cell, g int) {
			verboseLog(cmd, opts, "expand %v g=%d", c, g)
		}),
	)
	if err != nil {
		return classify("search failed", err)
	}
	verboseLog(cmd, opts, "expanded %d cells, %d frontier pushes", res.Expanded, res.Pushed)

	// Step 3: Optional cross-check against breadth-first search.
	var verified *bool
	if flags.verify {
		ok, err := verifyResult(grid, start, goal, res)
		if err != nil {
			return err
		}
		verified = &ok
		if !ok {
			return WrapCLIError(ExitGeneralError, "verification failed: A* and BFS disagree", nil)
		}
		verboseLog(cmd, opts, "verified against breadth-first search")
	}

	// Step 4: Output.
	if flags.pngPath != "" {
		if err := gridfile.SavePNG(flags.pngPath, scenario.Grid, res.Path, flags.cellSize); err != nil {
			return classify("failed to write PNG", err)
		}
		verboseLog(cmd, opts, "wrote %s", flags.pngPath)
	}

	if opts.jsonOutput {
		out := findOutput{
			Found:    res.Found,
			Cost:     res.Cost,
			Path:     toPairs(res.Path),
			Start:    [2]int{start.Row, start.Col},
			Goal:     [2]int{goal.Row, goal.Col},
			Expanded: res.Expanded,
			Pushed:   res.Pushed,
			Verified: verified,
		}
		if err := writeJSON(cmd, out); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		fmt.Fprint(w, gridfile.RenderScenario(scenario, res.Path))
		if res.Found {
			fmt.Fprintf(w, "path (%d moves): %s\n", res.Cost, formatPath(res.Path))
		} else {
			fmt.Fprintln(w, "no path")
		}
	}

	if !res.Found {
		return WrapCLIError(ExitNoPath, "no path", nil)
	}

	return nil
}

// endpoint prefers the flag value over the scenario value.
func endpoint(name, flagValue string, fromFile *gridgraph.Cell) (gridgraph.Cell, error) {
	if flagValue != "" {
		c, err := gridfile.ParseCell(flagValue)
		if err != nil {
			return c, classify(fmt.Sprintf("invalid --%s", name), err)
		}
		return c, nil
	}
	if fromFile == nil {
		return gridgraph.Cell{}, WrapCLIError(ExitInvalidInput,
			fmt.Sprintf("no %s cell: set it in the scenario or pass --%s row,col", name, name), nil)
	}

	return *fromFile, nil
}

// verifyResult compares an A* result with the BFS distance for the same request.
func verifyResult(grid *gridgraph.GridGraph, start, goal gridgraph.Cell, res astar.Result) (bool, error) {
	want, err := bfs.ShortestDistance(grid, start, goal)
	switch {
	case errors.Is(err, bfs.ErrNoPath):
		return !res.Found, nil
	case err != nil:
		return false, classify("verification failed", err)
	}

	return res.Found && res.Cost == want, nil
}

func toPairs(path []gridgraph.Cell) [][2]int {
	pairs := make([][2]int, len(path))
	for i, c := range path {
		pairs[i] = [2]int{c.Row, c.Col}
	}

	return pairs
}

func formatPath(path []gridgraph.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}
