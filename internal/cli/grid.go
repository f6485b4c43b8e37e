package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/yen"
)

// gridOpts holds the command-line flags for the grid command.
type gridOpts struct {
	mapFile  string // text map path
	diagonal bool   // 8-directional moves
	terrain  bool   // digits are move costs
	k        int    // number of routes
}

func newGridCmd() *cobra.Command {
	opts := gridOpts{k: 1}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the cheapest routes from S to E across a text map",
		Long: `Reads a text map where '#' is a wall, digits 1-9 are terrain costs,
S and E mark the start and end, and any other character is open ground.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mapFile, "map", "m", "", "text map file")
	cmd.Flags().BoolVar(&opts.diagonal, "diagonal", false, "allow diagonal moves")
	cmd.Flags().BoolVar(&opts.terrain, "terrain", false, "charge the digit of each entered cell instead of 1")
	cmd.Flags().IntVarP(&opts.k, "k", "k", opts.k, "number of routes (0 = all)")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

func runGrid(ctx context.Context, w io.Writer, opts gridOpts) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(opts.mapFile)
	if err != nil {
		return err
	}
	values, start, end, err := gridgraph.ParseRunes(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", opts.mapFile, err)
	}
	gopts := gridgraph.DefaultGridOptions()
	if opts.diagonal {
		gopts.Conn = gridgraph.Conn8
	}
	if opts.terrain {
		gopts.Cost = gridgraph.Terrain
	}
	gg, err := gridgraph.NewGridGraph(values, gopts)
	if err != nil {
		return err
	}
	logger.Debug("map loaded", "file", opts.mapFile, "width", gg.Width, "height", gg.Height,
		"start", start, "end", end)

	format := formatFromContext(ctx)
	cellName := gridgraph.Cell.String

	// Skip the search when S and E are walled off from each other.
	if ok, err := gg.Connected(start, end); err != nil {
		return err
	} else if !ok {
		logger.Debug("start and end are in different regions")
		return writeReport(w, format, newRouteReport(start, end, nil, cellName))
	}

	prog := newProgress(logger)
	paths, err := yen.KShortest(start, end, gg.NeighborFunc(),
		yen.WithContext(ctx),
		yen.WithMaxK(opts.k),
		yen.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("rank %v→%v: %w", start, end, err)
	}
	prog.done(fmt.Sprintf("Ranked %d routes", len(paths)))

	rep := newRouteReport(start, end, paths, cellName)
	for i, p := range paths {
		rep.Paths[i].Map = gg.Render(p.Nodes())
	}

	return writeReport(w, format, rep)
}
