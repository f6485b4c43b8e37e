package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// shortestOpts holds the command-line flags for the shortest command.
type shortestOpts struct {
	graph   string        // graph document path
	from    string        // start vertex
	to      string        // target vertex
	maxDist dijkstra.Cost // cost bound, applied only when --max-dist is set
	maxPops int           // heap pop budget, 0 = unlimited
}

func newShortestCmd() *cobra.Command {
	var opts shortestOpts

	cmd := &cobra.Command{
		Use:   "shortest",
		Short: "Print the cheapest path between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var searchOpts []dijkstra.Option
			if cmd.Flags().Changed("max-dist") {
				searchOpts = append(searchOpts, dijkstra.WithMaxDistance(opts.maxDist))
			}
			return runShortest(cmd.Context(), cmd.OutOrStdout(), opts, searchOpts...)
		},
	}

	cmd.Flags().StringVarP(&opts.graph, "graph", "g", "", "graph document (.toml, .yaml, .yml)")
	cmd.Flags().StringVar(&opts.from, "from", "", "start vertex")
	cmd.Flags().StringVar(&opts.to, "to", "", "target vertex")
	cmd.Flags().Uint64Var(&opts.maxDist, "max-dist", 0, "ignore paths costing more than this")
	cmd.Flags().IntVar(&opts.maxPops, "max-pops", 0, "abort after this many queue pops (0 = unlimited)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runShortest(ctx context.Context, w io.Writer, opts shortestOpts, searchOpts ...dijkstra.Option) error {
	logger := loggerFromContext(ctx)

	g, err := loadGraph(opts.graph)
	if err != nil {
		return err
	}
	if err := requireVertices(g, opts.from, opts.to); err != nil {
		return err
	}
	logger.Debug("graph loaded", "file", opts.graph, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	prog := newProgress(logger)
	searchOpts = append(searchOpts, dijkstra.WithContext(ctx), dijkstra.WithMaxPops(opts.maxPops))
	res, err := dijkstra.SearchTo(opts.from, opts.to, g.NeighborFunc(), searchOpts...)
	if errors.Is(err, dijkstra.ErrSearchLimit) && res != nil {
		logger.Warn("search stopped early", "pops", res.Stats.Pops)
	}
	if err != nil {
		return fmt.Errorf("search %s→%s: %w", opts.from, opts.to, err)
	}
	logger.Debug("search finished", "pops", res.Stats.Pops, "stale", res.Stats.StalePops,
		"pushes", res.Stats.Pushes, "relaxations", res.Stats.Relaxations)

	var paths []dijkstra.Path[string]
	if p, ok := res.PathTo(opts.to); ok && res.Found {
		paths = append(paths, p)
	}
	prog.done(fmt.Sprintf("Searched %d vertices", len(res.Paths)))

	return writeReport(w, formatFromContext(ctx), newRouteReport(opts.from, opts.to, paths, identity))
}

func identity(s string) string { return s }
