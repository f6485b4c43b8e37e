package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/yen"
)

const defaultK = 3

// kshortestOpts holds the command-line flags for the kshortest command.
type kshortestOpts struct {
	graph         string        // graph document path
	from          string        // start vertex
	to            string        // target vertex
	k             int           // number of paths, 0 = all
	maxDist       dijkstra.Cost // cost bound, applied only when --max-dist is set
	workers       int           // spur-search pool size
	maxIterations int           // Yen iteration budget, 0 = unlimited
}

func newKShortestCmd() *cobra.Command {
	opts := kshortestOpts{
		k:       defaultK,
		workers: runtime.GOMAXPROCS(0),
	}

	cmd := &cobra.Command{
		Use:   "kshortest",
		Short: "Print the K cheapest loopless paths between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rankOpts []yen.Option
			if cmd.Flags().Changed("max-dist") {
				rankOpts = append(rankOpts, yen.WithMaxDistance(opts.maxDist))
			}
			return runKShortest(cmd.Context(), cmd.OutOrStdout(), opts, rankOpts...)
		},
	}

	cmd.Flags().StringVarP(&opts.graph, "graph", "g", "", "graph document (.toml, .yaml, .yml)")
	cmd.Flags().StringVar(&opts.from, "from", "", "start vertex")
	cmd.Flags().StringVar(&opts.to, "to", "", "target vertex")
	cmd.Flags().IntVarP(&opts.k, "k", "k", opts.k, "number of paths (0 = all)")
	cmd.Flags().Uint64Var(&opts.maxDist, "max-dist", 0, "ignore paths costing more than this")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", opts.workers, "concurrent spur searches")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", 0, "abort after this many iterations (0 = unlimited)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runKShortest(ctx context.Context, w io.Writer, opts kshortestOpts, rankOpts ...yen.Option) error {
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
	rankOpts = append(rankOpts,
		yen.WithContext(ctx),
		yen.WithMaxK(opts.k),
		yen.WithWorkers(opts.workers),
		yen.WithMaxIterations(opts.maxIterations),
		yen.WithLogger(logger),
	)
	paths, err := yen.KShortest(opts.from, opts.to, g.NeighborFunc(), rankOpts...)
	if errors.Is(err, yen.ErrIterationLimit) {
		logger.Warn("ranking stopped early", "paths", len(paths))
		err = nil
	}
	if err != nil {
		return fmt.Errorf("rank %s→%s: %w", opts.from, opts.to, err)
	}
	prog.done(fmt.Sprintf("Ranked %d paths", len(paths)))

	return writeReport(w, formatFromContext(ctx), newRouteReport(opts.from, opts.to, paths, identity))
}
