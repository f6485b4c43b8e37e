package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvpath/dijkstra"
)

const (
	formatText = "text" // one ranked line per path
	formatJSON = "json" // routeReport as indented JSON
)

const formatKey ctxKey = 1

func validateFormat(f string) error {
	switch f {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", f, formatText, formatJSON)
	}
}

func withFormat(ctx context.Context, f string) context.Context {
	return context.WithValue(ctx, formatKey, f)
}

// formatFromContext returns the --format value, text if none was set.
func formatFromContext(ctx context.Context) string {
	if f, ok := ctx.Value(formatKey).(string); ok {
		return f
	}
	return formatText
}

// pathReport is one ranked path in command output.
type pathReport struct {
	Rank  int      `json:"rank"`
	Cost  uint64   `json:"cost"`
	Nodes []string `json:"nodes"`
	Map   string   `json:"map,omitempty"` // grid rendering, grid command only
}

// routeReport is the full result of a command.
type routeReport struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Paths []pathReport `json:"paths"`
}

// newRouteReport names every node of paths with name.
func newRouteReport[T comparable](from, to T, paths []dijkstra.Path[T], name func(T) string) routeReport {
	rep := routeReport{
		From:  name(from),
		To:    name(to),
		Paths: make([]pathReport, 0, len(paths)),
	}
	for i, p := range paths {
		nodes := make([]string, len(p))
		for j, st := range p {
			nodes[j] = name(st.Node)
		}
		rep.Paths = append(rep.Paths, pathReport{Rank: i + 1, Cost: p.Cost(), Nodes: nodes})
	}

	return rep
}

// writeReport prints rep to w in the given format.
func writeReport(w io.Writer, format string, rep routeReport) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	if len(rep.Paths) == 0 {
		_, err := fmt.Fprintf(w, "no path from %s to %s\n", rep.From, rep.To)
		return err
	}
	for _, p := range rep.Paths {
		if _, err := fmt.Fprintf(w, "%d. %s (cost %d)\n", p.Rank, strings.Join(p.Nodes, " → "), p.Cost); err != nil {
			return err
		}
		if p.Map != "" {
			if _, err := fmt.Fprintf(w, "%s\n\n", p.Map); err != nil {
				return err
			}
		}
	}

	return nil
}
