package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

var errUnknownGraphFormat = errors.New("unknown graph document format")

// graphDoc is the on-disk description of a weighted graph:
//
//	directed = true
//	[[edges]]
//	from = "A"
//	to   = "B"
//	cost = 1
//
// Vertices lists isolated vertices; endpoints of edges are added implicitly.
type graphDoc struct {
	Directed bool      `toml:"directed" yaml:"directed"`
	Loops    bool      `toml:"loops" yaml:"loops"`
	Vertices []string  `toml:"vertices" yaml:"vertices"`
	Edges    []edgeDoc `toml:"edges" yaml:"edges"`
}

type edgeDoc struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
	Cost uint64 `toml:"cost" yaml:"cost"`
}

// loadGraph reads the graph document at path. The format is chosen by
// extension: .toml, .yaml or .yml.
func loadGraph(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := decodeGraph(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// decodeGraph parses data as the format named by ext and builds a core.Graph.
func decodeGraph(data []byte, ext string) (*core.Graph, error) {
	var doc graphDoc
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q (want .toml, .yaml or .yml)", errUnknownGraphFormat, ext)
	}

	return doc.build()
}

func (doc graphDoc) build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(doc.Directed)}
	if doc.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, v := range doc.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v, err)
		}
	}
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, dijkstra.Cost(e.Cost)); err != nil {
			return nil, fmt.Errorf("edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// requireVertices checks that every id is a vertex of g.
func requireVertices(g *core.Graph, ids ...string) error {
	for _, id := range ids {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
		}
	}
	return nil
}
