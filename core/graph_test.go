package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected by default; individual tests may override
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"), "graph should have A after AddVertex")

	// Idempotence: adding again does not change count
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeUndirectedMirrors() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 5))
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")

	a, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal([]dijkstra.Edge[string]{{To: "B", Cost: 5}}, a)

	b, err := s.g.Neighbors("B")
	require.NoError(err)
	require.Equal([]dijkstra.Edge[string]{{To: "A", Cost: 5}}, b)
	require.Equal(1, s.g.EdgeCount(), "undirected edge is stored once")
}

func (s *GraphSuite) TestAddEdgeDirected() {
	require := require.New(s.T())
	s.g = core.NewGraph(core.WithDirected(true))
	require.True(s.g.Directed())
	require.NoError(s.g.AddEdge("X", "Y", 1))

	y, err := s.g.Neighbors("Y")
	require.NoError(err)
	require.Empty(y, "directed edge must not be mirrored")
}

func (s *GraphSuite) TestParallelEdgesKeepInsertionOrder() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 7))
	require.NoError(s.g.AddEdge("A", "B", 2))
	a, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal([]dijkstra.Edge[string]{{To: "B", Cost: 7}, {To: "B", Cost: 2}}, a)
	require.Equal([]core.Edge{{From: "A", To: "B", Cost: 7}, {From: "A", To: "B", Cost: 2}}, s.g.Edges())
}

func (s *GraphSuite) TestLoops() {
	require := require.New(s.T())
	err := s.g.AddEdge("A", "A", 1)
	require.True(errors.Is(err, core.ErrLoopNotAllowed), "got %v", err)

	g := core.NewGraph(core.WithLoops())
	require.NoError(g.AddEdge("A", "A", 0))
	a, err := g.Neighbors("A")
	require.NoError(err)
	require.Len(a, 1, "undirected self-loop is stored once")
}

func (s *GraphSuite) TestEmptyIDs() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	require.ErrorIs(s.g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestVerticesSorted() {
	require := require.New(s.T())
	for _, e := range [][2]string{{"C", "A"}, {"B", "D"}} {
		require.NoError(s.g.AddEdge(e[0], e[1], 1))
	}
	require.Equal([]string{"A", "B", "C", "D"}, s.g.Vertices())
}

func (s *GraphSuite) TestNeighborsUnknownVertex() {
	require := require.New(s.T())
	_, err := s.g.Neighbors("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.Nil(s.g.NeighborFunc()("missing"))
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1))
	a, err := s.g.Neighbors("A")
	require.NoError(err)
	a[0].Cost = 99

	again, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal(dijkstra.Cost(1), again[0].Cost)
}

func (s *GraphSuite) TestSearchThroughNeighborFunc() {
	require := require.New(s.T())
	s.g = core.NewGraph(core.WithDirected(true))
	for _, e := range []core.Edge{
		{From: "A", To: "B", Cost: 1},
		{From: "A", To: "C", Cost: 4},
		{From: "B", To: "C", Cost: 1},
		{From: "B", To: "D", Cost: 5},
		{From: "C", To: "D", Cost: 1},
	} {
		require.NoError(s.g.AddEdge(e.From, e.To, e.Cost))
	}
	cost, ok := dijkstra.ShortestCost("A", "D", s.g.NeighborFunc())
	require.True(ok)
	require.Equal(dijkstra.Cost(3), cost)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
