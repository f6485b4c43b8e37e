package yen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/dijkstra"
)

func pathOf(nodes ...string) dijkstra.Path[string] {
	p := make(dijkstra.Path[string], len(nodes))
	for i, n := range nodes {
		p[i] = dijkstra.Step[string]{Node: n, Dist: dijkstra.Cost(i)}
	}

	return p
}

func TestPathSet_AddContains(t *testing.T) {
	var s pathSet[string]
	require.True(t, s.add(pathOf("A", "B", "D")))
	require.False(t, s.add(pathOf("A", "B", "D")), "same node sequence")
	require.True(t, s.contains(pathOf("A", "B", "D")))
	require.False(t, s.contains(pathOf("A", "B")), "a prefix is not a member")
	require.False(t, s.contains(pathOf("A", "C")))
	require.True(t, s.add(pathOf("A", "B")))
	require.True(t, s.contains(pathOf("A", "B")))
	require.Equal(t, 2, s.size)
}

func TestPathSet_DistancesIgnored(t *testing.T) {
	var s pathSet[string]
	require.True(t, s.add(dijkstra.Path[string]{{Node: "A"}, {Node: "B", Dist: 7}}))
	require.False(t, s.add(dijkstra.Path[string]{{Node: "A"}, {Node: "B", Dist: 2}}))
}

func TestPathSet_Successors(t *testing.T) {
	var s pathSet[string]
	s.add(pathOf("A", "B", "C", "D"))
	s.add(pathOf("A", "B", "D"))
	s.add(pathOf("A", "C", "D"))

	next := s.successors(pathOf("A", "B"))
	require.Len(t, next, 2)
	require.Contains(t, next, "C")
	require.Contains(t, next, "D")

	next = s.successors(pathOf("A"))
	require.Len(t, next, 2)
	require.Contains(t, next, "B")
	require.Contains(t, next, "C")

	require.Nil(t, s.successors(pathOf("B")))
	require.Empty(t, s.successors(pathOf("A", "C", "D")))
}

func TestCandidatePool_OrderAndDedup(t *testing.T) {
	var c candidatePool[string]
	expensive := dijkstra.Path[string]{{Node: "A"}, {Node: "X", Dist: 9}, {Node: "D", Dist: 9}}
	cheapFirst := dijkstra.Path[string]{{Node: "A"}, {Node: "Y", Dist: 2}, {Node: "D", Dist: 4}}
	cheapSecond := dijkstra.Path[string]{{Node: "A"}, {Node: "Z", Dist: 1}, {Node: "D", Dist: 4}}

	require.True(t, c.offer(expensive))
	require.True(t, c.offer(cheapFirst))
	require.True(t, c.offer(cheapSecond))
	require.False(t, c.offer(cheapFirst.Clone()), "duplicate node sequence")
	require.Equal(t, 3, c.Len())

	p, ok := c.pop()
	require.True(t, ok)
	require.Equal(t, cheapFirst, p, "equal costs pop in offer order")
	p, _ = c.pop()
	require.Equal(t, cheapSecond, p)
	p, _ = c.pop()
	require.Equal(t, expensive, p)

	_, ok = c.pop()
	require.False(t, ok)
	require.False(t, c.offer(expensive), "popped paths stay seen")
}

func TestSplice(t *testing.T) {
	root := dijkstra.Path[string]{{Node: "A", Dist: 0}, {Node: "B", Dist: 1}}
	spur := dijkstra.Path[string]{{Node: "B", Dist: 0}, {Node: "E", Dist: 2}, {Node: "D", Dist: 3}}
	got := splice(root, spur)
	require.Equal(t, dijkstra.Path[string]{
		{Node: "A", Dist: 0}, {Node: "B", Dist: 1}, {Node: "E", Dist: 3}, {Node: "D", Dist: 4},
	}, got)
	require.Len(t, root, 2, "root is not modified")

	require.Equal(t, root, splice(root, dijkstra.Path[string]{{Node: "B"}}))
}
