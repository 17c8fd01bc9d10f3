package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgraph/bfs"
	"github.com/katalvlaran/lvgraph/core"
)

// scenario builds 1–2, 2–5, 5–3, 4–5, 1–5 with nodes stored as 1,2,5,3,4.
func scenario() *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, p := range [][2]string{{"1", "2"}, {"2", "5"}, {"5", "3"}, {"4", "5"}, {"1", "5"}} {
		g.AddNode(p[0])
		g.AddNode(p[1])
		g.AddEdge(p[0], p[1])
	}

	return g
}

func TestErrors(t *testing.T) {
	_, err := bfs.Explore[string](nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Search(core.NewGraph[string](), "x")
	assert.ErrorIs(t, err, bfs.ErrEmptyGraph)

	_, err = bfs.Explore(scenario(), bfs.WithStart("9"))
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, _, err = bfs.Path(scenario(), "9", "1")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestSearch_VisitOrderTruncatedAtTarget(t *testing.T) {
	res, err := bfs.Search(scenario(), "3")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, "1", res.Root)
	assert.Equal(t, []string{"1", "2", "5", "3"}, res.Order)
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "5": 1, "3": 2, "4": 2}, res.Depth)
	// 4 was enqueued by 5 but never dequeued: still a tree vertex
	assert.Equal(t, 5, res.Tree.Order())
	assert.Equal(t, 4, res.Tree.Size())
	require.True(t, res.Tree.HasNode("4"))
	n4, _ := res.Tree.Node("4")
	d, ok := n4.Extra(core.ExtraDepth)
	require.True(t, ok)
	assert.Equal(t, "2", d)
	assert.True(t, res.Tree.HasEdge("5", "4"))
}

func TestSearch_TreeAgreesWithDepthAndParent(t *testing.T) {
	res, err := bfs.Search(scenario(), "3")
	require.NoError(t, err)

	assert.Equal(t, len(res.Depth), res.Tree.Order())
	assert.Equal(t, len(res.Parent), res.Tree.Size())
	for child, parent := range res.Parent {
		assert.True(t, res.Tree.HasEdge(parent, child), "%s-%s", parent, child)
	}
}

func TestSearch_TreeDepthExtras(t *testing.T) {
	res, err := bfs.Search(scenario(), "3")
	require.NoError(t, err)

	want := map[string]string{"1": "0", "2": "1", "5": "1", "3": "2"}
	for k, d := range want {
		n, ok := res.Tree.Node(k)
		require.True(t, ok, k)
		v, ok := n.Extra(core.ExtraDepth)
		assert.True(t, ok)
		assert.Equal(t, d, v, "depth of %s", k)
	}
	assert.True(t, res.Tree.HasEdge("5", "3"))
	assert.Equal(t, 1.0, res.Tree.Weight("1", "5"))
}

func TestSearch_Unreachable(t *testing.T) {
	g := scenario()
	g.AddNode("7")

	res, err := bfs.Search(g, "7")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []string{}, res.Order)
	assert.Equal(t, 5, res.Tree.Order(), "tree keeps the reachable part")

	res, err = bfs.Search(g, "absent")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Order)
}

func TestSearch_TargetIsRoot(t *testing.T) {
	res, err := bfs.Search(scenario(), "1")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"1"}, res.Order)
	assert.Equal(t, 1, res.Tree.Order())
}

func TestExplore_FullAndHook(t *testing.T) {
	var seen []string
	var depths []int
	res, err := bfs.Explore(scenario(), bfs.WithStart("4"), bfs.WithOnVisit(func(k string, d int) {
		seen = append(seen, k)
		depths = append(depths, d)
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"4", "5", "2", "3", "1"}, res.Order)
	assert.Equal(t, res.Order, seen)
	assert.Equal(t, []int{0, 1, 2, 2, 2}, depths)
	assert.False(t, res.Found)
	assert.Equal(t, "5", res.Parent["1"])
	_, hasParent := res.Parent["4"]
	assert.False(t, hasParent)
}

func TestPath(t *testing.T) {
	path, tree, err := bfs.Path(scenario(), "1", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5", "3"}, path)
	assert.Equal(t, 4, tree.Size())

	path, _, err = bfs.Path(scenario(), "2", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, path)

	g := scenario()
	g.AddNode("x")
	path, _, err = bfs.Path(g, "1", "x")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestPathTo_Undiscovered(t *testing.T) {
	res, err := bfs.Explore(scenario())
	require.NoError(t, err)

	_, err = res.PathTo("zzz")
	assert.Error(t, err)

	p, err := res.PathTo("4")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5", "4"}, p)
}

func TestIntegerKeys(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 5; i++ {
		g.AddNode(i)
	}
	for i := 0; i < 4; i++ {
		g.AddEdge(i, i+1)
	}

	res, err := bfs.Explore(g, bfs.WithStart(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 0, 4}, res.Order)
	assert.Equal(t, 2, res.Depth[4])
}
