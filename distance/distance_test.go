package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgraph/converters"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/distance"
)

func scenario(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := converters.ParseText("1 2\n2 5\n5 3\n4 5\n1 5\n")
	require.NoError(t, err)

	return g
}

func TestNilGraph(t *testing.T) {
	_, err := distance.Distances[string](nil, "a")
	assert.ErrorIs(t, err, distance.ErrGraphNil)
	m, err := distance.MeanDistance[string](nil)
	assert.ErrorIs(t, err, distance.ErrGraphNil)
	assert.True(t, math.IsNaN(m))
	_, err = distance.Diameter[string](nil)
	assert.ErrorIs(t, err, distance.ErrGraphNil)
}

func TestDistances(t *testing.T) {
	g := scenario(t)

	ds, err := distance.Distances(g, "1")
	require.NoError(t, err)
	// discovery order 2, 5, 3, 4
	assert.Equal(t, []int{1, 1, 2, 2}, ds)

	ds, err = distance.Distances(g, "4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 2}, ds)

	ds, err = distance.Distances(g, "missing")
	require.NoError(t, err)
	assert.Equal(t, []int{}, ds)

	g.AddNode("9")
	ds, err = distance.Distances(g, "9")
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestMeanDistance(t *testing.T) {
	g := scenario(t)
	m, err := distance.MeanDistance(g)
	require.NoError(t, err)

	// per source: 1→6, 2→6, 5→4, 3→7, 4→7 over 20 ordered pairs
	assert.InDelta(t, 30.0/20.0, m, 1e-12)

	// an isolated node adds no pairs
	g.AddNode("9")
	m2, err := distance.MeanDistance(g)
	require.NoError(t, err)
	assert.Equal(t, m, m2)
}

func TestMeanDistance_Degenerate(t *testing.T) {
	m, err := distance.MeanDistance(core.NewGraph[int]())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m), "empty graph")

	g := core.NewGraph[int]()
	g.AddNode(1)
	g.AddNode(2)
	m, err = distance.MeanDistance(g)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m), "no edges")
}

func TestEccentricityAndDiameter(t *testing.T) {
	g := scenario(t)

	e, err := distance.Eccentricity(g, "5")
	require.NoError(t, err)
	assert.Equal(t, 1, e)

	e, err = distance.Eccentricity(g, "3")
	require.NoError(t, err)
	assert.Equal(t, 2, e)

	d, err := distance.Diameter(g)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	chain := core.NewGraph[int]()
	for i := 0; i < 10; i++ {
		chain.AddNode(i)
		if i > 0 {
			chain.AddEdge(i-1, i)
		}
	}
	d, err = distance.Diameter(chain)
	require.NoError(t, err)
	assert.Equal(t, 9, d)
}
