package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgraph/converters"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/dijkstra"
	"github.com/katalvlaran/lvgraph/matrix"
)

func scenario(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := converters.ParseText("1 2\n2 5\n5 3\n4 5\n1 5\n")
	require.NoError(t, err)

	return g
}

func TestNilGraph(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix[string](nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.NewIncidenceMatrix[string](nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.AdjacencyList[string](nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, _, err = matrix.AllPairs[string](nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestAdjacencyMatrix_Scenario(t *testing.T) {
	m, err := matrix.NewAdjacencyMatrix(scenario(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, m.Keys)
	assert.Equal(t, [][]float64{
		{0, 1, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 0, 1},
		{1, 1, 1, 1, 0},
	}, m.Data)
	assert.True(t, m.IsSymmetric())
	assert.Equal(t, 5, m.Len())

	i, ok := m.Index("5")
	assert.True(t, ok)
	assert.Equal(t, 4, i)
	_, ok = m.Index("6")
	assert.False(t, ok)
}

func TestAdjacencyMatrix_Accessors(t *testing.T) {
	g := core.NewGraph[int]()
	for _, k := range []int{30, 10, 20} {
		g.AddNode(k)
	}
	g.AddEdge(30, 10, core.WithWeight(2.5))
	g.AddEdge(20, 20, core.WithWeight(4))

	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, m.Keys, "numeric, not store, order")

	v, err := m.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v, "self-loop on the diagonal")

	_, err = m.At(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	w, err := m.Weight(10, 30)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
	_, err = m.Weight(10, 99)
	assert.ErrorIs(t, err, matrix.ErrUnknownVertex)

	sym := m.SymDense()
	require.NotNil(t, sym)
	assert.Equal(t, 3, sym.SymmetricDim())
	assert.Equal(t, 2.5, sym.At(0, 2))
	assert.Equal(t, 2.5, sym.At(2, 0))

	s := m.String()
	assert.Contains(t, s, "keys: [10 20 30]")
	assert.Contains(t, s, "2.5")
}

func TestAdjacencyMatrix_SnapshotAndSymmetry(t *testing.T) {
	g := scenario(t)
	m, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	g.AddEdge("3", "4", core.WithWeight(9))
	w, _ := m.Weight("3", "4")
	assert.Zero(t, w, "later mutations are not reflected")

	// asymmetric tampering is detected
	m.Data[0][1] = 7
	assert.False(t, m.IsSymmetric())
}

func TestAdjacencyMatrix_Empty(t *testing.T) {
	m, err := matrix.NewAdjacencyMatrix(core.NewGraph[string]())
	require.NoError(t, err)
	assert.Empty(t, m.Keys)
	assert.Nil(t, m.SymDense())
	assert.Equal(t, "[]", m.String())
	assert.True(t, m.IsSymmetric())
}

func TestAdjacencyList(t *testing.T) {
	g := scenario(t)
	g.AddNode("6")

	rows, err := matrix.AdjacencyList(g)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, matrix.Row[string]{Key: "5", Neighbors: []string{"2", "3", "4", "1"}}, rows[2])

	want := "1: [ 2, 5 ]\n" +
		"2: [ 1, 5 ]\n" +
		"5: [ 2, 3, 4, 1 ]\n" +
		"3: [ 5 ]\n" +
		"4: [ 5 ]\n" +
		"6: [  ]\n"
	assert.Equal(t, want, matrix.FormatAdjacencyList(rows))
}

func TestIncidenceMatrix(t *testing.T) {
	g := scenario(t)
	g.AddEdge("3", "3", core.WithWeight(1))

	m, err := matrix.NewIncidenceMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, 5, m.VertexCount())
	assert.Equal(t, 6, m.EdgeCount())

	// each column has two endpoints, the self-loop column one
	for j := 0; j < m.EdgeCount(); j++ {
		sum := 0
		for i := range m.Data {
			sum += m.Data[i][j]
		}
		from, to, err := m.EdgeEndpoints(j)
		require.NoError(t, err)
		if from == to {
			assert.Equal(t, 1, sum)
		} else {
			assert.Equal(t, 2, sum)
		}
	}

	row, err := m.VertexIncidence("5")
	require.NoError(t, err)
	total := 0
	for _, v := range row {
		total += v
	}
	assert.Equal(t, g.Degree("5"), total)

	_, err = m.VertexIncidence("nope")
	assert.ErrorIs(t, err, matrix.ErrUnknownVertex)
	_, _, err = m.EdgeEndpoints(6)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFloydWarshall_NonSquare(t *testing.T) {
	err := matrix.FloydWarshall(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAllPairs_MatchesDijkstra(t *testing.T) {
	g, err := converters.ParseText("A B 4\nA C 1\nC B 2\nB D 1\nC D 5\nE F 0\nF G 3\nH\n")
	require.NoError(t, err)

	keys, d, err := matrix.AllPairs(g)
	require.NoError(t, err)
	require.Len(t, keys, g.Order())

	for i, src := range keys {
		res, err := dijkstra.Dijkstra(g, src, "")
		require.NoError(t, err)
		for j, dst := range keys {
			assert.Equal(t, res.Cost(dst), d.At(i, j), "%s→%s", src, dst)
		}
	}

	// zero-weight edges are traversable
	e, _ := indexOf(keys, "E")
	gi, _ := indexOf(keys, "G")
	assert.Equal(t, 3.0, d.At(e, gi))
	h, _ := indexOf(keys, "H")
	assert.True(t, math.IsInf(d.At(h, e), 1))
}

func TestAllPairs_EdgeCases(t *testing.T) {
	keys, d, err := matrix.AllPairs(core.NewGraph[int]())
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Nil(t, d)

	g := core.NewGraph[int]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(1, 2, core.WithWeight(-1))
	_, _, err = matrix.AllPairs(g)
	assert.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

func indexOf(keys []string, k string) (int, bool) {
	for i, v := range keys {
		if v == k {
			return i, true
		}
	}

	return -1, false
}
