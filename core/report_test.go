package core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgraph/core"
)

func TestSave_Scenario(t *testing.T) {
	g := buildScenario()

	want := "# n = 5\n" +
		"# m = 5\n" +
		"# mean_degree = 2\n" +
		"\n" +
		"# degree distribution:\n" +
		"# degree 1 = 2\n" +
		"# degree 2 = 2\n" +
		"# degree 4 = 1\n" +
		"\n" +
		"1 2 1\n" +
		"1 5 1\n" +
		"2 5 1\n" +
		"3 5 1\n" +
		"4 5 1"
	assert.Equal(t, want, g.Save())
}

func TestSave_IsolatedAndFractional(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("x")
	g.AddNode("y")
	g.AddEdge("b", "a", core.WithWeight(2.5))

	want := "# n = 4\n" +
		"# m = 1\n" +
		"# mean_degree = 0.5\n" +
		"\n" +
		"# degree distribution:\n" +
		"# degree 0 = 2\n" +
		"# degree 1 = 2\n" +
		"x\n" +
		"y\n" +
		"a b 2.5"
	assert.Equal(t, want, g.Save())
}

func TestSave_Empty(t *testing.T) {
	g := core.NewGraph[int]()

	want := "# n = 0\n# m = 0\n# mean_degree = NaN\n\n# degree distribution:\n\n"
	assert.Equal(t, want, g.Save())
}

func TestWriteTo(t *testing.T) {
	g := buildScenario()
	var buf bytes.Buffer

	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, g.Save(), buf.String())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "2", core.FormatNumber(2))
	assert.Equal(t, "2.4", core.FormatNumber(2.4))
	assert.Equal(t, "-0.125", core.FormatNumber(-0.125))
}
