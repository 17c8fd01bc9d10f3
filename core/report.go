// File: report.go
// Role: the textual save format.
//
// The report is the only byte-stable format produced by the engine:
//
//	# n = 5
//	# m = 5
//	# mean_degree = 2
//
//	# degree distribution:
//	# degree 1 = 2
//	# degree 2 = 2
//	# degree 4 = 1
//	<isolated keys, one per line>
//	<edges "k1 k2 w", one per line>
//
// Header lines start with '#', so converters.ReadText skips them and the
// remaining lines rebuild the same graph.

package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Save renders the graph as a text report.
func (g *Graph[K]) Save() string {
	var b strings.Builder
	_, _ = g.WriteTo(&b)

	return b.String()
}

// WriteTo writes the Save report to w.
func (g *Graph[K]) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	edges := g.Edges()

	fmt.Fprintf(&b, "# n = %d\n", g.Order())
	fmt.Fprintf(&b, "# m = %d\n", len(edges))
	fmt.Fprintf(&b, "# mean_degree = %s\n", FormatNumber(g.MeanDegree()))
	b.WriteString("\n")

	b.WriteString("# degree distribution:\n")
	dist := g.DegreeDistribution()
	for _, d := range g.Degrees() {
		fmt.Fprintf(&b, "# degree %d = %d\n", d, dist[d])
	}

	isolated := g.UnconnectedNodes()
	keys := make([]string, 0, len(isolated))
	for _, n := range isolated {
		keys = append(keys, fmt.Sprint(n.key))
	}
	b.WriteString(strings.Join(keys, "\n"))
	b.WriteString("\n")
	b.WriteString(EdgesString(edges))

	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

// EdgesString renders edges as "k1 k2 w" lines joined by newlines.
func EdgesString[K Key](edges []Edge[K]) string {
	lines := make([]string, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, fmt.Sprintf("%v %v %s", e.From, e.To, FormatNumber(e.Weight)))
	}

	return strings.Join(lines, "\n")
}

// FormatNumber prints f in its shortest decimal form ("2", "2.5", "NaN", "+Inf").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
