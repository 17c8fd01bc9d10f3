package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgraph/core"
)

var (
	// ErrBadLine is returned for a line with more than three fields.
	ErrBadLine = errors.New("converters: malformed line")

	// ErrBadWeight is returned when the third field is not a number.
	ErrBadWeight = errors.New("converters: invalid weight")
)

// commentMark opens a comment line when it stands alone as the first field.
const commentMark = "#"

// ReadText builds a string-keyed graph from r. Each non-blank line is one of
//
//	key            isolated node
//	k1 k2          edge of weight core.DefaultWeight
//	k1 k2 weight   weighted edge
//
// Fields are separated by whitespace. Blank lines and comment lines, whose
// first field is a lone '#' (as in the Save header), are skipped. A key may
// start with '#' ("#a" is a node) but may not be '#' itself. Nodes are
// registered in order of first appearance, left field before right. Errors
// are wrapped with the 1-based line number.
func ReadText(r io.Reader) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lineNo := 1; sc.Scan(); lineNo++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == commentMark {
			continue
		}
		if err := applyLine(g, fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("converters: read: %w", err)
	}

	return g, nil
}

// ParseText is ReadText over a string.
func ParseText(s string) (*core.Graph[string], error) {
	return ReadText(strings.NewReader(s))
}

// applyLine adds the node or edge described by one line's fields.
func applyLine(g *core.Graph[string], fields []string) error {
	switch len(fields) {
	case 1:
		g.AddNode(fields[0])
	case 2, 3:
		w := core.DefaultWeight
		if len(fields) == 3 {
			var err error
			if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return fmt.Errorf("%w %q", ErrBadWeight, fields[2])
			}
		}
		g.AddNode(fields[0])
		g.AddNode(fields[1])
		g.AddEdge(fields[0], fields[1], core.WithWeight(w))
	default:
		return fmt.Errorf("%w: %d fields", ErrBadLine, len(fields))
	}

	return nil
}
