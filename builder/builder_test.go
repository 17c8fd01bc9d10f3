// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgraph/builder"
	"github.com/katalvlaran/lvgraph/core"
)

// TestBuilders_Functional runs table-driven topology checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph[string])
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				for i := 0; i < 3; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint(i+1)
					if !g.HasEdge(from, to) || g.Weight(from, to) != core.DefaultWeight {
						t.Errorf("Path: missing or wrong weight for edge %s–%s", from, to)
					}
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				if !g.HasEdge("4", "0") {
					t.Error("Cycle: ring not closed")
				}
				if d := g.DegreeDistribution(); d[2] != 5 {
					t.Errorf("Cycle: degree distribution = %v, want all 2", d)
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				if got := g.Degree("0"); got != 4 {
					t.Errorf("Star: center degree = %d, want 4", got)
				}
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				if got := g.Degree("0"); got != 4 {
					t.Errorf("Wheel: center degree = %d, want 4", got)
				}
				for _, k := range []string{"1", "2", "3", "4"} {
					if got := g.Degree(k); got != 3 {
						t.Errorf("Wheel: rim %s degree = %d, want 3", k, got)
					}
				}
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				if !g.HasEdge("0,2", "1,2") || g.HasEdge("0,2", "1,1") {
					t.Error("Grid: wrong 4-neighborhood")
				}
				if first, _ := g.First(); first.Key() != "0,0" {
					t.Errorf("Grid: first vertex = %s, want 0,0", first.Key())
				}
			},
		},
		{name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10},
		{name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.Order(); got != tc.wantV {
				t.Errorf("vertices = %d, want %d", got, tc.wantV)
			}
			if got := g.Size(); got != tc.wantE {
				t.Errorf("edges = %d, want %d", got, tc.wantE)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(5,1.5)", builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(5,0.5) unseeded", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		if _, err := builder.BuildGraph(nil, tc.ctor); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	// a path over 0..2 plus a star over 0..4 share vertices 0, 1, 2
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(5))
	if err != nil {
		t.Fatal(err)
	}
	if g.Order() != 5 {
		t.Errorf("vertices = %d, want 5", g.Order())
	}
	// 0–1 exists in both and collapses to one edge
	if g.Size() != 5 {
		t.Errorf("edges = %d, want 5", g.Size())
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) string {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 9)},
			builder.RandomSparse(12, 0.3),
		)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range g.Edges() {
			if e.Weight < 1 || e.Weight > 9 || e.Weight != float64(int(e.Weight)) {
				t.Errorf("weight %v outside integer range [1,9]", e.Weight)
			}
		}
		return g.Save()
	}

	if a, b := build(42), build(42); a != b {
		t.Errorf("same seed produced different graphs:\n%s\n---\n%s", a, b)
	}
}

func TestIDSchemes(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Keys(); fmt.Sprint(got) != "[A B C]" {
		t.Errorf("keys = %v, want [A B C]", got)
	}

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("v"), builder.WithConstantWeight(2.5)}, builder.Path(2))
	if err != nil {
		t.Fatal(err)
	}
	if w := g.Weight("v0", "v1"); w != 2.5 {
		t.Errorf("weight = %v, want 2.5", w)
	}
}
