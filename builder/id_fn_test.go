// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvgraph/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0"},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123"},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A"},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z"},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z"},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA"},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ"},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA"},
		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("n"), 7, "n7"},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.input); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}

	assertPanics(t, func() { builder.SymbolIDFn(26) }, "SymbolIDFn(26)")
	assertPanics(t, func() { builder.ExcelColumnIDFn(-1) }, "ExcelColumnIDFn(-1)")
	assertPanics(t, func() { builder.WithIDScheme(nil) }, "WithIDScheme(nil)")
	assertPanics(t, func() { builder.WithRand(nil) }, "WithRand(nil)")
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	if w := builder.DefaultWeightFn(nil); w != 1 {
		t.Errorf("DefaultWeightFn = %v, want 1", w)
	}
	if w := builder.ConstantWeightFn(3)(nil); w != 3 {
		t.Errorf("ConstantWeightFn(3) = %v", w)
	}
	if w := builder.UniformWeightFn(2, 8)(nil); w != 1 {
		t.Errorf("UniformWeightFn without rng = %v, want the default 1", w)
	}

	assertPanics(t, func() { builder.ConstantWeightFn(-1) }, "ConstantWeightFn(-1)")
	assertPanics(t, func() { builder.UniformWeightFn(5, 2) }, "UniformWeightFn(5,2)")
	assertPanics(t, func() { builder.WithWeightFn(nil) }, "WithWeightFn(nil)")
}
