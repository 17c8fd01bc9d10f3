// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvgraph/core"
)

// WeightFn yields an edge weight. rng may be nil when no seed was configured;
// stochastic generators then fall back to core.DefaultWeight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns core.DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return core.DefaultWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws integers uniformly from [min, max]. Integer weights
// keep generated graphs readable and their Save output exact.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}
		if max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight uses ConstantWeightFn(w).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight uses UniformWeightFn(min, max).
func WithUniformWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
