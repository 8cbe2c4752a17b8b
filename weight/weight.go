// Package weight provides edge-weight generators used while building the
// route graph.
//
// A WeightFn receives the caller's *rand.Rand and returns a non-negative
// integer weight. Generators are injected into ingestion so tests can pass
// fixed or scripted weights instead of random ones.
package weight

import (
	"fmt"
	"math"
	"math/rand"
)

// Route distance bounds used when no explicit generator is configured.
const (
	MinRouteDistance int64 = 300
	MaxRouteDistance int64 = 1000
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultRouteWeightFn draws uniformly from [MinRouteDistance, MaxRouteDistance].
var DefaultRouteWeightFn = UniformWeightFn(MinRouteDistance, MaxRouteDistance)

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0, max < min, or the range holds more than math.MaxInt64 values.
// If rng is nil, yields min so callers without randomness stay deterministic.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	if max-min == math.MaxInt64 {
		panic(fmt.Sprintf("UniformWeightFn: range [%d, %d] too wide", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}

// SequenceWeightFn returns a WeightFn that yields values in order and then
// starts over. It ignores rng and is meant for reproducible fixtures.
// Panics if values is empty or holds a negative entry.
func SequenceWeightFn(values ...int64) WeightFn {
	if len(values) == 0 {
		panic("SequenceWeightFn: at least one value required")
	}
	for _, v := range values {
		if v < 0 {
			panic(fmt.Sprintf("SequenceWeightFn: values must be ≥ 0, got %d", v))
		}
	}
	seq := append([]int64(nil), values...)
	next := 0

	return func(_ *rand.Rand) int64 {
		v := seq[next]
		next = (next + 1) % len(seq)

		return v
	}
}
