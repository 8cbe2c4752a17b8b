package weight_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/airpaths/weight"
	"github.com/stretchr/testify/assert"
)

func TestConstantWeightFn(t *testing.T) {
	fn := weight.ConstantWeightFn(42)
	assert.Equal(t, int64(42), fn(nil))
	assert.Equal(t, int64(42), fn(rand.New(rand.NewSource(1))))

	assert.Panics(t, func() { weight.ConstantWeightFn(-1) })
}

func TestUniformWeightFn_InRangeAndCoversBounds(t *testing.T) {
	fn := weight.UniformWeightFn(3, 6)
	rng := rand.New(rand.NewSource(7))

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(6))
		seen[w] = true
	}
	// Both ends of the closed interval must be reachable.
	assert.Len(t, seen, 4)
}

func TestUniformWeightFn_DeterministicForSeed(t *testing.T) {
	fn := weight.UniformWeightFn(weight.MinRouteDistance, weight.MaxRouteDistance)
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		assert.Equal(t, fn(a), fn(b))
	}
}

func TestUniformWeightFn_Degenerate(t *testing.T) {
	assert.Equal(t, int64(5), weight.UniformWeightFn(5, 5)(rand.New(rand.NewSource(1))))
	assert.Equal(t, int64(300), weight.DefaultRouteWeightFn(nil))
}

func TestUniformWeightFn_Panics(t *testing.T) {
	assert.Panics(t, func() { weight.UniformWeightFn(-1, 5) })
	assert.Panics(t, func() { weight.UniformWeightFn(10, 5) })
	assert.Panics(t, func() { weight.UniformWeightFn(0, math.MaxInt64) })
}

func TestUniformWeightFn_WidestAllowedRange(t *testing.T) {
	fn := weight.UniformWeightFn(1, math.MaxInt64)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, fn(rng), int64(1))
	}
}

func TestSequenceWeightFn_Cycles(t *testing.T) {
	fn := weight.SequenceWeightFn(5, 2, 10)
	var got []int64
	for i := 0; i < 7; i++ {
		got = append(got, fn(nil))
	}
	assert.Equal(t, []int64{5, 2, 10, 5, 2, 10, 5}, got)

	assert.Panics(t, func() { weight.SequenceWeightFn() })
	assert.Panics(t, func() { weight.SequenceWeightFn(1, -2) })
}
