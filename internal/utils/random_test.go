package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSource_IntRangeBounds(t *testing.T) {
	src := NewRandomSource(42)
	for i := 0; i < 1000; i++ {
		v := src.IntRange(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
	assert.Equal(t, 5, src.IntRange(5, 5))
	assert.Equal(t, 9, src.IntRange(9, 2))
}

func TestRandomSource_Float64Bounds(t *testing.T) {
	src := NewRandomSource(7)
	for i := 0; i < 1000; i++ {
		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestRandomSource_SeedIsDeterministic(t *testing.T) {
	a, b := NewRandomSource(1234), NewRandomSource(1234)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestFixedSource(t *testing.T) {
	f := &FixedSource{Floats: []float64{0.1, 0.9}, Ints: []int{4, 100, -3}}

	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 0.9, f.Float64())
	assert.Equal(t, 0.9, f.Float64(), "last value repeats")

	assert.Equal(t, 4, f.IntRange(1, 10))
	assert.Equal(t, 10, f.IntRange(1, 10), "clamped to max")
	assert.Equal(t, 1, f.IntRange(1, 10), "clamped to min")
}
