package mesh

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNormalizeDegrees(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-90, 270},
		{-270, 90},
		{-360, 0},
		{-721, 359},
		{89.6, 90},
		{0.4, 0},
		{0.5, 0},  // ties to even
		{1.5, 2},  // ties to even
		{-0.5, 0}, // ties to even, no negative zero slot
		{719.7, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDegrees(tc.in), "NormalizeDegrees(%v)", tc.in)
	}
}

func TestRotationCacheMatchesDirect(t *testing.T) {
	t.Parallel()

	c := NewRotationCache()
	for deg := -720; deg <= 720; deg += 7 {
		want := RotationFor(NormalizeDegrees(float64(deg)))
		assert.Equal(t, want, c.At(float64(deg)), "degree %d", deg)
	}
	for i := 0; i < rotationSteps; i++ {
		assert.Equal(t, RotationFor(i), c.At(float64(i)))
	}
}

func TestRotationCacheQuarterTurns(t *testing.T) {
	t.Parallel()

	c := NewRotationCache()
	v := r3.Vec{X: 1}
	cases := []struct {
		deg  float64
		want r3.Vec
	}{
		{0, r3.Vec{X: 1}},
		{90, r3.Vec{Y: 1}},
		{180, r3.Vec{X: -1}},
		{270, r3.Vec{Y: -1}},
		{-90, r3.Vec{Y: -1}},
	}
	for _, tc := range cases {
		got := c.At(tc.deg).Rotate(v)
		assert.InDelta(t, tc.want.X, got.X, 1e-12, "x at %v", tc.deg)
		assert.InDelta(t, tc.want.Y, got.Y, 1e-12, "y at %v", tc.deg)
		assert.InDelta(t, 0, got.Z, 1e-12, "z at %v", tc.deg)
		assert.InDelta(t, 1, r3.Norm(got), 1e-12, "length at %v", tc.deg)
	}
}

func TestRotationCacheConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	c := NewRotationCache()
	want := RotationFor(45)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := c.At(45)
			if got != want {
				t.Errorf("At(45) = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
	assert.InDelta(t, math.Sqrt2/2, c.At(45).Rotate(r3.Vec{X: 1}).Y, 1e-12)
}
