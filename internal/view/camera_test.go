package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCameraFlipsY(t *testing.T) {
	t.Parallel()

	c := Fit(r3.Vec{}, 320, 320, 640, 640)
	assert.Equal(t, r2.Vec{X: 0, Y: 640}, c.WorldToScreen(r3.Vec{}))
	assert.Equal(t, r2.Vec{X: 640, Y: 0}, c.WorldToScreen(r3.Vec{X: 320, Y: 320}))
	assert.Equal(t, r2.Vec{X: 20, Y: 620}, c.WorldToScreen(r3.Vec{X: 10, Y: 10}))
}

func TestCameraRoundTrip(t *testing.T) {
	t.Parallel()

	c := Fit(r3.Vec{X: -40, Y: 12, Z: 3}, 320, 160, 80, 20)
	for _, p := range []r3.Vec{{X: -40, Y: 12, Z: 3}, {X: 0, Y: 100, Z: 3}, {X: 279.5, Y: 171.25, Z: 3}} {
		got := c.ScreenToWorld(c.WorldToScreen(p))
		assert.InDelta(t, p.X, got.X, 1e-9)
		assert.InDelta(t, p.Y, got.Y, 1e-9)
		assert.Equal(t, p.Z, got.Z)
	}
}
