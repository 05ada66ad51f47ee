// Package view maps world coordinates (Y up) onto screen coordinates (Y down).
package view

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Camera places world point Origin at the bottom-left of a screen that is
// ScreenHeight units tall, with Scale screen units per world unit on each axis.
type Camera struct {
	Origin       r3.Vec
	Scale        r2.Vec
	ScreenHeight float64
}

// Fit returns a camera that shows a worldW x worldH region starting at origin
// on a screenW x screenH screen, scaling each axis independently.
func Fit(origin r3.Vec, worldW, worldH, screenW, screenH float64) Camera {
	return Camera{
		Origin:       origin,
		Scale:        r2.Vec{X: screenW / worldW, Y: screenH / worldH},
		ScreenHeight: screenH,
	}
}

// WorldToScreen projects p; Z is ignored.
func (c Camera) WorldToScreen(p r3.Vec) r2.Vec {
	return r2.Vec{
		X: (p.X - c.Origin.X) * c.Scale.X,
		Y: c.ScreenHeight - (p.Y-c.Origin.Y)*c.Scale.Y,
	}
}

// ScreenToWorld inverts WorldToScreen on the Z=Origin.Z plane.
func (c Camera) ScreenToWorld(s r2.Vec) r3.Vec {
	return r3.Vec{
		X: c.Origin.X + s.X/c.Scale.X,
		Y: c.Origin.Y + (c.ScreenHeight-s.Y)/c.Scale.Y,
		Z: c.Origin.Z,
	}
}
