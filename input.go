package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/view"
)

// mouseInput paints once per left click and every frame while the right
// button is held.
type mouseInput struct {
	camera view.Camera
}

// world returns the cursor position in world units.
func (m *mouseInput) world() r3.Vec {
	x, y := ebiten.CursorPosition()
	return m.camera.ScreenToWorld(r2.Vec{X: float64(x), Y: float64(y)})
}

// PaintPoint implements heatmap.InputSource.
func (m *mouseInput) PaintPoint() (r3.Vec, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		return m.world(), true
	}
	return r3.Vec{}, false
}
