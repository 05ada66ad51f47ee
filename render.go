package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/mesh"
	"HMV/internal/palette"
	"HMV/internal/view"
)

// meshRenderer turns a rebuilt heat mesh into screen-space triangles sampled
// from a 1D gradient texture.
type meshRenderer struct {
	camera   view.Camera
	gradient palette.Gradient
	texture  *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint32
}

// newMeshRenderer returns a renderer projecting through camera.
func newMeshRenderer(camera view.Camera, gradient palette.Gradient) *meshRenderer {
	return &meshRenderer{camera: camera, gradient: gradient}
}

// Render implements heatmap.Renderer.
func (r *meshRenderer) Render(buf *mesh.Buffer) error {
	if buf == nil {
		r.vertices, r.indices = r.vertices[:0], r.indices[:0]
		return nil
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	if cap(r.vertices) < len(buf.Vertices) {
		r.vertices = make([]ebiten.Vertex, len(buf.Vertices))
	}
	r.vertices = r.vertices[:len(buf.Vertices)]
	for i, v := range buf.Vertices {
		s := r.camera.WorldToScreen(v)
		uv := buf.UVs[i]
		r.vertices[i] = ebiten.Vertex{
			DstX:   float32(s.X),
			DstY:   float32(s.Y),
			SrcX:   float32(uv.X*(gradientTexels-1) + 0.5),
			SrcY:   float32(uv.Y + 0.5),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	if cap(r.indices) < len(buf.Triangles) {
		r.indices = make([]uint32, len(buf.Triangles))
	}
	r.indices = r.indices[:len(buf.Triangles)]
	for i, idx := range buf.Triangles {
		r.indices[i] = uint32(idx)
	}
	return nil
}

// draw paints the last rendered mesh.
func (r *meshRenderer) draw(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	if r.texture == nil {
		r.texture = ebiten.NewImage(gradientTexels, 1)
		r.texture.WritePixels(r.gradient.Pixels(gradientTexels))
	}
	screen.DrawTriangles32(r.vertices, r.indices, r.texture, nil)
}

// Draw renders the heat mesh and the optional grid and debug overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColour)
	g.renderer.draw(screen)

	if g.showGrid {
		g.drawGridLines(screen)
	}
	if !*debugFlag {
		return
	}
	g.drawBrushEdge(screen)
	g.drawLabels(screen)

	cx, cy := g.overlay.Grid().WorldToGrid(g.mouse.world())
	rs := g.overlay.Sync()
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nRebuilds: %d  Tick: %.2f ms\nCell (%d,%d) = %d\nAuto paint: %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(), rs.Rebuilds(), g.lastTickDuration.Seconds()*1000,
		cx, cy, g.overlay.Grid().Value(cx, cy), g.wander.Enabled())
	ebitenutil.DebugPrint(screen, msg)
}

// drawGridLines strokes every cell boundary, including the far edges.
func (g *Game) drawGridLines(screen *ebiten.Image) {
	grid := g.overlay.Grid()
	w, h := grid.Width(), grid.Height()
	for x := 0; x <= w; x++ {
		g.strokeWorld(screen, grid.WorldPosition(x, 0), grid.WorldPosition(x, h))
	}
	for y := 0; y <= h; y++ {
		g.strokeWorld(screen, grid.WorldPosition(0, y), grid.WorldPosition(w, y))
	}
}

// strokeWorld draws a world-space segment in screen space.
func (g *Game) strokeWorld(screen *ebiten.Image, a, b r3.Vec) {
	sa, sb := g.camera.WorldToScreen(a), g.camera.WorldToScreen(b)
	vector.StrokeLine(screen, float32(sa.X), float32(sa.Y), float32(sb.X), float32(sb.Y), gridLineWidth, gridLineColour, false)
}

// drawBrushEdge strokes the border of every outer-ring cell a paint at the
// cursor would touch.
func (g *Game) drawBrushEdge(screen *ebiten.Image) {
	grid := g.overlay.Grid()
	cx, cy := grid.WorldToGrid(g.mouse.world())
	cell := grid.CellSize()
	for _, o := range g.edge {
		x, y := cx+o.DX, cy+o.DY
		if !grid.InBounds(x, y) {
			continue
		}
		// top-left on screen is the cell's upper world corner
		s := g.camera.WorldToScreen(grid.WorldPosition(x, y+1))
		vector.StrokeRect(screen, float32(s.X), float32(s.Y),
			float32(cell*g.camera.Scale.X), float32(cell*g.camera.Scale.Y), gridLineWidth, brushEdgeColour, false)
	}
}

// drawLabels prints each cell's value once cells are large enough to read.
func (g *Game) drawLabels(screen *ebiten.Image) {
	grid := g.overlay.Grid()
	if grid.CellSize()*g.camera.Scale.X < labelMinCellPx || grid.CellSize()*g.camera.Scale.Y < labelMinCellPx {
		return
	}
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			s := g.camera.WorldToScreen(grid.WorldPosition(x, y+1))
			ebitenutil.DebugPrintAt(screen, g.labels.text(x, y), int(s.X)+2, int(s.Y)+2)
		}
	}
}
