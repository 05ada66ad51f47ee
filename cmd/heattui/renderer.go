package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"HMV/internal/mesh"
	"HMV/internal/palette"
	"HMV/internal/view"
)

// termRenderer rasterizes the heat mesh onto a grid of terminal cells and
// keeps the sampled gradient coordinate of each one.
type termRenderer struct {
	camera   view.Camera
	gradient palette.Gradient
	cols     int
	rows     int
	u        []float64
}

func newTermRenderer(gradient palette.Gradient) *termRenderer {
	return &termRenderer{gradient: gradient}
}

// resize sets the terminal area the mesh is drawn into.
func (r *termRenderer) resize(camera view.Camera, cols, rows int) {
	r.camera = camera
	r.cols, r.rows = max(cols, 0), max(rows, 0)
	r.u = make([]float64, r.cols*r.rows)
	r.reset()
}

func (r *termRenderer) reset() {
	for i := range r.u {
		r.u[i] = -1
	}
}

// Render implements heatmap.Renderer.
func (r *termRenderer) Render(buf *mesh.Buffer) error {
	r.reset()
	if buf == nil {
		return nil
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	rasterize(buf, r.camera, r.cols, r.rows, func(col, row int, u float64) {
		r.u[row*r.cols+col] = u
	})
	return nil
}

// draw copies the rasterized cells to screen; uncovered cells are left alone.
func (r *termRenderer) draw(screen tcell.Screen) {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			u := r.u[row*r.cols+col]
			if u < 0 {
				continue
			}
			c := r.gradient.RGBA(u)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// rasterize calls plot once for every terminal cell whose centre lies inside
// one of a quad's two triangles. u is the gradient coordinate of the quad's
// first vertex; heat quads carry one u on all four corners.
func rasterize(buf *mesh.Buffer, camera view.Camera, cols, rows int, plot func(col, row int, u float64)) {
	const indicesPerQuad = 6
	var pts [indicesPerQuad]r2.Vec
	for q := 0; q+indicesPerQuad <= len(buf.Triangles); q += indicesPerQuad {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for i := range pts {
			pts[i] = camera.WorldToScreen(buf.Vertices[buf.Triangles[q+i]])
			minX, maxX = math.Min(minX, pts[i].X), math.Max(maxX, pts[i].X)
			minY, maxY = math.Min(minY, pts[i].Y), math.Max(maxY, pts[i].Y)
		}
		u := buf.UVs[buf.Triangles[q]].X

		minCol := max(int(math.Floor(minX)), 0)
		maxCol := min(int(math.Ceil(maxX)), cols-1)
		minRow := max(int(math.Floor(minY)), 0)
		maxRow := min(int(math.Ceil(maxY)), rows-1)
		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				p := r2.Vec{X: float64(col) + 0.5, Y: float64(row) + 0.5}
				if inTriangle(p, pts[0], pts[1], pts[2]) || inTriangle(p, pts[3], pts[4], pts[5]) {
					plot(col, row, u)
				}
			}
		}
	}
}

// edgeEpsilon absorbs rotation rounding in vertex positions.
const edgeEpsilon = 1e-9

// inTriangle accepts points on an edge so cells on a shared diagonal are
// covered by at least one triangle.
func inTriangle(p, a, b, c r2.Vec) bool {
	if edge(a, b, c) == 0 {
		return false
	}
	d0 := edge(a, b, p)
	d1 := edge(b, c, p)
	d2 := edge(c, a, p)
	neg := d0 < -edgeEpsilon || d1 < -edgeEpsilon || d2 < -edgeEpsilon
	pos := d0 > edgeEpsilon || d1 > edgeEpsilon || d2 > edgeEpsilon
	return !(neg && pos)
}

func edge(a, b, p r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(p, a))
}
