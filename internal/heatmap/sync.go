package heatmap

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/mesh"
)

// Renderer consumes a rebuilt mesh. The buffer is reused by the next
// rebuild, so implementations must copy anything they keep.
type Renderer interface {
	Render(buf *mesh.Buffer) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(buf *mesh.Buffer) error

// Render calls f(buf).
func (f RenderFunc) Render(buf *mesh.Buffer) error { return f(buf) }

// RenderSync collapses any number of change events into at most one mesh
// rebuild per Flush.
type RenderSync struct {
	grid     *Grid
	builder  *mesh.Builder
	renderer Renderer
	buf      *mesh.Buffer
	dirty    bool
	rebuilds int
}

// NewRenderSync returns a RenderSync that builds with builder and hands
// results to renderer. Bind a grid with SetGrid before flushing.
func NewRenderSync(builder *mesh.Builder, renderer Renderer) *RenderSync {
	if builder == nil {
		builder = mesh.NewBuilder(nil)
	}
	return &RenderSync{builder: builder, renderer: renderer}
}

// SetGrid binds grid and schedules a full rebuild on the next Flush.
func (s *RenderSync) SetGrid(grid *Grid) {
	s.grid = grid
	s.buf = nil
	s.dirty = grid != nil
}

// GridValueChanged marks the mesh stale.
func (s *RenderSync) GridValueChanged(ChangeEvent) {
	s.dirty = true
}

// Dirty reports whether a rebuild is pending.
func (s *RenderSync) Dirty() bool { return s.dirty }

// Rebuilds returns how many rebuilds have run.
func (s *RenderSync) Rebuilds() int { return s.rebuilds }

// Buffer returns the most recent mesh, or nil before the first rebuild.
func (s *RenderSync) Buffer() *mesh.Buffer { return s.buf }

// Flush rebuilds the mesh if anything changed since the last Flush. Call it
// once per frame after all painting for that frame is done.
func (s *RenderSync) Flush() (bool, error) {
	if !s.dirty {
		return false, nil
	}
	s.dirty = false
	return true, s.Rebuild()
}

// Rebuild rewrites every quad from the grid and renders the result.
func (s *RenderSync) Rebuild() error {
	g := s.grid
	if g == nil {
		return nil
	}
	if s.buf.QuadCount() != g.Len() {
		s.buf = mesh.NewBuffer(g.Len())
	}
	cell := g.CellSize()
	size := r3.Vec{X: cell, Y: cell}
	centre := r3.Scale(0.5, size)
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			uv := r2.Vec{X: float64(g.Value(x, y)) / ValueMax}
			s.builder.WriteQuad(s.buf, x*g.Height()+y, mesh.Quad{
				Pos:  r3.Add(g.WorldPosition(x, y), centre),
				Size: size,
				UV00: uv,
				UV11: uv,
			})
		}
	}
	s.rebuilds++
	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.Render(s.buf); err != nil {
		return fmt.Errorf("rendering heat mesh: %w", err)
	}
	return nil
}
