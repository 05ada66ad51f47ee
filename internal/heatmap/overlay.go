package heatmap

import (
	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/mesh"
)

// InputSource yields at most one world-space paint point per frame.
type InputSource interface {
	PaintPoint() (r3.Vec, bool)
}

// OverlayConfig fixes the grid layout and the paint shape.
type OverlayConfig struct {
	Width, Height int
	CellSize      float64
	Origin        r3.Vec
	Paint         PaintParams
}

// Overlay wires a grid, its paint engine and the render coalescer into the
// per-frame sequence: poll input, paint, flush once.
type Overlay struct {
	grid   *Grid
	engine *Engine
	sync   *RenderSync
	paint  PaintParams
}

// NewOverlay builds the grid for cfg with the render coalescer subscribed
// first, followed by extra subscribers.
func NewOverlay(cfg OverlayConfig, renderer Renderer, rotations *mesh.RotationCache, extra ...Subscriber) (*Overlay, error) {
	if err := cfg.Paint.Validate(); err != nil {
		return nil, err
	}
	rs := NewRenderSync(mesh.NewBuilder(rotations), renderer)
	subs := append([]Subscriber{rs}, extra...)
	grid, err := NewGrid(cfg.Width, cfg.Height, cfg.CellSize, cfg.Origin, subs...)
	if err != nil {
		return nil, err
	}
	rs.SetGrid(grid)
	return &Overlay{
		grid:   grid,
		engine: NewEngine(grid),
		sync:   rs,
		paint:  cfg.Paint,
	}, nil
}

// Grid returns the overlay's grid.
func (o *Overlay) Grid() *Grid { return o.grid }

// Engine returns the paint engine bound to Grid.
func (o *Overlay) Engine() *Engine { return o.engine }

// Sync returns the render coalescer subscribed to Grid.
func (o *Overlay) Sync() *RenderSync { return o.sync }

// PaintParams returns the paint shape used by Tick.
func (o *Overlay) PaintParams() PaintParams { return o.paint }

// Tick runs one frame: a paint for the input point, if any, followed by at
// most one rebuild. A nil source only flushes.
func (o *Overlay) Tick(in InputSource) error {
	if in != nil {
		if p, ok := in.PaintPoint(); ok {
			if err := o.engine.Paint(p, o.paint); err != nil {
				return err
			}
		}
	}
	_, err := o.sync.Flush()
	return err
}
