package heatmap

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidPaint is returned when the paint radii cannot produce a decay.
var ErrInvalidPaint = errors.New("invalid paint parameters")

// PaintParams shapes one hotspot: Peak is added out to FullValueRadius
// (Manhattan distance), then falls off linearly until TotalRadius.
type PaintParams struct {
	Peak            int
	FullValueRadius int
	TotalRadius     int
}

// Validate rejects radii that would give a zero or negative decay span.
func (p PaintParams) Validate() error {
	if p.FullValueRadius < 0 {
		return fmt.Errorf("%w: full value radius %d is negative", ErrInvalidPaint, p.FullValueRadius)
	}
	if p.TotalRadius <= p.FullValueRadius {
		return fmt.Errorf("%w: total radius %d must exceed full value radius %d",
			ErrInvalidPaint, p.TotalRadius, p.FullValueRadius)
	}
	return nil
}

// DecayRate is the amount lost per unit of distance past FullValueRadius.
// Call only on validated params.
func (p PaintParams) DecayRate() int {
	return int(math.RoundToEven(float64(p.Peak) / float64(p.TotalRadius-p.FullValueRadius)))
}

// Amount returns the delta applied at Manhattan distance radius.
func (p PaintParams) Amount(radius int) int {
	if radius < p.FullValueRadius {
		return p.Peak
	}
	return p.Peak - p.DecayRate()*(radius-p.FullValueRadius)
}

// Engine paints diamond-shaped hotspots onto a grid.
type Engine struct {
	grid *Grid
}

// NewEngine returns an Engine writing to grid.
func NewEngine(grid *Grid) *Engine {
	return &Engine{grid: grid}
}

// Paint adds a hotspot centred on the cell containing center.
func (e *Engine) Paint(center r3.Vec, p PaintParams) error {
	cx, cy := e.grid.WorldToGrid(center)
	return e.PaintCell(cx, cy, p)
}

// PaintCell adds a hotspot centred on cell (cx, cy). Only the +x,+y
// triangle is walked; the other three quadrants are mirrored from it, and a
// mirror is skipped when it would land back on the axis cell already hit.
func (e *Engine) PaintCell(cx, cy int, p PaintParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	decay := p.DecayRate()
	g := e.grid
	for dx := 0; dx < p.TotalRadius; dx++ {
		for dy := 0; dy < p.TotalRadius-dx; dy++ {
			radius := dx + dy
			amount := p.Peak
			if radius >= p.FullValueRadius {
				amount -= decay * (radius - p.FullValueRadius)
			}
			g.AddValue(cx+dx, cy+dy, amount)
			if dx != 0 {
				g.AddValue(cx-dx, cy+dy, amount)
			}
			if dy != 0 {
				g.AddValue(cx+dx, cy-dy, amount)
				if dx != 0 {
					g.AddValue(cx-dx, cy-dy, amount)
				}
			}
		}
	}
	return nil
}
