package heatmap

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Value range of every cell.
const (
	ValueMin = 0
	ValueMax = 100
)

// ErrInvalidGrid is returned by NewGrid for non-positive dimensions or cell size.
var ErrInvalidGrid = errors.New("invalid grid")

// ChangeEvent names the cell written by a successful SetValue.
type ChangeEvent struct {
	X, Y int
}

// Subscriber receives change events synchronously, inside the write call.
type Subscriber interface {
	GridValueChanged(ev ChangeEvent)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(ev ChangeEvent)

// GridValueChanged calls f(ev).
func (f SubscriberFunc) GridValueChanged(ev ChangeEvent) { f(ev) }

// Grid is a fixed-size dense field of clamped integer values laid out in
// world space. Values are stored column-major at x*height+y.
type Grid struct {
	width, height int
	cellSize      float64
	origin        r3.Vec
	values        []int
	subscribers   []Subscriber
}

// NewGrid allocates a width x height grid whose cell (0,0) corner sits at
// origin. subs are notified of every write.
func NewGrid(width, height int, cellSize float64, origin r3.Vec, subs ...Subscriber) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidGrid, width, height)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidGrid, cellSize)
	}
	g := &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		origin:   origin,
		values:   make([]int, width*height),
	}
	for _, s := range subs {
		g.Subscribe(s)
	}
	return g, nil
}

// Subscribe registers s for change events. nil is ignored.
func (g *Grid) Subscribe(s Subscriber) {
	if s == nil {
		return
	}
	g.subscribers = append(g.subscribers, s)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellSize returns the world size of one cell edge.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Origin returns the world position of cell (0, 0)'s corner.
func (g *Grid) Origin() r3.Vec { return g.origin }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.values) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// WorldPosition returns the world position of cell (x, y)'s corner. It does
// not check bounds, so it can project the far edges of the grid.
func (g *Grid) WorldPosition(x, y int) r3.Vec {
	return r3.Add(r3.Scale(g.cellSize, r3.Vec{X: float64(x), Y: float64(y)}), g.origin)
}

// WorldToGrid returns the cell containing p. Points within rounding error
// of a cell corner map to that corner's cell.
func (g *Grid) WorldToGrid(p r3.Vec) (x, y int) {
	d := r3.Sub(p, g.origin)
	return cellIndex(d.X / g.cellSize), cellIndex(d.Y / g.cellSize)
}

// cornerEpsilon is the relative tolerance for snapping to a cell corner.
const cornerEpsilon = 1e-9

// cellIndex floors q, snapping to the nearest integer within cornerEpsilon.
func cellIndex(q float64) int {
	if r := math.Round(q); math.Abs(q-r) <= cornerEpsilon*math.Max(1, math.Abs(q)) {
		return int(r)
	}
	return int(math.Floor(q))
}

// SetValue clamps v into [ValueMin, ValueMax], stores it and notifies
// subscribers. Out-of-bounds coordinates are ignored.
func (g *Grid) SetValue(x, y, v int) {
	if !g.InBounds(x, y) {
		return
	}
	g.values[x*g.height+y] = clampValue(v)
	ev := ChangeEvent{X: x, Y: y}
	for _, s := range g.subscribers {
		s.GridValueChanged(ev)
	}
}

// SetValueAt sets the cell containing p.
func (g *Grid) SetValueAt(p r3.Vec, v int) {
	x, y := g.WorldToGrid(p)
	g.SetValue(x, y, v)
}

// Value returns the cell value, or 0 outside the grid.
func (g *Grid) Value(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.values[x*g.height+y]
}

// ValueAt returns the value of the cell containing p.
func (g *Grid) ValueAt(p r3.Vec) int {
	x, y := g.WorldToGrid(p)
	return g.Value(x, y)
}

// AddValue adds delta to the cell with the same clamping and bounds rules
// as SetValue.
func (g *Grid) AddValue(x, y, delta int) {
	g.SetValue(x, y, g.Value(x, y)+delta)
}

// AddValueAt adds delta to the cell containing p.
func (g *Grid) AddValueAt(p r3.Vec, delta int) {
	x, y := g.WorldToGrid(p)
	g.AddValue(x, y, delta)
}

// Clear writes ValueMin to every cell through SetValue.
func (g *Grid) Clear() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.SetValue(x, y, ValueMin)
		}
	}
}

// Snapshot is a detached copy of a grid's values.
type Snapshot struct {
	Width, Height int
	CellSize      float64
	Origin        r3.Vec
	Values        []int
}

// Value returns the snapshot value at (x, y), or 0 outside it.
func (s Snapshot) Value(x, y int) int {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	return s.Values[x*s.Height+y]
}

// Snapshot copies the current values.
func (g *Grid) Snapshot() Snapshot {
	values := make([]int, len(g.values))
	copy(values, g.values)
	return Snapshot{
		Width:    g.width,
		Height:   g.height,
		CellSize: g.cellSize,
		Origin:   g.origin,
		Values:   values,
	}
}

func clampValue(v int) int {
	if v < ValueMin {
		return ValueMin
	}
	if v > ValueMax {
		return ValueMax
	}
	return v
}
