package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"HMV/internal/heatmap"
	"HMV/internal/palette"
)

const (
	paletteSamples = 64
	pngSize        = 8 * vg.Inch
)

// cellGrid presents a snapshot as a plotter.GridXYZ in world coordinates,
// one column per grid x and one row per grid y.
type cellGrid struct {
	snap heatmap.Snapshot
}

func (g cellGrid) Dims() (c, r int)   { return g.snap.Width, g.snap.Height }
func (g cellGrid) Z(c, r int) float64 { return float64(g.snap.Value(c, r)) }
func (g cellGrid) X(c int) float64    { return g.snap.Origin.X + (float64(c)+0.5)*g.snap.CellSize }
func (g cellGrid) Y(r int) float64    { return g.snap.Origin.Y + (float64(r)+0.5)*g.snap.CellSize }

// WritePNG renders snap as a heat map coloured by pal.
func WritePNG(w io.Writer, snap heatmap.Snapshot, pal palette.Gradient, title string) error {
	if snap.Width <= 0 || snap.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptySnapshot, snap.Width, snap.Height)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	hm := plotter.NewHeatMap(cellGrid{snap: snap}, pal.Palette(paletteSamples))
	hm.Min = heatmap.ValueMin
	hm.Max = heatmap.ValueMax
	p.Add(hm)

	wt, err := p.WriterTo(pngSize, pngSize, "png")
	if err != nil {
		return fmt.Errorf("creating png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}
