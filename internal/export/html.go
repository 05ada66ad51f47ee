package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"HMV/internal/heatmap"
	"HMV/internal/palette"
)

const htmlRampStops = 10

// WriteHTML renders snap as an interactive go-echarts heat map page.
func WriteHTML(w io.Writer, snap heatmap.Snapshot, pal palette.Gradient, title string) error {
	if snap.Width <= 0 || snap.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptySnapshot, snap.Width, snap.Height)
	}

	xs := make([]string, snap.Width)
	for x := range xs {
		xs[x] = strconv.Itoa(x)
	}
	ys := make([]string, snap.Height)
	for y := range ys {
		ys[y] = strconv.Itoa(y)
	}
	data := make([]opts.HeatMapData, 0, len(snap.Values))
	for x := 0; x < snap.Width; x++ {
		for y := 0; y < snap.Height; y++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, snap.Value(x, y)}})
		}
	}

	ramp := make([]string, 0, htmlRampStops)
	for i := 0; i < htmlRampStops; i++ {
		ramp = append(ramp, pal.At(float64(i)/float64(htmlRampStops-1)).Hex())
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%dx%d cells, cell=%g", snap.Width, snap.Height, snap.CellSize)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs, Name: "x", SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "y", SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        heatmap.ValueMin,
			Max:        heatmap.ValueMax,
			InRange:    &opts.VisualMapInRange{Color: ramp},
		}),
	)
	hm.AddSeries("heat", data)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}
