package main

import (
	"strconv"

	"HMV/internal/heatmap"
)

// cellLabels caches the debug text for each cell, refreshed from change
// events so Draw never formats integers.
type cellLabels struct {
	grid   *heatmap.Grid
	labels []string
}

// bind sizes the cache for grid and fills it from the current values.
func (l *cellLabels) bind(grid *heatmap.Grid) {
	l.grid = grid
	l.labels = make([]string, grid.Len())
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			l.labels[x*grid.Height()+y] = strconv.Itoa(grid.Value(x, y))
		}
	}
}

// GridValueChanged implements heatmap.Subscriber.
func (l *cellLabels) GridValueChanged(ev heatmap.ChangeEvent) {
	if l.grid == nil {
		return
	}
	l.labels[ev.X*l.grid.Height()+ev.Y] = strconv.Itoa(l.grid.Value(ev.X, ev.Y))
}

// text returns the cached label for cell (x, y).
func (l *cellLabels) text(x, y int) string {
	return l.labels[x*l.grid.Height()+y]
}
