package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFootprintMatchesPaint(t *testing.T) {
	t.Parallel()

	p := PaintParams{Peak: 60, FullValueRadius: 2, TotalRadius: 7}
	var rec recorder
	g := newTestGrid(t, 31, 31, &rec)
	require.NoError(t, NewEngine(g).PaintCell(15, 15, p))

	fp := p.Footprint()
	require.Len(t, fp, len(rec.events))
	for i, o := range fp {
		assert.Equal(t, ChangeEvent{X: 15 + o.DX, Y: 15 + o.DY}, rec.events[i], "offset %d", i)
		assert.Equal(t, clampValue(o.Amount), g.Value(15+o.DX, 15+o.DY))
	}
	// a diamond of radius r-1 has 2r^2 - 2r + 1 cells
	assert.Len(t, fp, 2*7*7-2*7+1)
}

func TestFootprintEdge(t *testing.T) {
	t.Parallel()

	p := PaintParams{Peak: 100, FullValueRadius: 0, TotalRadius: 3}
	edge := p.Edge()
	assert.Len(t, edge, 8)
	for _, o := range edge {
		assert.Equal(t, 2, abs(o.DX)+abs(o.DY))
		assert.Equal(t, 34, o.Amount)
	}
}
