package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/mesh"
)

type scriptedInput struct {
	points []*r3.Vec
}

func (s *scriptedInput) PaintPoint() (r3.Vec, bool) {
	if len(s.points) == 0 {
		return r3.Vec{}, false
	}
	p := s.points[0]
	s.points = s.points[1:]
	if p == nil {
		return r3.Vec{}, false
	}
	return *p, true
}

func demoConfig() OverlayConfig {
	return OverlayConfig{
		Width: 40, Height: 40, CellSize: 8,
		Paint: PaintParams{Peak: 100, FullValueRadius: 2, TotalRadius: 10},
	}
}

func TestNewOverlayValidates(t *testing.T) {
	t.Parallel()

	cfg := demoConfig()
	cfg.Paint.TotalRadius = 2
	_, err := NewOverlay(cfg, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidPaint)

	cfg = demoConfig()
	cfg.CellSize = 0
	_, err = NewOverlay(cfg, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestOverlayTickFrameSequence(t *testing.T) {
	t.Parallel()

	cr := &captureRenderer{}
	rec := &recorder{}
	o, err := NewOverlay(demoConfig(), cr, mesh.NewRotationCache(), rec)
	require.NoError(t, err)

	centre := r3.Vec{X: 164, Y: 164} // cell (20,20)
	in := &scriptedInput{points: []*r3.Vec{nil, &centre, nil, &centre}}

	require.NoError(t, o.Tick(in))
	assert.Equal(t, 1, cr.calls, "initial rebuild")
	assert.Empty(t, rec.events)

	require.NoError(t, o.Tick(in))
	assert.Equal(t, 2, cr.calls, "one rebuild for a whole paint")
	assert.NotEmpty(t, rec.events)
	assert.Equal(t, 100, o.Grid().Value(20, 20))
	assert.Equal(t, 52, o.Grid().Value(20, 26))

	require.NoError(t, o.Tick(in))
	assert.Equal(t, 2, cr.calls, "idle frame does not rebuild")

	require.NoError(t, o.Tick(in))
	assert.Equal(t, 3, cr.calls)
	assert.Equal(t, 100, o.Grid().Value(20, 26))
	require.NoError(t, cr.last.Validate())
	assert.Equal(t, 1600, cr.last.QuadCount())

	require.NoError(t, o.Tick(nil))
	assert.Equal(t, o.PaintParams(), demoConfig().Paint)
	assert.Same(t, o.Grid(), o.Sync().grid)
	assert.NotNil(t, o.Engine())
}
