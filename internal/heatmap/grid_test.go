package heatmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

type recorder struct {
	events []ChangeEvent
}

func (r *recorder) GridValueChanged(ev ChangeEvent) { r.events = append(r.events, ev) }

func newTestGrid(t *testing.T, w, h int, subs ...Subscriber) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, 1, r3.Vec{}, subs...)
	require.NoError(t, err)
	return g
}

func TestNewGridRejectsBadLayout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		w, h int
		cell float64
	}{
		{"zero width", 0, 4, 1},
		{"negative height", 4, -1, 1},
		{"zero cell", 4, 4, 0},
		{"negative cell", 4, 4, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewGrid(tc.w, tc.h, tc.cell, r3.Vec{})
			assert.ErrorIs(t, err, ErrInvalidGrid)
		})
	}
}

func TestSetValueClamps(t *testing.T) {
	t.Parallel()

	g := newTestGrid(t, 3, 3)
	for _, v := range []int{-50, -1, 0, 1, 42, 99, 100, 101, 150, 1 << 30} {
		g.SetValue(1, 2, v)
		want := v
		if want < ValueMin {
			want = ValueMin
		}
		if want > ValueMax {
			want = ValueMax
		}
		assert.Equal(t, want, g.Value(1, 2), "SetValue(%d)", v)
	}
}

func TestOutOfBoundsIsSilent(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := newTestGrid(t, 2, 2, rec)
	g.SetValue(1, 1, 30)
	before := g.Snapshot()
	rec.events = nil

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}, {-7, 9}} {
		g.SetValue(p[0], p[1], 80)
		g.AddValue(p[0], p[1], 80)
		assert.Equal(t, 0, g.Value(p[0], p[1]))
	}

	assert.Empty(t, rec.events)
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Fatalf("in-bounds values changed (-before +after):\n%s", diff)
	}
}

func TestAddValueMatchesSetValue(t *testing.T) {
	t.Parallel()

	a := newTestGrid(t, 2, 2)
	b := newTestGrid(t, 2, 2)
	for _, d := range []int{30, -10, 90, 200, -500, 7} {
		a.AddValue(0, 1, d)
		b.SetValue(0, 1, b.Value(0, 1)+d)
		assert.Equal(t, b.Value(0, 1), a.Value(0, 1), "delta %d", d)
	}
}

func TestChangeEventsNoDedup(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := newTestGrid(t, 4, 4, rec)

	g.SetValue(1, 2, 100)
	g.SetValue(1, 2, 100)
	g.SetValue(1, 2, 500) // clamps to the same stored value
	g.AddValue(3, 0, 0)

	want := []ChangeEvent{{1, 2}, {1, 2}, {1, 2}, {3, 0}}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscribersSeeStoredValue(t *testing.T) {
	t.Parallel()

	var g *Grid
	var seen []int
	g = newTestGrid(t, 2, 2, SubscriberFunc(func(ev ChangeEvent) {
		seen = append(seen, g.Value(ev.X, ev.Y))
	}))
	g.Subscribe(nil)
	g.SetValue(0, 0, 250)
	g.AddValue(0, 0, -30)

	assert.Equal(t, []int{100, 70}, seen)
}

func TestCoordinateMapping(t *testing.T) {
	t.Parallel()

	origin := r3.Vec{X: -20, Y: 5}
	g, err := NewGrid(10, 6, 8, origin)
	require.NoError(t, err)

	assert.Equal(t, origin, g.WorldPosition(0, 0))
	assert.Equal(t, r3.Vec{X: 4, Y: 53}, g.WorldPosition(3, 6))
	assert.Equal(t, r3.Vec{X: -28, Y: -3}, g.WorldPosition(-1, -1), "no bounds check")

	for x := -2; x < 12; x++ {
		for y := -2; y < 8; y++ {
			gx, gy := g.WorldToGrid(g.WorldPosition(x, y))
			assert.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}

	gx, gy := g.WorldToGrid(r3.Vec{X: -20.01, Y: 12.99})
	assert.Equal(t, [2]int{-1, 0}, [2]int{gx, gy}, "floor, not truncation")
}

func TestCoordinateRoundTripInexactSizes(t *testing.T) {
	t.Parallel()

	origins := []r3.Vec{{}, {X: -13.37, Y: 2.2}, {X: 0.1, Y: -7.3}}
	for _, cell := range []float64{0.1, 0.3, 0.7, 1.1, 3} {
		for _, origin := range origins {
			g, err := NewGrid(200, 200, cell, origin)
			require.NoError(t, err)
			failed := 0
			for x := 0; x < g.Width(); x++ {
				for y := 0; y < g.Height(); y++ {
					if gx, gy := g.WorldToGrid(g.WorldPosition(x, y)); gx != x || gy != y {
						failed++
					}
				}
			}
			assert.Zero(t, failed, "cell %g origin %v", cell, origin)

			// just inside the previous cell still floors
			gx, gy := g.WorldToGrid(r3.Sub(g.WorldPosition(5, 5), r3.Vec{X: cell * 1e-3, Y: cell * 1e-3}))
			assert.Equal(t, [2]int{4, 4}, [2]int{gx, gy}, "cell %g origin %v", cell, origin)
		}
	}
}

func TestWorldPointForms(t *testing.T) {
	t.Parallel()

	g, err := NewGrid(4, 4, 2, r3.Vec{})
	require.NoError(t, err)

	g.SetValueAt(r3.Vec{X: 3.5, Y: 1.2}, 40)
	assert.Equal(t, 40, g.Value(1, 0))
	assert.Equal(t, 40, g.ValueAt(r3.Vec{X: 2, Y: 0}))

	g.AddValueAt(r3.Vec{X: 2.1, Y: 1.9}, 25)
	assert.Equal(t, 65, g.Value(1, 0))
	assert.Equal(t, 0, g.ValueAt(r3.Vec{X: -0.1}))
}

func TestClearAndSnapshot(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := newTestGrid(t, 3, 2, rec)
	g.SetValue(2, 1, 60)

	snap := g.Snapshot()
	assert.Equal(t, 60, snap.Value(2, 1))
	assert.Equal(t, 0, snap.Value(3, 1))

	g.Clear()
	assert.Equal(t, 0, g.Value(2, 1))
	assert.Equal(t, 60, snap.Value(2, 1), "snapshot is detached")
	assert.Len(t, rec.events, 1+g.Len())
}
