// Package input provides paint point sources shared by the front ends.
package input

import (
	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/heatmap"
)

// Latch holds at most one pending point until the next frame polls it.
// A newer Set replaces an unread point.
type Latch struct {
	point r3.Vec
	ok    bool
}

// Set stores p for the next PaintPoint.
func (l *Latch) Set(p r3.Vec) {
	l.point, l.ok = p, true
}

// Pending reports whether a point is waiting.
func (l *Latch) Pending() bool { return l.ok }

// PaintPoint returns and clears the pending point.
func (l *Latch) PaintPoint() (r3.Vec, bool) {
	p, ok := l.point, l.ok
	l.point, l.ok = r3.Vec{}, false
	return p, ok
}

// Perlin parameters for the wander path.
const (
	wanderAlpha  = 2.0
	wanderBeta   = 2.0
	wanderOctave = 3
	wanderStep   = 0.015
	// noise stays well inside [-1, 1]; stretch it so the walk reaches the edges
	wanderGain = 1.4
)

// Wander moves a virtual cursor along a smooth noise path inside a world
// rectangle and yields its position every Interval frames.
type Wander struct {
	noise    *perlin.Perlin
	min, max r3.Vec
	interval int
	frame    int
	t        float64
	enabled  bool
}

// NewWander returns an enabled wander inside [min, max]. interval < 1 is
// treated as 1.
func NewWander(seed int64, min, max r3.Vec, interval int) *Wander {
	if interval < 1 {
		interval = 1
	}
	return &Wander{
		noise:    perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOctave, seed),
		min:      min,
		max:      max,
		interval: interval,
		enabled:  true,
	}
}

// SetEnabled pauses or resumes the wander; a paused wander still advances.
func (w *Wander) SetEnabled(on bool) { w.enabled = on }

// Enabled reports whether the wander yields points.
func (w *Wander) Enabled() bool { return w.enabled }

// Position returns the current cursor position without advancing.
func (w *Wander) Position() r3.Vec {
	return r3.Vec{
		X: lerp(w.min.X, w.max.X, unit(w.noise.Noise2D(w.t, 0))),
		Y: lerp(w.min.Y, w.max.Y, unit(w.noise.Noise2D(0, w.t+97.3))),
		Z: w.min.Z,
	}
}

// PaintPoint advances one frame and yields the cursor on every
// interval-th frame.
func (w *Wander) PaintPoint() (r3.Vec, bool) {
	w.t += wanderStep
	w.frame++
	if w.frame < w.interval {
		return r3.Vec{}, false
	}
	w.frame = 0
	if !w.enabled {
		return r3.Vec{}, false
	}
	return w.Position(), true
}

func unit(n float64) float64 {
	v := 0.5 + 0.5*n*wanderGain
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

type first []heatmap.InputSource

// First polls sources in order and returns the first point found. Every
// source before the winner is polled; later ones are not.
func First(sources ...heatmap.InputSource) heatmap.InputSource {
	return first(sources)
}

func (f first) PaintPoint() (r3.Vec, bool) {
	for _, s := range f {
		if s == nil {
			continue
		}
		if p, ok := s.PaintPoint(); ok {
			return p, true
		}
	}
	return r3.Vec{}, false
}
