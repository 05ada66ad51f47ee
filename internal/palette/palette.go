// Package palette maps normalized heat values onto colours. The same
// gradient feeds the 1D texture sampled by the mesh UVs, the terminal
// renderer and the snapshot exporters.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	plotpalette "gonum.org/v1/plot/palette"
)

// DefaultStops is the heat ramp used when no palette is configured.
var DefaultStops = []string{"#0b1a6b", "#1f78d1", "#20c4b5", "#7bd64a", "#f2d21b", "#f07c19", "#d7191c"}

// ErrEmpty is returned when a gradient has no stops.
var ErrEmpty = errors.New("palette has no colour stops")

// Gradient is an evenly spaced sequence of colour stops.
type Gradient struct {
	stops []colorful.Color
}

// Default returns the built-in heat ramp.
func Default() Gradient {
	g, err := ParseHex(DefaultStops)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseHex builds a gradient from "#rrggbb" stops.
func ParseHex(stops []string) (Gradient, error) {
	if len(stops) == 0 {
		return Gradient{}, ErrEmpty
	}
	out := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return Gradient{}, fmt.Errorf("parsing colour stop %q: %w", s, err)
		}
		out = append(out, c)
	}
	return Gradient{stops: out}, nil
}

// Len returns the number of stops.
func (g Gradient) Len() int { return len(g.stops) }

// At returns the colour at t in [0, 1]; t is clamped. Neighbouring stops are
// blended in HCL so the ramp stays perceptually even.
func (g Gradient) At(t float64) colorful.Color {
	switch {
	case len(g.stops) == 0:
		return colorful.Color{}
	case len(g.stops) == 1 || t <= 0:
		return g.stops[0]
	case t >= 1:
		return g.stops[len(g.stops)-1]
	}
	pos := t * float64(len(g.stops)-1)
	i := int(pos)
	return g.stops[i].BlendHcl(g.stops[i+1], pos-float64(i)).Clamped()
}

// RGBA returns At(t) as an opaque 8-bit colour.
func (g Gradient) RGBA(t float64) color.RGBA {
	r, gr, b := g.At(t).RGB255()
	return color.RGBA{R: r, G: gr, B: b, A: 0xff}
}

// Texture samples n texels across the gradient, first texel at t=0 and the
// last at t=1.
func (g Gradient) Texture(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	if n == 1 {
		out[0] = g.RGBA(0)
		return out
	}
	for i := range out {
		out[i] = g.RGBA(float64(i) / float64(n-1))
	}
	return out
}

// Pixels returns Texture(n) as packed RGBA bytes.
func (g Gradient) Pixels(n int) []byte {
	tex := g.Texture(n)
	px := make([]byte, 4*len(tex))
	for i, c := range tex {
		px[i*4] = c.R
		px[i*4+1] = c.G
		px[i*4+2] = c.B
		px[i*4+3] = c.A
	}
	return px
}

// Palette returns n samples as a gonum/plot palette.
func (g Gradient) Palette(n int) plotpalette.Palette {
	tex := g.Texture(n)
	cols := make(plotColors, len(tex))
	for i, c := range tex {
		cols[i] = c
	}
	return cols
}

type plotColors []color.Color

func (p plotColors) Colors() []color.Color { return p }
