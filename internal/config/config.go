// Package config loads the overlay settings from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/heatmap"
	"HMV/internal/palette"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

const maxFileSize = 1 << 20

// Grid is the layout section.
type Grid struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	CellSize float64 `json:"cell_size"`
	OriginX  float64 `json:"origin_x"`
	OriginY  float64 `json:"origin_y"`
}

// Paint is the brush section.
type Paint struct {
	Peak            int `json:"peak"`
	FullValueRadius int `json:"full_value_radius"`
	TotalRadius     int `json:"total_radius"`
}

// Window holds the ebiten window settings.
type Window struct {
	// Scale is screen pixels per world unit.
	Scale float64 `json:"scale"`
	Title string  `json:"title"`
	TPS   int     `json:"tps"`
}

// Export sets where snapshots go.
type Export struct {
	Dir string `json:"dir"`
}

// AutoPaint drives the noise-path cursor.
type AutoPaint struct {
	Seed           int64 `json:"seed"`
	IntervalFrames int   `json:"interval_frames"`
}

// Config is the root document. Sections missing from a file keep the values
// from Default.
type Config struct {
	Grid      Grid      `json:"grid"`
	Paint     Paint     `json:"paint"`
	Window    Window    `json:"window"`
	Palette   []string  `json:"palette"`
	Export    Export    `json:"export"`
	AutoPaint AutoPaint `json:"auto_paint"`
}

// Default returns the 40x40 demo layout with the 100/2/10 brush.
func Default() Config {
	return Config{
		Grid:      Grid{Width: 40, Height: 40, CellSize: 8},
		Paint:     Paint{Peak: 100, FullValueRadius: 2, TotalRadius: 10},
		Window:    Window{Scale: 2, Title: "Heat Map", TPS: 60},
		Palette:   append([]string(nil), palette.DefaultStops...),
		Export:    Export{Dir: "snapshots"},
		AutoPaint: AutoPaint{Seed: 1, IntervalFrames: 12},
	}
}

// Load reads a .json file over Default and validates the result.
func Load(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges on every section.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %g", ErrInvalid, c.Grid.CellSize)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale must be positive, got %g", ErrInvalid, c.Window.Scale)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, c.Window.TPS)
	case c.AutoPaint.IntervalFrames < 1:
		return fmt.Errorf("%w: auto_paint interval_frames must be >= 1, got %d", ErrInvalid, c.AutoPaint.IntervalFrames)
	}
	if err := c.PaintParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := palette.ParseHex(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Origin returns the world position of grid cell (0, 0)'s corner.
func (c Config) Origin() r3.Vec {
	return r3.Vec{X: c.Grid.OriginX, Y: c.Grid.OriginY}
}

// PaintParams returns the brush shape from the paint section.
func (c Config) PaintParams() heatmap.PaintParams {
	return heatmap.PaintParams{
		Peak:            c.Paint.Peak,
		FullValueRadius: c.Paint.FullValueRadius,
		TotalRadius:     c.Paint.TotalRadius,
	}
}

// Overlay returns the heatmap layout described by c.
func (c Config) Overlay() heatmap.OverlayConfig {
	return heatmap.OverlayConfig{
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
		CellSize: c.Grid.CellSize,
		Origin:   c.Origin(),
		Paint:    c.PaintParams(),
	}
}

// Gradient parses the palette stops. Validate has already checked them for
// loaded configs.
func (c Config) Gradient() (palette.Gradient, error) {
	return palette.ParseHex(c.Palette)
}

// WorldSize returns the extent of the grid in world units.
func (c Config) WorldSize() (w, h float64) {
	return float64(c.Grid.Width) * c.Grid.CellSize, float64(c.Grid.Height) * c.Grid.CellSize
}
