package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r3"

	"HMV/internal/config"
	"HMV/internal/export"
	"HMV/internal/heatmap"
	"HMV/internal/input"
	"HMV/internal/mesh"
	"HMV/internal/palette"
	"HMV/internal/view"
)

// Game owns the heat overlay and the ebiten side of rendering and input.
type Game struct {
	cfg      config.Config
	overlay  *heatmap.Overlay
	renderer *meshRenderer
	labels   *cellLabels
	mouse    *mouseInput
	wander   *input.Wander
	session  *export.Session
	camera   view.Camera
	edge     []heatmap.Offset

	screenW, screenH int
	showGrid         bool

	lastTickDuration time.Duration

	pgoStop     func()
	pgoPath     string
	pgoDeadline time.Time
}

// newGame builds the overlay described by cfg, sized to its window scale.
func newGame(cfg config.Config, gradient palette.Gradient) (*Game, error) {
	worldW, worldH := cfg.WorldSize()
	g := &Game{
		cfg:      cfg,
		screenW:  int(worldW * cfg.Window.Scale),
		screenH:  int(worldH * cfg.Window.Scale),
		showGrid: *showGridFlag,
		session:  export.NewSession(cfg.Export.Dir, gradient, snapshotTitle),
		edge:     cfg.PaintParams().Edge(),
	}
	g.camera = view.Fit(cfg.Origin(), worldW, worldH, float64(g.screenW), float64(g.screenH))
	g.renderer = newMeshRenderer(g.camera, gradient)
	g.labels = &cellLabels{}

	overlay, err := heatmap.NewOverlay(cfg.Overlay(), g.renderer, mesh.NewRotationCache(), g.labels)
	if err != nil {
		return nil, fmt.Errorf("building heat overlay: %w", err)
	}
	g.overlay = overlay
	g.labels.bind(overlay.Grid())

	g.mouse = &mouseInput{camera: g.camera}
	origin := cfg.Origin()
	g.wander = input.NewWander(cfg.AutoPaint.Seed, origin, r3.Add(origin, r3.Vec{X: worldW, Y: worldH}), cfg.AutoPaint.IntervalFrames)
	g.wander.SetEnabled(*autoPaintFlag)

	return g, nil
}

// Update handles hotkeys, then runs one overlay tick for this frame's input.
func (g *Game) Update() error {
	if g.pgoExpired() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.stopPGO()
		return ebiten.Termination
	}
	g.handleKeys()

	start := time.Now()
	if err := g.overlay.Tick(input.First(g.mouse, g.wander)); err != nil {
		return err
	}
	g.lastTickDuration = time.Since(start)
	return nil
}

// handleKeys applies the clear, grid, auto paint and snapshot hotkeys.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.overlay.Grid().Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.wander.SetEnabled(!g.wander.Enabled())
		log.Printf("Auto paint: %v", g.wander.Enabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		paths, err := g.session.Save(g.overlay.Grid().Snapshot())
		if err != nil {
			log.Printf("Snapshot failed: %v", err)
			return
		}
		log.Printf("Snapshot written: %v", paths)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.screenW, g.screenH }
