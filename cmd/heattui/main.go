// Command heattui runs the heat overlay in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"HMV/internal/config"
	"HMV/internal/export"
	"HMV/internal/heatmap"
	"HMV/internal/input"
	"HMV/internal/mesh"
	"HMV/internal/view"
)

const (
	frameInterval = 16 * time.Millisecond
	eventBacklog  = 100
	statusRows    = 1
)

var (
	configPathFlag = flag.String("config", "", "path to a .json overlay config")
	exportDirFlag  = flag.String("export-dir", "", "directory for p key snapshots (overrides config)")
)

// app owns the terminal screen and the heat overlay drawn on it.
type app struct {
	screen   tcell.Screen
	cfg      config.Config
	overlay  *heatmap.Overlay
	renderer *termRenderer
	session  *export.Session
	camera   view.Camera
	latch    input.Latch
	buttons  tcell.ButtonMask
	status   string
	saved    []string
}

// newApp builds the overlay for cfg and fits it to screen.
func newApp(screen tcell.Screen, cfg config.Config) (*app, error) {
	gradient, err := cfg.Gradient()
	if err != nil {
		return nil, err
	}
	a := &app{
		screen:   screen,
		cfg:      cfg,
		renderer: newTermRenderer(gradient),
		session:  export.NewSession(cfg.Export.Dir, gradient, "Heat Map Snapshot"),
		status:   "click paints  c clear  p snapshot  q quit",
	}
	a.overlay, err = heatmap.NewOverlay(cfg.Overlay(), a.renderer, mesh.NewRotationCache())
	if err != nil {
		return nil, err
	}
	return a, a.resize()
}

// resize fits the grid to the terminal above the status line and rebuilds.
func (a *app) resize() error {
	cols, rows := a.screen.Size()
	rows -= statusRows
	worldW, worldH := a.cfg.WorldSize()
	a.camera = view.Fit(a.cfg.Origin(), worldW, worldH, float64(cols), float64(rows))
	a.renderer.resize(a.camera, cols, rows)
	return a.overlay.Sync().Rebuild()
}

// handle applies one event and reports whether the app should keep running.
func (a *app) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false, nil
		}
		switch ev.Rune() {
		case 'q':
			return false, nil
		case 'c':
			a.overlay.Grid().Clear()
			a.status = "cleared"
		case 'p':
			paths, err := a.session.Save(a.overlay.Grid().Snapshot())
			if err != nil {
				a.status = fmt.Sprintf("snapshot failed: %v", err)
				break
			}
			a.saved = append(a.saved, paths...)
			a.status = fmt.Sprintf("saved %d files to %s", len(paths), a.session.Dir)
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && a.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			a.latch.Set(a.camera.ScreenToWorld(r2.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}))
		}
		a.buttons = ev.Buttons()
	case *tcell.EventResize:
		a.screen.Sync()
		if err := a.resize(); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (a *app) draw() {
	a.screen.Clear()
	a.renderer.draw(a.screen)
	_, rows := a.screen.Size()
	col := 0
	for _, r := range a.status {
		a.screen.SetContent(col, rows-1, r, nil, tcell.StyleDefault)
		col++
	}
	a.screen.Show()
}

// run drives events and frames until quit or a render error.
func (a *app) run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, eventBacklog)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			ok, err := a.handle(ev)
			if err != nil || !ok {
				return err
			}
		case <-ticker.C:
			if err := a.overlay.Tick(&a.latch); err != nil {
				return err
			}
			a.draw()
		}
	}
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPathFlag != "" {
		loaded, err := config.Load(*configPathFlag)
		if err != nil {
			log.Fatalf("Loading config: %v", err)
		}
		cfg = loaded
	}
	if *exportDirFlag != "" {
		cfg.Export.Dir = *exportDirFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Terminal init: %v", err)
	}
	screen.EnableMouse()

	a, err := newApp(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("Startup failed: %v", err)
	}
	runErr := a.run()
	screen.Fini()

	log.Printf("Session %s wrote %d snapshot files", a.session.ID, len(a.saved))
	for _, p := range a.saved {
		log.Printf("  %s", p)
	}
	if runErr != nil {
		log.Fatalf("Exited: %v", runErr)
	}
}
