package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"HMV/internal/config"
)

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())

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
	gradient, err := cfg.Gradient()
	if err != nil {
		log.Fatalf("Palette: %v", err)
	}

	g, err := newGame(cfg, gradient)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	log.Printf("Heat grid %dx%d (cell %g), paint %d/%d/%d, session %s",
		cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize,
		cfg.Paint.Peak, cfg.Paint.FullValueRadius, cfg.Paint.TotalRadius, g.session.ID)

	if *recordDefaultPGO {
		if err := g.recordPGO(pgoProfilePath, pgoRecordDuration); err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
	}

	ebiten.SetWindowSize(g.screenW, g.screenH)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil {
		g.stopPGO()
		log.Fatalf("Game exited: %v", err)
	}
}
