package main

import (
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startDefaultPGORecording begins writing CPU profiles to the provided path.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	return stop, nil
}

// recordPGO profiles an auto-painted run for duration; Update ends the game
// once the deadline passes.
func (g *Game) recordPGO(path string, duration time.Duration) error {
	stop, err := startDefaultPGORecording(path)
	if err != nil {
		return err
	}
	g.pgoStop = stop
	g.pgoPath = path
	g.pgoDeadline = time.Now().Add(duration)
	g.wander.SetEnabled(true)
	log.Printf("Recording %s for %s", path, duration)
	return nil
}

// pgoExpired stops a finished recording and reports whether it did.
func (g *Game) pgoExpired() bool {
	if g.pgoStop == nil || time.Now().Before(g.pgoDeadline) {
		return false
	}
	g.stopPGO()
	return true
}

// stopPGO ends an active recording; it is safe to call more than once.
func (g *Game) stopPGO() {
	if g.pgoStop == nil {
		return
	}
	g.pgoStop()
	g.pgoStop = nil
	log.Printf("Wrote %s", g.pgoPath)
}
