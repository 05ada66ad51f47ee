package main

import (
	"image/color"
	"time"
)

// Rendering and runtime constants for the ebiten front end. Grid layout and
// paint shape come from internal/config.
const (
	gradientTexels    = 256
	labelMinCellPx    = 24
	gridLineWidth     = 1
	pgoRecordDuration = 15 * time.Second
	pgoProfilePath    = "default.pgo"
	snapshotTitle     = "Heat Map Snapshot"
)

var (
	backgroundColour = color.RGBA{12, 12, 18, 255}
	gridLineColour   = color.RGBA{255, 255, 255, 40}
	brushEdgeColour  = color.RGBA{255, 255, 255, 90}
)
