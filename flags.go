package main

import "flag"

// Command-line flags for the ebiten front end. Values from -config are
// applied first and flags override them.
var (
	// configPathFlag points at a JSON overlay config; empty uses defaults.
	configPathFlag = flag.String("config", "", "path to a .json overlay config")

	// debugFlag enables the FPS overlay, per-cell labels and the brush outline.
	debugFlag = flag.Bool("debug", false, "show FPS, rebuild count, cell labels and brush outline")

	// autoPaintFlag starts with the noise-driven cursor painting.
	autoPaintFlag = flag.Bool("auto-paint", false, "paint along a noise path without input (toggle with A)")

	// recordDefaultPGO auto-paints for 15s while capturing default.pgo, then exits.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "auto-paint for 15s while capturing default.pgo")

	// exportDirFlag overrides the snapshot directory.
	exportDirFlag = flag.String("export-dir", "", "directory for P key snapshots (overrides config)")

	showGridFlag = flag.Bool("show-grid", false, "draw cell boundaries (toggle with G)")
)
