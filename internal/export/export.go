// Package export writes heat grid snapshots to PNG and HTML files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"HMV/internal/heatmap"
	"HMV/internal/palette"
)

// ErrEmptySnapshot is returned for snapshots with no cells.
var ErrEmptySnapshot = errors.New("snapshot has no cells")

const timestampLayout = "20060102-150405.000"

// Session names snapshot files for one run of a front end.
type Session struct {
	ID       uuid.UUID
	Dir      string
	Gradient palette.Gradient
	Title    string

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewSession returns a session with a fresh id writing under dir.
func NewSession(dir string, pal palette.Gradient, title string) *Session {
	return &Session{ID: uuid.New(), Dir: dir, Gradient: pal, Title: title}
}

// Save writes snap as <prefix>.png and <prefix>.html under Dir, creating it
// as needed, and returns the written paths.
func (s *Session) Save(snap heatmap.Snapshot) ([]string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	prefix := filepath.Join(s.Dir, fmt.Sprintf("heat-%s-%s", s.ID.String()[:8], now().Format(timestampLayout)))

	var paths []string
	pngPath := prefix + ".png"
	if err := writeFile(pngPath, func(f *os.File) error { return WritePNG(f, snap, s.Gradient, s.Title) }); err != nil {
		return paths, err
	}
	paths = append(paths, pngPath)

	htmlPath := prefix + ".html"
	if err := writeFile(htmlPath, func(f *os.File) error { return WriteHTML(f, snap, s.Gradient, s.Title) }); err != nil {
		return paths, err
	}
	return append(paths, htmlPath), nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
