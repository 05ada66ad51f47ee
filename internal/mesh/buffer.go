package mesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// ErrInvalidBuffer is returned by Validate when the buffer lengths or
// triangle indices are inconsistent.
var ErrInvalidBuffer = errors.New("invalid mesh buffer")

// Buffer is a flat quad mesh: four vertices and UVs per quad and six
// triangle indices per quad.
type Buffer struct {
	Vertices  []r3.Vec
	UVs       []r2.Vec
	Triangles []int
}

// NewBuffer preallocates a buffer holding exactly quadCount quads.
func NewBuffer(quadCount int) *Buffer {
	if quadCount < 0 {
		quadCount = 0
	}
	return &Buffer{
		Vertices:  make([]r3.Vec, verticesPerQuad*quadCount),
		UVs:       make([]r2.Vec, verticesPerQuad*quadCount),
		Triangles: make([]int, indicesPerQuad*quadCount),
	}
}

// QuadCount returns the number of quad slots in the buffer.
func (b *Buffer) QuadCount() int {
	if b == nil {
		return 0
	}
	return len(b.Vertices) / verticesPerQuad
}

// Validate checks the length and index invariants.
func (b *Buffer) Validate() error {
	if b == nil {
		return nil
	}
	n := len(b.Vertices)
	if n%verticesPerQuad != 0 {
		return fmt.Errorf("%w: %d vertices is not a multiple of %d", ErrInvalidBuffer, n, verticesPerQuad)
	}
	if len(b.UVs) != n {
		return fmt.Errorf("%w: %d uvs for %d vertices", ErrInvalidBuffer, len(b.UVs), n)
	}
	quads := n / verticesPerQuad
	if len(b.Triangles) != indicesPerQuad*quads {
		return fmt.Errorf("%w: %d triangle indices for %d quads", ErrInvalidBuffer, len(b.Triangles), quads)
	}
	for i, idx := range b.Triangles {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: triangle index %d at %d out of range [0,%d)", ErrInvalidBuffer, idx, i, n)
		}
	}
	return nil
}

// grow returns a copy of b with room for one more quad at the tail.
func (b *Buffer) grow() *Buffer {
	out := NewBuffer(b.QuadCount() + 1)
	if b != nil {
		copy(out.Vertices, b.Vertices)
		copy(out.UVs, b.UVs)
		copy(out.Triangles, b.Triangles)
	}
	return out
}
