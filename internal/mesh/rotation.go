package mesh

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// rotationSteps is the number of cached rotations, one per integer degree.
const rotationSteps = 360

// zAxis is the rotation axis for coplanar quads.
var zAxis = r3.Vec{Z: 1}

// RotationCache holds one rotation about +Z per integer degree. The table is
// built on first use and is read-only afterwards, so a single cache can be
// shared by every Builder in the process.
type RotationCache struct {
	once  sync.Once
	table [rotationSteps]r3.Rotation
}

// NewRotationCache returns an empty cache; the table is filled lazily.
func NewRotationCache() *RotationCache {
	return &RotationCache{}
}

// NormalizeDegrees rounds deg to the nearest integer degree (ties to even)
// and wraps it into [0, 360).
func NormalizeDegrees(deg float64) int {
	rot := int(math.RoundToEven(deg)) % rotationSteps
	if rot < 0 {
		rot += rotationSteps
	}
	return rot
}

// RotationFor computes the rotation for an integer degree without the cache.
func RotationFor(deg int) r3.Rotation {
	return r3.NewRotation(float64(deg)*math.Pi/180, zAxis)
}

// At returns the cached rotation for deg after normalizing it.
func (c *RotationCache) At(deg float64) r3.Rotation {
	c.once.Do(c.build)
	return c.table[NormalizeDegrees(deg)]
}

func (c *RotationCache) build() {
	for i := 0; i < rotationSteps; i++ {
		c.table[i] = RotationFor(i)
	}
}
