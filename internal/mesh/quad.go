package mesh

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quad describes one rectangle to be written into a Buffer. Pos is the
// quad centre, Rotation is in degrees about +Z, and UV00/UV11 are the
// opposite texture corners.
type Quad struct {
	Pos      r3.Vec
	Rotation float64
	Size     r3.Vec
	UV00     r2.Vec
	UV11     r2.Vec
}

// Builder writes quads into buffers using a shared rotation cache.
type Builder struct {
	rotations *RotationCache
}

// NewBuilder returns a Builder backed by rotations. A nil cache gets a
// private one.
func NewBuilder(rotations *RotationCache) *Builder {
	if rotations == nil {
		rotations = NewRotationCache()
	}
	return &Builder{rotations: rotations}
}

// WriteQuad overwrites slot index of buf with q. index must be in
// [0, buf.QuadCount()); anything else panics like a slice access.
func (b *Builder) WriteQuad(buf *Buffer, index int, q Quad) {
	v0 := index * verticesPerQuad
	corners := b.Corners(q)
	copy(buf.Vertices[v0:v0+verticesPerQuad], corners[:])

	uvs := buf.UVs[v0 : v0+verticesPerQuad]
	uvs[0] = r2.Vec{X: q.UV00.X, Y: q.UV11.Y}
	uvs[1] = r2.Vec{X: q.UV00.X, Y: q.UV00.Y}
	uvs[2] = r2.Vec{X: q.UV11.X, Y: q.UV00.Y}
	uvs[3] = r2.Vec{X: q.UV11.X, Y: q.UV11.Y}

	// Split along the 1-3 diagonal; order fixes the face winding.
	t := buf.Triangles[index*indicesPerQuad : (index+1)*indicesPerQuad]
	t[0], t[1], t[2] = v0, v0+3, v0+1
	t[3], t[4], t[5] = v0+1, v0+3, v0+2
}

// AppendQuad returns a new buffer holding the contents of buf followed by q.
// buf itself is left untouched; a nil buf starts an empty mesh.
func (b *Builder) AppendQuad(buf *Buffer, q Quad) *Buffer {
	out := buf.grow()
	b.WriteQuad(out, out.QuadCount()-1, q)
	return out
}

// Corners returns the four world-space corners of q in slot order.
func (b *Builder) Corners(q Quad) [4]r3.Vec {
	// Quads are planar; Size.Z does not contribute.
	half := r3.Vec{X: q.Size.X * 0.5, Y: q.Size.Y * 0.5}
	var out [4]r3.Vec
	if half.X != half.Y {
		rot := b.rotations.At(q.Rotation)
		out[0] = r3.Add(q.Pos, rot.Rotate(r3.Vec{X: -half.X, Y: half.Y}))
		out[1] = r3.Add(q.Pos, rot.Rotate(r3.Vec{X: -half.X, Y: -half.Y}))
		out[2] = r3.Add(q.Pos, rot.Rotate(r3.Vec{X: half.X, Y: -half.Y}))
		out[3] = r3.Add(q.Pos, rot.Rotate(half))
		return out
	}
	// Square cells: one half-extent rotated by four quarter turns lands on
	// each corner. Only valid while both extents match.
	out[0] = r3.Add(q.Pos, b.rotations.At(q.Rotation-270).Rotate(half))
	out[1] = r3.Add(q.Pos, b.rotations.At(q.Rotation-180).Rotate(half))
	out[2] = r3.Add(q.Pos, b.rotations.At(q.Rotation-90).Rotate(half))
	out[3] = r3.Add(q.Pos, b.rotations.At(q.Rotation).Rotate(half))
	return out
}
