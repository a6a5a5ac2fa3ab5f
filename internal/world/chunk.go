package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/voxel"
)

const (
	// ChunkSize is the voxel extent of a chunk along each axis.
	ChunkSize = 64
	// VoxelsPerChunk is the total voxel count of one chunk.
	VoxelsPerChunk = ChunkSize * ChunkSize * ChunkSize
)

// ChunkPos addresses a chunk in chunk-space integer coordinates.
type ChunkPos struct {
	X, Y, Z int
}

// Bounds is a world-space axis-aligned box.
type Bounds struct {
	Min, Max mgl32.Vec3
}

// ContainsPoint reports whether p lies inside the box, boundaries included.
func (b Bounds) ContainsPoint(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Intersects reports whether the two boxes overlap.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Chunk owns a dense 64³ grid of packed voxels plus the bookkeeping the
// display and simulation layers need: a dirty flag set on any mutation and a
// has-dynamic flag that lets the simulator skip fully static chunks.
type Chunk struct {
	Pos ChunkPos

	voxels     []voxel.Voxel
	bounds     Bounds
	dirty      bool
	hasDynamic bool
}

// NewChunk creates an all-air chunk at the given chunk position.
func NewChunk(pos ChunkPos) *Chunk {
	min := mgl32.Vec3{
		float32(pos.X) * ChunkSize,
		float32(pos.Y) * ChunkSize,
		float32(pos.Z) * ChunkSize,
	}
	max := min.Add(mgl32.Vec3{ChunkSize, ChunkSize, ChunkSize})
	return &Chunk{
		Pos: pos,
		// The zero Voxel is air, so a fresh slice is an empty chunk.
		voxels: make([]voxel.Voxel, VoxelsPerChunk),
		bounds: Bounds{Min: min, Max: max},
		dirty:  true,
	}
}

// Bounds returns the chunk's world-space bounding box.
func (c *Chunk) Bounds() Bounds { return c.bounds }

func voxelIndex(x, y, z int) int {
	return z*ChunkSize*ChunkSize + y*ChunkSize + x
}

func inChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// Voxel returns the voxel at local coordinates. The second result is false
// when the coordinates fall outside the chunk.
func (c *Chunk) Voxel(x, y, z int) (voxel.Voxel, bool) {
	if !inChunk(x, y, z) {
		return 0, false
	}
	return c.voxels[voxelIndex(x, y, z)], true
}

// SetVoxel overwrites the voxel at local coordinates, marking the chunk dirty.
// Out-of-range coordinates are a no-op. Writing a dynamic material raises the
// has-dynamic flag; only RescanDynamic ever lowers it.
func (c *Chunk) SetVoxel(x, y, z int, v voxel.Voxel) {
	if !inChunk(x, y, z) {
		return
	}
	c.voxels[voxelIndex(x, y, z)] = v
	c.dirty = true
	if v.Material().IsDynamic() {
		c.hasDynamic = true
	}
}

// Dirty reports whether the chunk changed since the last ClearDirty.
func (c *Chunk) Dirty() bool { return c.dirty }

// ClearDirty is called by the display layer once it has consumed the chunk.
func (c *Chunk) ClearDirty() { c.dirty = false }

// NeedsSimulation reports whether the chunk may contain dynamic materials.
func (c *Chunk) NeedsSimulation() bool { return c.hasDynamic }

// RescanDynamic recomputes the has-dynamic flag by scanning every voxel.
func (c *Chunk) RescanDynamic() {
	for _, v := range c.voxels {
		if v.Material().IsDynamic() {
			c.hasDynamic = true
			return
		}
	}
	c.hasDynamic = false
}

// WorldToLocal converts a world-space point to local voxel indices. The final
// result is false when the point lies outside the chunk's bounding box.
func (c *Chunk) WorldToLocal(p mgl32.Vec3) (x, y, z int, ok bool) {
	if !c.bounds.ContainsPoint(p) {
		return 0, 0, 0, false
	}
	rel := p.Sub(c.bounds.Min)
	x, y, z = int(rel.X()), int(rel.Y()), int(rel.Z())
	if !inChunk(x, y, z) {
		return 0, 0, 0, false
	}
	return x, y, z, true
}

// LocalToWorld returns the world-space center of the voxel at local
// coordinates.
func (c *Chunk) LocalToWorld(x, y, z int) mgl32.Vec3 {
	return c.bounds.Min.Add(mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5})
}

// VoxelAtWorld returns the voxel containing the world-space point.
func (c *Chunk) VoxelAtWorld(p mgl32.Vec3) (voxel.Voxel, bool) {
	x, y, z, ok := c.WorldToLocal(p)
	if !ok {
		return 0, false
	}
	return c.Voxel(x, y, z)
}

// SetVoxelAtWorld overwrites the voxel containing the world-space point.
func (c *Chunk) SetVoxelAtWorld(p mgl32.Vec3, v voxel.Voxel) {
	if x, y, z, ok := c.WorldToLocal(p); ok {
		c.SetVoxel(x, y, z, v)
	}
}

// FillRegion overwrites every voxel in the axis-aligned box [min, max), with
// both corners clamped to the chunk extent.
func (c *Chunk) FillRegion(min, max [3]int, v voxel.Voxel) {
	lo := [3]int{clampInt(min[0], 0, ChunkSize-1), clampInt(min[1], 0, ChunkSize-1), clampInt(min[2], 0, ChunkSize-1)}
	hi := [3]int{clampInt(max[0], 0, ChunkSize), clampInt(max[1], 0, ChunkSize), clampInt(max[2], 0, ChunkSize)}
	for z := lo[2]; z < hi[2]; z++ {
		for y := lo[1]; y < hi[1]; y++ {
			for x := lo[0]; x < hi[0]; x++ {
				c.SetVoxel(x, y, z, v)
			}
		}
	}
}

// FillSphere overwrites every voxel whose world-space center lies within
// radius of center. A sphere whose bounding box misses the chunk is a no-op.
func (c *Chunk) FillSphere(center mgl32.Vec3, radius float32, v voxel.Voxel) {
	r := mgl32.Vec3{radius, radius, radius}
	sphereBounds := Bounds{Min: center.Sub(r), Max: center.Add(r)}
	if !c.bounds.Intersects(sphereBounds) {
		return
	}

	rel := center.Sub(c.bounds.Min)
	lo := [3]int{
		clampInt(int(rel.X()-radius), 0, ChunkSize-1),
		clampInt(int(rel.Y()-radius), 0, ChunkSize-1),
		clampInt(int(rel.Z()-radius), 0, ChunkSize-1),
	}
	hi := [3]int{
		clampInt(int(rel.X()+radius), 0, ChunkSize-1),
		clampInt(int(rel.Y()+radius), 0, ChunkSize-1),
		clampInt(int(rel.Z()+radius), 0, ChunkSize-1),
	}

	radiusSq := radius * radius
	for z := lo[2]; z <= hi[2]; z++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for x := lo[0]; x <= hi[0]; x++ {
				d := c.LocalToWorld(x, y, z).Sub(center)
				if d.Dot(d) <= radiusSq {
					c.SetVoxel(x, y, z, v)
				}
			}
		}
	}
}

// U32Slice exports the voxel grid as raw packed words for GPU upload.
func (c *Chunk) U32Slice() []uint32 {
	out := make([]uint32, len(c.voxels))
	for i, v := range c.voxels {
		out[i] = v.U32()
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
