package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/voxel"
	"embervox/internal/world"
)

// Element describes a dynamic material preset used when spawning.
type Element struct {
	Material    voxel.Material
	Density     uint8
	Temperature uint8
	Flags       uint8
}

// Voxel packs the element into its voxel representation.
func (e Element) Voxel() voxel.Voxel {
	return voxel.New(e.Material, e.Density, e.Temperature, e.Flags)
}

var (
	// FireElement is a fresh, fully burning fire voxel.
	FireElement = Element{voxel.Fire, 255, 255, voxel.FlagEmitsLight | voxel.FlagTemporary}
	// SmokeElement is a thin, cool smoke voxel.
	SmokeElement = Element{voxel.Smoke, 200, 50, voxel.FlagTemporary | voxel.FlagTransparent}
	// WaterElement is a full water voxel.
	WaterElement = Element{voxel.Water, 255, 20, voxel.FlagTransparent}
	// DebrisElement is a chunk of inert wreckage.
	DebrisElement = Element{voxel.Debris, 180, 100, voxel.FlagTemporary}
)

// SpawnSphere writes the element into every voxel within radius of center,
// across as many registered chunks as the sphere touches. Chunks that are
// not registered with the manager are skipped, not created.
func SpawnSphere(m *world.Manager, center mgl32.Vec3, radius float32, e Element) {
	v := e.Voxel()
	minC := world.WorldToChunkPos(center.Sub(mgl32.Vec3{radius, radius, radius}))
	maxC := world.WorldToChunkPos(center.Add(mgl32.Vec3{radius, radius, radius}))
	for cz := minC.Z; cz <= maxC.Z; cz++ {
		for cy := minC.Y; cy <= maxC.Y; cy++ {
			for cx := minC.X; cx <= maxC.X; cx++ {
				c, ok := m.Chunk(world.ChunkPos{X: cx, Y: cy, Z: cz})
				if !ok {
					continue
				}
				c.FillSphere(center, radius, v)
			}
		}
	}
}

// SpawnFireSphere spawns a sphere of burning fire.
func SpawnFireSphere(m *world.Manager, center mgl32.Vec3, radius float32) {
	SpawnSphere(m, center, radius, FireElement)
}

// SpawnWaterSphere spawns a sphere of water.
func SpawnWaterSphere(m *world.Manager, center mgl32.Vec3, radius float32) {
	SpawnSphere(m, center, radius, WaterElement)
}

// SpawnSmokeSphere spawns a sphere of smoke.
func SpawnSmokeSphere(m *world.Manager, center mgl32.Vec3, radius float32) {
	SpawnSphere(m, center, radius, SmokeElement)
}

// SpawnDebrisSphere spawns a sphere of inert debris.
func SpawnDebrisSphere(m *world.Manager, center mgl32.Vec3, radius float32) {
	SpawnSphere(m, center, radius, DebrisElement)
}

// SpawnExplosion layers fire, smoke and debris spheres around center.
// Later layers overwrite earlier ones where they overlap, so the widest
// layer (debris) dominates the blast volume.
func SpawnExplosion(m *world.Manager, center mgl32.Vec3, radius float32) {
	SpawnSphere(m, center, radius*0.5, FireElement)
	SpawnSphere(m, center, radius, SmokeElement)
	SpawnSphere(m, center, radius*1.2, DebrisElement)
}

// SpawnFireLine lights a straight line of fire between two points, placing
// one small sphere per unit of distance.
func SpawnFireLine(m *world.Manager, from, to mgl32.Vec3, radius float32) {
	dir := to.Sub(from)
	length := dir.Len()
	if length == 0 {
		SpawnFireSphere(m, from, radius)
		return
	}
	step := dir.Mul(1 / length)
	for d := float32(0); d <= length; d++ {
		SpawnFireSphere(m, from.Add(step.Mul(d)), radius)
	}
}
