package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/core"
	"embervox/internal/sim"
	"embervox/internal/voxel"
	"embervox/internal/world"
)

func init() {
	core.Register("fire", func(cfg map[string]string) core.Scene {
		return newWorldScene("fire", FromMap(cfg), setupFire)
	})
	core.Register("water", func(cfg map[string]string) core.Scene {
		return newWorldScene("water", FromMap(cfg), setupWater)
	})
	core.Register("explosion", func(cfg map[string]string) core.Scene {
		return newWorldScene("explosion", FromMap(cfg), setupExplosion)
	})
}

// setupFire builds a wooden cabin-sized block on a rock slab and lights a
// fire next to it.
func setupFire(cfg Config, m *world.Manager) {
	c, _ := m.Chunk(world.ChunkPos{})
	rockFloor(c, 8)

	wood := voxel.New(voxel.Wood, 220, 20, voxel.FlagCollision)
	c.FillRegion([3]int{36, 8, 24}, [3]int{48, 20, 40}, wood)

	sim.SpawnFireSphere(m, mgl32.Vec3{30, 10, 32}, 3)
}

// setupWater builds a rock basin and drops a blob of water above it.
func setupWater(cfg Config, m *world.Manager) {
	c, _ := m.Chunk(world.ChunkPos{})
	rockFloor(c, 8)

	wall := voxel.RockVoxel(255)
	c.FillRegion([3]int{16, 8, 16}, [3]int{18, 24, 48}, wall)
	c.FillRegion([3]int{46, 8, 16}, [3]int{48, 24, 48}, wall)
	c.FillRegion([3]int{16, 8, 16}, [3]int{48, 24, 18}, wall)
	c.FillRegion([3]int{16, 8, 46}, [3]int{48, 24, 48}, wall)

	sim.SpawnWaterSphere(m, mgl32.Vec3{32, 40, 32}, 6)
}

// setupExplosion detonates a charge in the middle of a rock slab.
func setupExplosion(cfg Config, m *world.Manager) {
	c, _ := m.Chunk(world.ChunkPos{})
	rockFloor(c, 16)

	sim.SpawnExplosion(m, mgl32.Vec3{32, 24, 32}, 8)
}
