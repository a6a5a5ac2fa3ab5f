package sim

import (
	"slices"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/voxel"
	"embervox/internal/world"
)

func singleChunkManager() (*world.Manager, *world.Chunk) {
	m := world.NewManager(4, 2)
	c := m.Ensure(world.ChunkPos{})
	return m, c
}

func TestStaticChunkUnchanged(t *testing.T) {
	sim := New(DefaultParams(), 1)
	c := world.NewChunk(world.ChunkPos{})
	c.SetVoxel(10, 10, 10, voxel.RockVoxel(255))
	c.SetVoxel(11, 10, 10, voxel.New(voxel.Wood, 200, 20, voxel.FlagCollision))
	c.RescanDynamic()

	before := c.U32Slice()
	sim.StepChunk(c)
	if !slices.Equal(before, c.U32Slice()) {
		t.Fatal("chunk with only static materials changed during a step")
	}
}

func TestWaterFallsUnconditionally(t *testing.T) {
	sim := New(DefaultParams(), 7)
	c := world.NewChunk(world.ChunkPos{})
	water := WaterElement.Voxel()
	c.SetVoxel(5, 20, 5, water)

	sim.StepChunk(c)

	if v, _ := c.Voxel(5, 20, 5); !v.IsEmpty() {
		t.Fatalf("water did not vacate its cell, material %v", v.Material())
	}
	if v, _ := c.Voxel(5, 19, 5); v != water {
		t.Fatalf("water did not land one cell down, got %v", v.Material())
	}
}

func TestWaterQuenchesFire(t *testing.T) {
	sim := New(DefaultParams(), 7)
	c := world.NewChunk(world.ChunkPos{})
	c.SetVoxel(5, 21, 5, WaterElement.Voxel())
	c.SetVoxel(5, 20, 5, FireElement.Voxel())
	// Keep the fire from moving before the water reaches it.
	c.SetVoxel(5, 22, 5, voxel.RockVoxel(255))

	sim.params = Params{} // zero probabilities, only unconditional rules fire

	sim.StepChunk(c)

	if v, _ := c.Voxel(5, 21, 5); !v.IsEmpty() {
		t.Fatalf("quenching water was not consumed, material %v", v.Material())
	}
	v, _ := c.Voxel(5, 20, 5)
	if v.Material() != voxel.Smoke {
		t.Fatalf("fire under water became %v, want smoke", v.Material())
	}
	if v.Density() != 150 || v.Temperature() != 50 {
		t.Fatalf("quench smoke packed (%d, %d), want (150, 50)", v.Density(), v.Temperature())
	}
}

func TestFireRisesIntoEmptySpace(t *testing.T) {
	params := DefaultParams()
	params.FireSmokeChance = 0 // rule out smoldering so the rise is certain
	sim := New(params, 3)

	c := world.NewChunk(world.ChunkPos{})
	fire := FireElement.Voxel()
	c.SetVoxel(8, 30, 8, fire)

	sim.StepChunk(c)

	if v, _ := c.Voxel(8, 30, 8); !v.IsEmpty() {
		t.Fatalf("rising fire left %v behind", v.Material())
	}
	if v, _ := c.Voxel(8, 31, 8); v != fire {
		t.Fatalf("fire did not rise, got %v", v.Material())
	}
}

func TestFireSpreadsWhenBlocked(t *testing.T) {
	params := DefaultParams()
	params.FireSmokeChance = 0
	params.FireSpreadChance = 1
	sim := New(params, 3)

	c := world.NewChunk(world.ChunkPos{})
	c.SetVoxel(8, 30, 8, FireElement.Voxel())
	c.SetVoxel(8, 31, 8, voxel.RockVoxel(255)) // cap so it cannot rise

	sim.StepChunk(c)

	lit := 0
	for _, d := range horizontal {
		if v, _ := c.Voxel(8+d[0], 30, 8+d[1]); v.Material() == voxel.Fire {
			lit++
			if v.Temperature() != 200 {
				t.Fatalf("air ignited at temperature %d, want 200", v.Temperature())
			}
		}
	}
	if lit != 1 {
		t.Fatalf("fire ignited %d neighbors, want exactly 1", lit)
	}
}

func TestFireIgnitesWoodHotter(t *testing.T) {
	params := DefaultParams()
	params.FireSmokeChance = 0
	params.FireSpreadChance = 1
	sim := New(params, 11)

	c := world.NewChunk(world.ChunkPos{})
	c.SetVoxel(8, 30, 8, FireElement.Voxel())
	c.SetVoxel(8, 31, 8, voxel.RockVoxel(255))
	wood := voxel.New(voxel.Wood, 200, 20, voxel.FlagCollision)
	for _, d := range horizontal {
		c.SetVoxel(8+d[0], 30, 8+d[1], wood)
	}

	sim.StepChunk(c)

	lit := 0
	for _, d := range horizontal {
		if v, _ := c.Voxel(8+d[0], 30, 8+d[1]); v.Material() == voxel.Fire {
			lit++
			if v.Temperature() != 250 {
				t.Fatalf("wood ignited at temperature %d, want 250", v.Temperature())
			}
		}
	}
	if lit != 1 {
		t.Fatalf("fire ignited %d wood neighbors, want exactly 1", lit)
	}
}

func TestSmokeFades(t *testing.T) {
	params := DefaultParams()
	params.SmokeFadeChance = 1
	sim := New(params, 5)

	c := world.NewChunk(world.ChunkPos{})
	c.SetVoxel(2, 2, 2, SmokeElement.Voxel())

	sim.StepChunk(c)

	if v, _ := c.Voxel(2, 2, 2); !v.IsEmpty() {
		t.Fatalf("smoke did not dissipate, material %v", v.Material())
	}
}

func TestSmokeRises(t *testing.T) {
	params := DefaultParams()
	params.SmokeFadeChance = 0
	params.SmokeRiseChance = 1
	sim := New(params, 5)

	c := world.NewChunk(world.ChunkPos{})
	smoke := SmokeElement.Voxel()
	c.SetVoxel(2, 2, 2, smoke)

	sim.StepChunk(c)

	if v, _ := c.Voxel(2, 2, 2); !v.IsEmpty() {
		t.Fatalf("rising smoke left %v behind", v.Material())
	}
	if v, _ := c.Voxel(2, 3, 2); v != smoke {
		t.Fatalf("smoke did not rise, got %v", v.Material())
	}
}

func TestWaterSpreadsOnFloor(t *testing.T) {
	params := DefaultParams()
	params.WaterSpreadChance = 1
	sim := New(params, 9)

	c := world.NewChunk(world.ChunkPos{})
	water := WaterElement.Voxel()
	c.SetVoxel(8, 11, 8, water)
	rock := voxel.RockVoxel(255)
	for x := 6; x <= 10; x++ {
		for z := 6; z <= 10; z++ {
			c.SetVoxel(x, 10, z, rock)
		}
	}

	sim.StepChunk(c)

	if v, _ := c.Voxel(8, 11, 8); v != water {
		t.Fatal("spreading water should keep its source cell")
	}
	spread := 0
	for _, d := range horizontal {
		if v, _ := c.Voxel(8+d[0], 11, 8+d[1]); v == water {
			spread++
		}
	}
	if spread != 1 {
		t.Fatalf("water spread to %d neighbors, want exactly 1", spread)
	}
}

func TestStepHonorsSimulationRadius(t *testing.T) {
	m := world.NewManager(4, 1)
	near := m.Ensure(world.ChunkPos{X: 1})
	far := m.Ensure(world.ChunkPos{X: 3})
	near.SetVoxel(5, 20, 5, WaterElement.Voxel())
	far.SetVoxel(5, 20, 5, WaterElement.Voxel())
	farBefore := far.U32Slice()

	sim := New(DefaultParams(), 1)
	sim.Step(m, world.ChunkPos{})

	if v, _ := near.Voxel(5, 19, 5); v.Material() != voxel.Water {
		t.Fatal("chunk inside the simulation radius was not stepped")
	}
	if !slices.Equal(farBefore, far.U32Slice()) {
		t.Fatal("chunk outside the simulation radius was stepped")
	}
}

func TestStepSkipsChunksWithoutDynamics(t *testing.T) {
	m, c := singleChunkManager()
	c.SetVoxel(0, 0, 0, voxel.RockVoxel(255))
	c.RescanDynamic()
	c.ClearDirty()

	sim := New(DefaultParams(), 1)
	sim.Step(m, world.ChunkPos{})

	if c.Dirty() {
		t.Fatal("static chunk was dirtied by a step that should have skipped it")
	}
}

func TestAdvanceRunsWholeSteps(t *testing.T) {
	m, c := singleChunkManager()
	c.SetVoxel(5, 20, 5, WaterElement.Voxel())

	sim := New(DefaultParams(), 1)
	if n := sim.Advance(40*time.Millisecond, m, world.ChunkPos{}); n != 0 {
		t.Fatalf("40ms at 15 steps/s ran %d steps, want 0", n)
	}
	if n := sim.Advance(30*time.Millisecond, m, world.ChunkPos{}); n != 1 {
		t.Fatalf("70ms accumulated ran %d steps, want 1", n)
	}
	if v, _ := c.Voxel(5, 19, 5); v.Material() != voxel.Water {
		t.Fatal("water did not fall after one accumulated step")
	}
}

func TestSpawnSphereAcrossChunks(t *testing.T) {
	m := world.NewManager(4, 2)
	a := m.Ensure(world.ChunkPos{})
	b := m.Ensure(world.ChunkPos{X: 1})
	a.RescanDynamic()
	b.RescanDynamic()

	// Sphere straddling the x=64 chunk boundary.
	SpawnFireSphere(m, mgl32.Vec3{64, 32, 32}, 3)

	if v, _ := a.Voxel(62, 32, 32); v.Material() != voxel.Fire {
		t.Fatal("sphere did not reach the low chunk")
	}
	if v, _ := b.Voxel(1, 32, 32); v.Material() != voxel.Fire {
		t.Fatal("sphere did not reach the high chunk")
	}
	if !a.NeedsSimulation() || !b.NeedsSimulation() {
		t.Fatal("spawning fire did not mark both chunks dynamic")
	}
}

func TestSpawnSphereSkipsUnregisteredChunks(t *testing.T) {
	m := world.NewManager(4, 2)
	m.Ensure(world.ChunkPos{})

	// Touches chunk (1,0,0) which is not registered. Must not create it.
	SpawnFireSphere(m, mgl32.Vec3{64, 32, 32}, 3)

	if m.Count() != 1 {
		t.Fatalf("spawn created chunks, count %d, want 1", m.Count())
	}
}

func TestSpawnExplosionLayering(t *testing.T) {
	m, c := singleChunkManager()

	center := mgl32.Vec3{32, 32, 32}
	SpawnExplosion(m, center, 10)

	// Debris is written last and its sphere covers everything, so the
	// center ends up as debris.
	if v, _ := c.Voxel(32, 32, 32); v.Material() != voxel.Debris {
		t.Fatalf("explosion center is %v, want debris", v.Material())
	}
	// Outside the smoke radius but inside 1.2x only debris can appear.
	if v, _ := c.Voxel(43, 32, 32); v.Material() != voxel.Debris {
		t.Fatalf("explosion rim is %v, want debris", v.Material())
	}
	// Well outside 1.2x nothing is written.
	if v, _ := c.Voxel(46, 32, 32); !v.IsEmpty() {
		t.Fatalf("voxel beyond the blast is %v, want air", v.Material())
	}
}

func TestSpawnFireLine(t *testing.T) {
	m, c := singleChunkManager()

	SpawnFireLine(m, mgl32.Vec3{10, 32, 32}, mgl32.Vec3{20, 32, 32}, 1)

	for x := 10; x <= 20; x++ {
		if v, _ := c.Voxel(x, 32, 32); v.Material() != voxel.Fire {
			t.Fatalf("line gap at x=%d, material %v", x, v.Material())
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	p := FromMap(map[string]string{
		"fire_spread_chance": "0.9",
		"smoke_fade_chance":  "bogus",
		"water_spread_chance": "1.5", // out of range, ignored
	})
	if p.FireSpreadChance != 0.9 {
		t.Fatalf("fire_spread_chance = %v, want 0.9", p.FireSpreadChance)
	}
	if p.SmokeFadeChance != DefaultParams().SmokeFadeChance {
		t.Fatal("unparseable value should keep the default")
	}
	if p.WaterSpreadChance != DefaultParams().WaterSpreadChance {
		t.Fatal("out-of-range value should keep the default")
	}
}
