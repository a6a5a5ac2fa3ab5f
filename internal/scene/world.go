package scene

import (
	"time"

	"embervox/internal/core"
	"embervox/internal/render"
	"embervox/internal/sim"
	"embervox/internal/voxel"
	"embervox/internal/world"
)

// worldScene is the shared chassis for the element playgrounds: one origin
// chunk, a fixed-rate simulator, and a vertical cross-section view through
// the middle of the chunk.
type worldScene struct {
	name      string
	cfg       Config
	mgr       *world.Manager
	simulator *sim.Simulator
	setup     func(cfg Config, m *world.Manager)
	sliceZ    int
}

func newWorldScene(name string, cfg Config, setup func(Config, *world.Manager)) *worldScene {
	s := &worldScene{
		name:   name,
		cfg:    cfg,
		setup:  setup,
		sliceZ: world.ChunkSize / 2,
	}
	s.Reset(cfg.Seed)
	return s
}

// Name identifies the scene.
func (s *worldScene) Name() string { return s.name }

// Size returns the output frame dimensions.
func (s *worldScene) Size() core.Size {
	return core.Size{W: world.ChunkSize, H: world.ChunkSize}
}

// Reset rebuilds the world and reseeds the simulator.
func (s *worldScene) Reset(seed int64) {
	s.mgr = world.NewManager(s.cfg.LoadDistance, s.cfg.SimDistance)
	s.mgr.Ensure(world.ChunkPos{})
	s.setup(s.cfg, s.mgr)
	s.simulator = sim.New(s.cfg.Sim, seed)
	s.simulator.SetStepRate(s.cfg.StepRate)
}

// Advance feeds elapsed time to the fixed-rate simulation.
func (s *worldScene) Advance(dt time.Duration) {
	s.simulator.Advance(dt, s.mgr, world.ChunkPos{})
}

// Frame writes the origin chunk's cross-section into buf and acknowledges
// the chunk's dirty flag.
func (s *worldScene) Frame(buf []byte) {
	c, ok := s.mgr.Chunk(world.ChunkPos{})
	if !ok {
		return
	}
	render.FillChunkSliceRGBA(buf, c, s.sliceZ)
	c.ClearDirty()
}

// rockFloor lays a slab of rock across the bottom of the chunk.
func rockFloor(c *world.Chunk, height int) {
	c.FillRegion(
		[3]int{0, 0, 0},
		[3]int{world.ChunkSize, height, world.ChunkSize},
		voxel.RockVoxel(255),
	)
}
