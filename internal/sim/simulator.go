// Package sim implements the cellular-automaton simulation of dynamic
// materials (fire, smoke, water, debris) inside world chunks, plus the
// spawning API that injects them.
package sim

import (
	"strconv"
	"time"

	vcore "embervox/internal/core"
	"embervox/internal/voxel"
	"embervox/internal/world"
	"embervox/pkg/core"
)

// DefaultStepRate is the automaton tick rate in steps per second.
const DefaultStepRate = 15

// Params holds the per-material transition probabilities.
type Params struct {
	FireSmokeChance   float64 `yaml:"fire_smoke_chance"`
	FireSpreadChance  float64 `yaml:"fire_spread_chance"`
	SmokeFadeChance   float64 `yaml:"smoke_fade_chance"`
	SmokeRiseChance   float64 `yaml:"smoke_rise_chance"`
	WaterSpreadChance float64 `yaml:"water_spread_chance"`
}

// DefaultParams returns the standard transition probabilities.
func DefaultParams() Params {
	return Params{
		FireSmokeChance:   0.05,
		FireSpreadChance:  0.25,
		SmokeFadeChance:   0.02,
		SmokeRiseChance:   0.30,
		WaterSpreadChance: 0.50,
	}
}

// FromMap populates params from flag-style key/value pairs.
func FromMap(cfg map[string]string) Params {
	return Apply(DefaultParams(), cfg)
}

// Apply overlays flag-style key/value pairs on top of base. Keys that are
// absent, unparseable or out of [0, 1] leave the base value untouched.
func Apply(base Params, cfg map[string]string) Params {
	p := base
	if cfg == nil {
		return p
	}
	read := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*dst = parsed
			}
		}
	}
	read("fire_smoke_chance", &p.FireSmokeChance)
	read("fire_spread_chance", &p.FireSpreadChance)
	read("smoke_fade_chance", &p.SmokeFadeChance)
	read("smoke_rise_chance", &p.SmokeRiseChance)
	read("water_spread_chance", &p.WaterSpreadChance)
	return p
}

// Simulator steps dynamic materials at a fixed rate. All random and timing
// state is carried here, so two simulators with the same seed and inputs
// evolve identically.
type Simulator struct {
	params Params
	rng    *core.RNG
	timer  *vcore.FixedStep
}

// New constructs a simulator with an explicit seed.
func New(params Params, seed int64) *Simulator {
	return &Simulator{
		params: params,
		rng:    core.NewRNG(seed),
		timer:  vcore.NewFixedStep(DefaultStepRate),
	}
}

// SetStepRate changes the automaton tick rate.
func (s *Simulator) SetStepRate(rate int) { s.timer.SetRate(rate) }

// Advance accumulates elapsed time and runs as many whole steps as fit,
// carrying any remainder forward. Returns the number of steps run.
func (s *Simulator) Advance(dt time.Duration, m *world.Manager, ref world.ChunkPos) int {
	n := s.timer.Advance(dt)
	for i := 0; i < n; i++ {
		s.Step(m, ref)
	}
	return n
}

// Step runs one automaton step over every chunk that has dynamic elements
// and lies within the manager's simulation radius of ref.
func (s *Simulator) Step(m *world.Manager, ref world.ChunkPos) {
	for _, c := range m.All() {
		if !c.NeedsSimulation() {
			continue
		}
		if !m.ShouldSimulate(c.Pos, ref) {
			continue
		}
		s.StepChunk(c)
	}
}

// change is one queued voxel transition.
type change struct {
	x, y, z int
	v       voxel.Voxel
}

// StepChunk runs one automaton step over a single chunk. The whole grid is
// scanned against a consistent pre-step snapshot; queued transitions are
// applied only after the scan completes.
func (s *Simulator) StepChunk(c *world.Chunk) {
	var changes []change
	for z := 0; z < world.ChunkSize; z++ {
		for y := 0; y < world.ChunkSize; y++ {
			for x := 0; x < world.ChunkSize; x++ {
				v, _ := c.Voxel(x, y, z)
				switch v.Material() {
				case voxel.Fire:
					changes = s.stepFire(c, x, y, z, v, changes)
				case voxel.Smoke:
					changes = s.stepSmoke(c, x, y, z, v, changes)
				case voxel.Water:
					changes = s.stepWater(c, x, y, z, v, changes)
				case voxel.Debris:
					// Debris is classified dynamic but currently has no
					// transition rule.
				}
			}
		}
	}
	for _, ch := range changes {
		c.SetVoxel(ch.x, ch.y, ch.z, ch.v)
	}
}

var horizontal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// pickNeighbor returns one of the four horizontal neighbors uniformly.
func (s *Simulator) pickNeighbor(x, z int) (int, int) {
	d := horizontal[s.rng.IntN(4)]
	return x + d[0], z + d[1]
}

// stepFire: smolder into smoke, rise into empty space, or spread sideways.
func (s *Simulator) stepFire(c *world.Chunk, x, y, z int, v voxel.Voxel, changes []change) []change {
	if s.rng.Float64() < s.params.FireSmokeChance {
		return append(changes, change{x, y, z, voxel.New(voxel.Smoke, 200, 150, voxel.FlagNone)})
	}

	if above, ok := c.Voxel(x, y+1, z); ok && above.IsEmpty() {
		changes = append(changes, change{x, y, z, voxel.AirVoxel()})
		return append(changes, change{x, y + 1, z, v})
	}

	if s.rng.Float64() < s.params.FireSpreadChance {
		nx, nz := s.pickNeighbor(x, z)
		if n, ok := c.Voxel(nx, y, nz); ok {
			switch n.Material() {
			case voxel.Air:
				changes = append(changes, change{nx, y, nz, voxel.New(voxel.Fire, 255, 200, voxel.FlagNone)})
			case voxel.Wood:
				changes = append(changes, change{nx, y, nz, voxel.New(voxel.Fire, 255, 250, voxel.FlagNone)})
			}
		}
	}
	return changes
}

// stepSmoke: dissipate, or drift upward.
func (s *Simulator) stepSmoke(c *world.Chunk, x, y, z int, v voxel.Voxel, changes []change) []change {
	if s.rng.Float64() < s.params.SmokeFadeChance {
		return append(changes, change{x, y, z, voxel.AirVoxel()})
	}

	if s.rng.Float64() < s.params.SmokeRiseChance {
		if above, ok := c.Voxel(x, y+1, z); ok && above.IsEmpty() {
			changes = append(changes, change{x, y, z, voxel.AirVoxel()})
			changes = append(changes, change{x, y + 1, z, v})
		}
	}
	return changes
}

// stepWater: fall, extinguish fire below, or spread sideways.
func (s *Simulator) stepWater(c *world.Chunk, x, y, z int, v voxel.Voxel, changes []change) []change {
	if below, ok := c.Voxel(x, y-1, z); ok {
		switch below.Material() {
		case voxel.Air:
			changes = append(changes, change{x, y, z, voxel.AirVoxel()})
			return append(changes, change{x, y - 1, z, v})
		case voxel.Fire:
			// The water is consumed quenching the fire.
			changes = append(changes, change{x, y, z, voxel.AirVoxel()})
			return append(changes, change{x, y - 1, z, voxel.New(voxel.Smoke, 150, 50, voxel.FlagNone)})
		}
	}

	if s.rng.Float64() < s.params.WaterSpreadChance {
		nx, nz := s.pickNeighbor(x, z)
		if n, ok := c.Voxel(nx, y, nz); ok && n.IsEmpty() {
			changes = append(changes, change{nx, y, nz, v})
		}
	}
	return changes
}
