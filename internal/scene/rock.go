package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/core"
	"embervox/internal/volume"
)

func init() {
	core.Register("rock", func(cfg map[string]string) core.Scene {
		return NewRock(FromMap(cfg))
	})
}

// Map selection for the rock viewer.
const (
	MapDiffuse = iota
	MapNormal
	MapPosition
	mapCount
)

// RockScene renders a procedurally generated rock, spinning slowly around
// the vertical axis. Tab cycles between the diffuse, normal and position
// maps.
type RockScene struct {
	params   volume.RockParams
	vol      *volume.Volume
	rotation mgl32.Vec3
	spin     float32 // radians per second around y
	maps     *volume.RenderResult
	mode     int
	stale    bool
}

// NewRock builds the scene and generates its rock volume.
func NewRock(cfg Config) *RockScene {
	s := &RockScene{
		params: cfg.Rock,
		spin:   0.5,
		stale:  true,
	}
	s.vol = volume.GenerateRock(s.params)
	return s
}

// Name identifies the scene.
func (s *RockScene) Name() string { return "rock" }

// Size returns the output frame dimensions.
func (s *RockScene) Size() core.Size {
	return core.Size{W: s.params.Size, H: s.params.Size}
}

// Reset regenerates the rock with a new noise seed.
func (s *RockScene) Reset(seed int64) {
	s.params.Seed = uint64(seed)
	s.vol = volume.GenerateRock(s.params)
	s.rotation = mgl32.Vec3{}
	s.stale = true
}

// Advance spins the rock.
func (s *RockScene) Advance(dt time.Duration) {
	s.rotation[1] += s.spin * float32(dt.Seconds())
	s.stale = true
}

// CycleMap switches to the next output map.
func (s *RockScene) CycleMap() {
	s.mode = (s.mode + 1) % mapCount
}

// Frame writes the selected map into buf. The projection is only re-run
// when the rotation or volume changed since the last frame.
func (s *RockScene) Frame(buf []byte) {
	if s.stale {
		s.maps = volume.RenderMaps(s.vol, s.params.Size, s.rotation)
		s.stale = false
	}
	var src []byte
	switch s.mode {
	case MapNormal:
		src = s.maps.Normal
	case MapPosition:
		src = s.maps.Position
	default:
		src = s.maps.Diffuse
	}
	copy(buf, src)
}
