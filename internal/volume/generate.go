package volume

import (
	"math"

	"embervox/internal/noise"
)

// RockParams configures procedural rock generation. All fields are plain
// numbers so the struct can be loaded from a config file or flags.
type RockParams struct {
	Size        int     `yaml:"size"`
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
	Threshold   float64 `yaml:"threshold"`
	Seed        uint64  `yaml:"seed"`
}

// DefaultRockParams returns the standard rock configuration.
func DefaultRockParams() RockParams {
	return RockParams{
		Size:        64,
		Scale:       4.0,
		Octaves:     4,
		Lacunarity:  2.0,
		Persistence: 0.5,
		Threshold:   0.0,
		Seed:        42,
	}
}

// GenerateRock produces a rough, pitted sphere by combining an implicit
// sphere falloff with fractal noise. Identical params yield a bit-identical
// volume.
func GenerateRock(p RockParams) *Volume {
	vol := New(p.Size, p.Size, p.Size)
	fbm := noise.NewFBM(p.Seed, p.Octaves, p.Lacunarity, p.Persistence)

	center := float64(p.Size) / 2
	radius := center * 0.8
	size := float64(p.Size)

	for z := 0; z < p.Size; z++ {
		for y := 0; y < p.Size; y++ {
			for x := 0; x < p.Size; x++ {
				px := float64(x) - center
				py := float64(y) - center
				pz := float64(z) - center

				dist := math.Sqrt(px*px + py*py + pz*pz)
				sphere := 1 - clampF(dist/radius, 0, 1)

				n := fbm.At(px/size*p.Scale, py/size*p.Scale, pz/size*p.Scale)

				density := sphere + n*0.3
				if density <= p.Threshold {
					density = 0
				}
				vol.Set(x, y, z, float32(clampF(density, 0, 1)))
			}
		}
	}
	return vol
}
