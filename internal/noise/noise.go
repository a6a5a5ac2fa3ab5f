// Package noise provides seeded coherent noise for procedural generation.
// Output is deterministic for a given seed.
package noise

import (
	"math"
	"math/rand/v2"
)

// Perlin is 3D gradient noise over a seeded permutation table. Values are
// roughly in [-1, 1].
type Perlin struct {
	perm [512]uint8
}

// NewPerlin builds gradient noise whose lattice is shuffled by seed.
func NewPerlin(seed uint64) *Perlin {
	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	r := rand.New(rand.NewPCG(seed, 0x9E3779B97F4A7C15))
	for i := len(base) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		base[i], base[j] = base[j], base[i]
	}

	p := &Perlin{}
	for i := range p.perm {
		p.perm[i] = base[i&255]
	}
	return p
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func grad(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// At samples the noise at a 3D point.
func (p *Perlin) At(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	a := int(p.perm[xi]) + yi
	aa := int(p.perm[a]) + zi
	ab := int(p.perm[a+1]) + zi
	b := int(p.perm[xi+1]) + yi
	ba := int(p.perm[b]) + zi
	bb := int(p.perm[b+1]) + zi

	return lerp(
		lerp(
			lerp(grad(p.perm[aa], xf, yf, zf), grad(p.perm[ba], xf-1, yf, zf), u),
			lerp(grad(p.perm[ab], xf, yf-1, zf), grad(p.perm[bb], xf-1, yf-1, zf), u),
			v,
		),
		lerp(
			lerp(grad(p.perm[aa+1], xf, yf, zf-1), grad(p.perm[ba+1], xf-1, yf, zf-1), u),
			lerp(grad(p.perm[ab+1], xf, yf-1, zf-1), grad(p.perm[bb+1], xf-1, yf-1, zf-1), u),
			v,
		),
		w,
	)
}

// FBM layers several octaves of Perlin noise into fractal Brownian motion.
type FBM struct {
	Octaves     int
	Lacunarity  float64
	Persistence float64

	noise *Perlin
}

// NewFBM builds seeded fractal noise with the given octave parameters.
func NewFBM(seed uint64, octaves int, lacunarity, persistence float64) *FBM {
	if octaves < 1 {
		octaves = 1
	}
	return &FBM{
		Octaves:     octaves,
		Lacunarity:  lacunarity,
		Persistence: persistence,
		noise:       NewPerlin(seed),
	}
}

// At samples the layered noise at a 3D point, normalized by the total
// amplitude so the result stays roughly in [-1, 1].
func (f *FBM) At(x, y, z float64) float64 {
	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0
	for i := 0; i < f.Octaves; i++ {
		sum += f.noise.At(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= f.Persistence
		freq *= f.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
