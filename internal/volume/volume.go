// Package volume models a continuous density field sampled from a discrete 3D
// grid, plus the procedural generator and the orthographic projector that
// flattens a field into 2D raster maps.
package volume

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Volume stores a dense 3D grid of density values. 0 is empty space, 1 is
// fully solid.
type Volume struct {
	W, H, D int
	data    []float32
}

// New allocates a zeroed volume with the given dimensions.
func New(w, h, d int) *Volume {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if d <= 0 {
		d = 1
	}
	return &Volume{W: w, H: h, D: d, data: make([]float32, w*h*d)}
}

// Data exposes the backing slice so callers can read values directly.
func (v *Volume) Data() []float32 { return v.data }

// Index returns the linear slice index for coordinates (x, y, z).
func (v *Volume) Index(x, y, z int) int { return z*v.W*v.H + y*v.W + x }

// Get returns the density at a lattice point, or 0 outside the volume.
func (v *Volume) Get(x, y, z int) float32 {
	if x < 0 || x >= v.W || y < 0 || y >= v.H || z < 0 || z >= v.D {
		return 0
	}
	return v.data[v.Index(x, y, z)]
}

// Set writes the density at a lattice point. Out-of-range writes are a no-op.
func (v *Volume) Set(x, y, z int, val float32) {
	if x < 0 || x >= v.W || y < 0 || y >= v.H || z < 0 || z >= v.D {
		return
	}
	v.data[v.Index(x, y, z)] = val
}

// Sample returns the trilinearly interpolated density at a fractional
// position, clamped to the valid lattice range on every axis.
func (v *Volume) Sample(p mgl32.Vec3) float32 {
	x := clampF(float64(p.X()), 0, float64(v.W-1))
	y := clampF(float64(p.Y()), 0, float64(v.H-1))
	z := clampF(float64(p.Z()), 0, float64(v.D-1))

	x0, y0, z0 := int(math.Floor(x)), int(math.Floor(y)), int(math.Floor(z))
	x1 := minInt(x0+1, v.W-1)
	y1 := minInt(y0+1, v.H-1)
	z1 := minInt(z0+1, v.D-1)

	fx := float32(x - math.Floor(x))
	fy := float32(y - math.Floor(y))
	fz := float32(z - math.Floor(z))

	c000 := v.Get(x0, y0, z0)
	c100 := v.Get(x1, y0, z0)
	c010 := v.Get(x0, y1, z0)
	c110 := v.Get(x1, y1, z0)
	c001 := v.Get(x0, y0, z1)
	c101 := v.Get(x1, y0, z1)
	c011 := v.Get(x0, y1, z1)
	c111 := v.Get(x1, y1, z1)

	c00 := c000*(1-fx) + c100*fx
	c01 := c001*(1-fx) + c101*fx
	c10 := c010*(1-fx) + c110*fx
	c11 := c011*(1-fx) + c111*fx

	c0 := c00*(1-fy) + c10*fy
	c1 := c01*(1-fy) + c11*fy

	return c0*(1-fz) + c1*fz
}

// up is the fallback normal for flat or empty regions.
var up = mgl32.Vec3{0, 1, 0}

// Gradient returns the unit surface normal at a lattice point using central
// differences, pointing away from solid material. Axes touching the volume
// boundary contribute zero; a degenerate gradient yields the up vector.
func (v *Volume) Gradient(x, y, z int) mgl32.Vec3 {
	var dx, dy, dz float32
	if x > 0 && x < v.W-1 {
		dx = (v.Get(x+1, y, z) - v.Get(x-1, y, z)) / 2
	}
	if y > 0 && y < v.H-1 {
		dy = (v.Get(x, y+1, z) - v.Get(x, y-1, z)) / 2
	}
	if z > 0 && z < v.D-1 {
		dz = (v.Get(x, y, z+1) - v.Get(x, y, z-1)) / 2
	}

	n := mgl32.Vec3{-dx, -dy, -dz}
	if n.LenSqr() > 1e-4 {
		return n.Normalize()
	}
	return up
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
