package volume

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// marchStep is the fixed ray step in world units. Tuned alongside
	// hitThreshold; changing either changes every rendered map.
	marchStep = 0.75
	// hitThreshold is the density above which a sample counts as solid.
	hitThreshold = 0.3
)

// RenderResult carries the three RGBA8 raster maps produced by RenderMaps,
// row-major with the origin at the top left. The caller owns the buffers.
type RenderResult struct {
	Position []byte
	Normal   []byte
	Diffuse  []byte
	Width    int
	Height   int
}

// rotationMatrix composes Euler angles as Z·Y·X: roll first in local space,
// then pitch, then yaw.
func rotationMatrix(r mgl32.Vec3) mgl32.Mat3 {
	return mgl32.Rotate3DZ(r.Z()).Mul3(mgl32.Rotate3DY(r.Y())).Mul3(mgl32.Rotate3DX(r.X()))
}

// RenderMaps projects a rotated density field onto 2D position, normal and
// diffuse maps by orthographic raymarching. The output is square with side
// outputSize. Identical inputs produce bit-identical buffers.
func RenderMaps(vol *Volume, outputSize int, rotation mgl32.Vec3) *RenderResult {
	w, h := outputSize, outputSize
	res := &RenderResult{
		Position: make([]byte, w*h*4),
		Normal:   make([]byte, w*h*4),
		Diffuse:  make([]byte, w*h*4),
		Width:    w,
		Height:   h,
	}

	size := float32(vol.W)
	center := mgl32.Vec3{size / 2, size / 2, size / 2}

	forward := rotationMatrix(rotation)
	inverse := rotationMatrix(rotation.Mul(-1))

	rayDir := mgl32.Vec3{0, 0, 1}
	maxSteps := int(size * 1.5)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			idx := (py*w + px) * 4

			sx := (float32(px)/float32(w) - 0.5) * size
			sy := (float32(py)/float32(h) - 0.5) * size
			origin := mgl32.Vec3{sx, sy, -size}

			hit := false
			var hitPos mgl32.Vec3
			var vx, vy, vz int

			for step := 0; step < maxSteps; step++ {
				p := origin.Add(rayDir.Mul(float32(step) * marchStep))

				// Rotate the sample back into the volume's local space.
				rp := inverse.Mul3x1(p).Add(center)
				if rp.X() < 0 || rp.X() >= size ||
					rp.Y() < 0 || rp.Y() >= size ||
					rp.Z() < 0 || rp.Z() >= size {
					continue
				}

				vx, vy, vz = int(rp.X()), int(rp.Y()), int(rp.Z())
				if vol.Get(vx, vy, vz) > hitThreshold {
					hit = true
					hitPos = rp
					break
				}
			}

			if !hit {
				// Buffers start zeroed, so a miss stays fully transparent.
				continue
			}

			res.Position[idx+0] = uint8(hitPos.X() / size * 255)
			res.Position[idx+1] = uint8(hitPos.Y() / size * 255)
			res.Position[idx+2] = uint8(hitPos.Z() / size * 255)
			res.Position[idx+3] = 255

			normal := forward.Mul3x1(vol.Gradient(vx, vy, vz))
			res.Normal[idx+0] = uint8((normal.X()*0.5 + 0.5) * 255)
			res.Normal[idx+1] = uint8((normal.Y()*0.5 + 0.5) * 255)
			res.Normal[idx+2] = uint8((normal.Z()*0.5 + 0.5) * 255)
			res.Normal[idx+3] = 255

			// Base gray with height-based brightness variation.
			shade := 0.5 + 0.2*hitPos.Y()/size
			res.Diffuse[idx+0] = uint8(shade * 180)
			res.Diffuse[idx+1] = uint8(shade * 170)
			res.Diffuse[idx+2] = uint8(shade * 160)
			res.Diffuse[idx+3] = 255
		}
	}
	return res
}
