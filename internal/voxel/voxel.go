package voxel

import "image/color"

// Material identifies what a voxel cell is made of.
type Material uint8

const (
	Air Material = iota
	Rock
	Dirt
	Wood
	Metal
	Fire
	Smoke
	Water
	Debris

	materialCount
)

// MaterialFromU8 maps a raw tag to a Material. Unknown tags decode to Air so
// version-mismatched packed data degrades instead of crashing.
func MaterialFromU8(v uint8) Material {
	if v >= uint8(materialCount) {
		return Air
	}
	return Material(v)
}

// IsSolid reports whether the material blocks movement.
func (m Material) IsSolid() bool {
	switch m {
	case Rock, Dirt, Wood, Metal:
		return true
	}
	return false
}

// IsDynamic reports whether the material requires per-step simulation.
func (m Material) IsDynamic() bool {
	switch m {
	case Fire, Smoke, Water, Debris:
		return true
	}
	return false
}

// Color returns the display color used by palette renderers.
func (m Material) Color() color.RGBA {
	switch m {
	case Rock:
		return color.RGBA{128, 128, 128, 255}
	case Dirt:
		return color.RGBA{102, 77, 51, 255}
	case Wood:
		return color.RGBA{153, 102, 51, 255}
	case Metal:
		return color.RGBA{179, 179, 204, 255}
	case Fire:
		return color.RGBA{255, 128, 26, 255}
	case Smoke:
		return color.RGBA{51, 51, 51, 128}
	case Water:
		return color.RGBA{51, 102, 204, 153}
	case Debris:
		return color.RGBA{153, 128, 102, 255}
	}
	return color.RGBA{}
}

// Flag bits stored in the voxel's high byte.
const (
	FlagNone        uint8 = 0
	FlagCollision   uint8 = 1 << 0
	FlagEmitsLight  uint8 = 1 << 1
	FlagTemporary   uint8 = 1 << 2
	FlagStatic      uint8 = 1 << 3
	FlagTransparent uint8 = 1 << 4
)

// Voxel packs material, density, temperature and flags into one 32-bit word.
// Layout: material bits 0-7, density 8-15, temperature 16-23, flags 24-31.
// External buffers rely on this exact packing, so it must not change.
type Voxel uint32

// New constructs a voxel from its four fields.
func New(m Material, density, temperature, flags uint8) Voxel {
	return Voxel(uint32(m) | uint32(density)<<8 | uint32(temperature)<<16 | uint32(flags)<<24)
}

// AirVoxel returns an empty voxel. It is the zero value of Voxel.
func AirVoxel() Voxel { return New(Air, 0, 0, FlagNone) }

// RockVoxel returns a static rock voxel with the given density.
func RockVoxel(density uint8) Voxel {
	return New(Rock, density, 0, FlagCollision|FlagStatic)
}

// FromU32 reinterprets a raw packed value as a voxel. Every bit pattern is a
// valid voxel.
func FromU32(raw uint32) Voxel { return Voxel(raw) }

// U32 returns the raw packed value for upload or storage.
func (v Voxel) U32() uint32 { return uint32(v) }

// Material returns the decoded material tag.
func (v Voxel) Material() Material { return MaterialFromU8(uint8(v)) }

// Density returns the density byte (0-255).
func (v Voxel) Density() uint8 { return uint8(v >> 8) }

// Temperature returns the temperature byte (0-255).
func (v Voxel) Temperature() uint8 { return uint8(v >> 16) }

// Flags returns the flag bitmask.
func (v Voxel) Flags() uint8 { return uint8(v >> 24) }

// WithMaterial replaces the material tag, leaving the other fields intact.
func (v Voxel) WithMaterial(m Material) Voxel {
	return Voxel(uint32(v)&0xFFFFFF00 | uint32(m))
}

// WithDensity replaces the density byte.
func (v Voxel) WithDensity(density uint8) Voxel {
	return Voxel(uint32(v)&0xFFFF00FF | uint32(density)<<8)
}

// WithTemperature replaces the temperature byte.
func (v Voxel) WithTemperature(temperature uint8) Voxel {
	return Voxel(uint32(v)&0xFF00FFFF | uint32(temperature)<<16)
}

// WithFlags replaces the flag bitmask.
func (v Voxel) WithFlags(flags uint8) Voxel {
	return Voxel(uint32(v)&0x00FFFFFF | uint32(flags)<<24)
}

// HasFlag reports whether all bits of flag are set.
func (v Voxel) HasFlag(flag uint8) bool { return v.Flags()&flag != 0 }

// AddFlag returns the voxel with flag bits ORed in.
func (v Voxel) AddFlag(flag uint8) Voxel { return v.WithFlags(v.Flags() | flag) }

// RemoveFlag returns the voxel with flag bits cleared.
func (v Voxel) RemoveFlag(flag uint8) Voxel { return v.WithFlags(v.Flags() &^ flag) }

// IsEmpty reports whether the voxel is air.
func (v Voxel) IsEmpty() bool { return v.Material() == Air }

// IsSolid reports whether the voxel blocks movement, either through the
// collision flag or a solid material tag.
func (v Voxel) IsSolid() bool { return v.HasFlag(FlagCollision) || v.Material().IsSolid() }
