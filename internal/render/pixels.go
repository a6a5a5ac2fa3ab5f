// Package render converts world and volume state into RGBA pixel buffers,
// and (under the ebiten build tag) uploads them to the screen.
package render

import (
	"embervox/internal/voxel"
	"embervox/internal/world"
)

// FillChunkSliceRGBA writes a vertical cross-section of the chunk at depth z
// into buf, which must hold ChunkSize*ChunkSize*4 bytes. Rows are flipped so
// that increasing voxel y points up on screen. Air renders transparent.
func FillChunkSliceRGBA(buf []byte, c *world.Chunk, z int) {
	if len(buf) < world.ChunkSize*world.ChunkSize*4 {
		return
	}
	for y := 0; y < world.ChunkSize; y++ {
		row := world.ChunkSize - 1 - y
		for x := 0; x < world.ChunkSize; x++ {
			v, _ := c.Voxel(x, y, z)
			base := (row*world.ChunkSize + x) * 4
			if v.IsEmpty() {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			col := v.Material().Color()
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// FillChunkTopRGBA writes a top-down view of the chunk into buf: for each
// column the highest non-air voxel wins. Columns of pure air render
// transparent.
func FillChunkTopRGBA(buf []byte, c *world.Chunk) {
	if len(buf) < world.ChunkSize*world.ChunkSize*4 {
		return
	}
	for z := 0; z < world.ChunkSize; z++ {
		for x := 0; x < world.ChunkSize; x++ {
			base := (z*world.ChunkSize + x) * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			for y := world.ChunkSize - 1; y >= 0; y-- {
				v, _ := c.Voxel(x, y, z)
				if v.Material() == voxel.Air {
					continue
				}
				col := v.Material().Color()
				buf[base+0] = col.R
				buf[base+1] = col.G
				buf[base+2] = col.B
				buf[base+3] = col.A
				break
			}
		}
	}
}
