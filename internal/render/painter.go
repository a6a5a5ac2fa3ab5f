//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a scene frame buffer.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a frame of size w*h pixels.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided RGBA buffer into the painter image and draws it
// scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, buf []byte, scale int) {
	if len(buf) != gp.w*gp.h*4 {
		return
	}
	gp.img.WritePixels(buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
