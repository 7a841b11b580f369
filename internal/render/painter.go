//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"terragen/internal/terrain"
)

// TerrainPainter uploads a pixel buffer into a single RGBA image and draws it.
type TerrainPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewTerrainPainter allocates a painter for a terrain of size w*h.
func NewTerrainPainter(w, h int) *TerrainPainter {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	tp := &TerrainPainter{w: w, h: h}
	tp.img = ebiten.NewImage(w, h)
	return tp
}

// Blit uploads the buffer into the painter image and draws it scaled.
func (tp *TerrainPainter) Blit(dst *ebiten.Image, buf *terrain.PixelBuffer, scale int) {
	if buf == nil || buf.W != tp.w || buf.H != tp.h {
		return
	}
	if scale < 1 {
		scale = 1
	}
	tp.img.WritePixels(buf.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image.
func (tp *TerrainPainter) Size() (int, int) { return tp.w, tp.h }
