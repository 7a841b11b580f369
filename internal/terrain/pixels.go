package terrain

import (
	"image/color"

	"terragen/internal/core"
)

// PixelBuffer holds a row-major RGBA image: four bytes per pixel, pixel
// (x, y) at offset 4*(y*W+x). Every synthesis call allocates a fresh buffer.
type PixelBuffer struct {
	W, H int
	pix  []byte
}

// NewPixelBuffer allocates a buffer with the given dimensions. Negative
// dimensions collapse to zero, yielding an empty buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelBuffer{W: w, H: h, pix: make([]byte, 4*w*h)}
}

// Pix exposes the backing RGBA byte slice.
func (b *PixelBuffer) Pix() []byte { return b.pix }

// Size reports the buffer dimensions.
func (b *PixelBuffer) Size() core.Size { return core.Size{W: b.W, H: b.H} }

// At returns the pixel color at (x, y).
func (b *PixelBuffer) At(x, y int) color.RGBA {
	base := 4 * (y*b.W + x)
	return color.RGBA{R: b.pix[base], G: b.pix[base+1], B: b.pix[base+2], A: b.pix[base+3]}
}

// fillPaletteRGBA converts biome cells into RGBA pixels using a palette.
// Cell values past the palette end clamp to the last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
