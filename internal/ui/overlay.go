//go:build ebiten

package ui

import (
	"terragen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type heightFieldProvider interface {
	HeightField() *core.FloatGrid
}

// Overlay draws the raw normalized height field as grayscale on top of the
// biome view, toggled with the H key.
type Overlay struct {
	provider heightFieldProvider
	show     bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an Overlay if the target exposes a height field.
func NewOverlay(target any) *Overlay {
	provider, ok := target.(heightFieldProvider)
	if !ok {
		return nil
	}
	return &Overlay{provider: provider}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw paints the grayscale height view when enabled.
func (o *Overlay) Draw(screen *ebiten.Image, scale int) {
	if o == nil || !o.show {
		return
	}
	heights := o.provider.HeightField()
	if heights == nil || heights.W < 1 || heights.H < 1 {
		return
	}
	if scale < 1 {
		scale = 1
	}

	w, h := heights.W, heights.H
	if o.img == nil || o.img.Bounds().Dx() != w || o.img.Bounds().Dy() != h {
		o.img = ebiten.NewImage(w, h)
		o.buf = make([]byte, 4*w*h)
	}

	values := heights.Values()
	for i, v := range values {
		// Multi-octave sums can leave [0, 1]; pin for display only.
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		gray := uint8(v*255 + 0.5)
		base := i * 4
		o.buf[base+0] = gray
		o.buf[base+1] = gray
		o.buf[base+2] = gray
		o.buf[base+3] = 255
	}
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
