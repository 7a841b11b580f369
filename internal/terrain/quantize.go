package terrain

import (
	"image/color"
	"math"
)

// baseQuantLevels is the quantization factor applied to every biome color.
// The configured PixelSize control does not feed it; the base factor is
// fixed at 1, which snaps each channel to 0 or 255.
const baseQuantLevels = 1

// Quantize reduces each color channel to the given number of levels using
// step = 255 / levels (integer division) and rounding the channel to the
// nearest step. Alpha passes through. Levels below 1 are treated as 1.
func Quantize(c color.RGBA, levels int) color.RGBA {
	if levels < 1 {
		levels = 1
	}
	step := 255 / levels
	if step < 1 {
		step = 1
	}
	return color.RGBA{
		R: quantizeChannel(c.R, step),
		G: quantizeChannel(c.G, step),
		B: quantizeChannel(c.B, step),
		A: c.A,
	}
}

func quantizeChannel(v uint8, step int) uint8 {
	scaled := math.Round(float64(v)/float64(step)) * float64(step)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}
