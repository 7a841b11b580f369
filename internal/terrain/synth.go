// Package terrain synthesizes biome-colored heightmap images from layered
// gradient noise.
package terrain

import (
	"terragen/internal/core"
	"terragen/internal/noise"
)

// Synthesizer produces pixel buffers by fractally sampling a noise field.
// It holds no mutable state beyond the field reference and is safe to reuse
// across calls.
type Synthesizer struct {
	field noise.Sampler
}

// NewSynthesizer constructs a Synthesizer over the provided field.
func NewSynthesizer(field noise.Sampler) *Synthesizer {
	return &Synthesizer{field: field}
}

// Generate validates the config, builds a noise field for the seed, and
// synthesizes a complete pixel buffer. Same seed and config yield
// byte-identical buffers.
func Generate(seed uint32, cfg Config) (*PixelBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := noise.New(cfg.Noise, seed)
	if err != nil {
		return nil, err
	}
	return NewSynthesizer(field).Synthesize(cfg)
}

// Synthesize produces a fresh pixel buffer for the config. Width or height
// of zero yields an empty buffer without error.
func (s *Synthesizer) Synthesize(cfg Config) (*PixelBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return NewPixelBuffer(cfg.Width, cfg.Height), nil
	}
	return Rasterize(s.HeightField(cfg)), nil
}

// HeightField samples the fractal octave sum for every pixel and returns the
// normalized heights. The (noise+1)/2 normalization assumes a single-octave
// range, so multi-octave sums can fall outside [0, 1]; values are not
// clamped here and the classifier's right-open bands absorb the overflow.
func (s *Synthesizer) HeightField(cfg Config) *core.FloatGrid {
	grid := core.NewFloatGrid(cfg.Width, cfg.Height)
	w, h := grid.W, grid.H
	values := grid.Values()
	for y := 0; y < h; y++ {
		ny := float64(y)/float64(h) - 0.5
		for x := 0; x < w; x++ {
			nx := float64(x)/float64(w) - 0.5

			noiseValue := 0.0
			amplitude := 1.0
			frequency := 1.0
			for o := 0; o < cfg.Octaves; o++ {
				sampleX := nx * frequency * cfg.Scale
				sampleY := ny * frequency * cfg.Scale
				noiseValue += s.field.Sample(sampleX, sampleY) * amplitude

				amplitude *= cfg.Persistence
				frequency *= cfg.Lacunarity
			}

			values[y*w+x] = (noiseValue + 1) / 2
		}
	}
	return grid
}

// Rasterize classifies each height into a biome and writes the palette color
// into a fresh row-major pixel buffer.
func Rasterize(heights *core.FloatGrid) *PixelBuffer {
	buf := NewPixelBuffer(heights.W, heights.H)
	values := heights.Values()
	cells := make([]uint8, len(values))
	for i, h := range values {
		cells[i] = uint8(Classify(h))
	}
	fillPaletteRGBA(buf.pix, cells, biomePalette)
	return buf
}
