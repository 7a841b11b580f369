package terrain

import (
	"math"
	"slices"
	"testing"

	"terragen/internal/core"
)

// constSampler returns a fixed value everywhere and records sample points.
type constSampler struct {
	value float64
	calls [][2]float64
}

func (s *constSampler) Sample(x, y float64) float64 {
	s.calls = append(s.calls, [2]float64{x, y})
	return s.value
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24

	first, err := Generate(42, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(42, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !slices.Equal(first.Pix(), second.Pix()) {
		t.Fatal("same seed and config must produce byte-identical buffers")
	}
}

func TestGenerateDimensions(t *testing.T) {
	cases := []struct {
		w, h int
	}{
		{3, 5},
		{1, 1},
		{16, 2},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.Width = tc.w
		cfg.Height = tc.h
		buf, err := Generate(7, cfg)
		if err != nil {
			t.Fatalf("Generate(%dx%d): %v", tc.w, tc.h, err)
		}
		if buf.W != tc.w || buf.H != tc.h {
			t.Fatalf("buffer is %dx%d, want %dx%d", buf.W, buf.H, tc.w, tc.h)
		}
		if len(buf.Pix()) != 4*tc.w*tc.h {
			t.Fatalf("buffer holds %d bytes, want %d", len(buf.Pix()), 4*tc.w*tc.h)
		}
	}
}

func TestGenerateEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {0, 0}} {
		cfg := DefaultConfig()
		cfg.Width = dims[0]
		cfg.Height = dims[1]
		buf, err := Generate(1, cfg)
		if err != nil {
			t.Fatalf("Generate(%dx%d): %v", dims[0], dims[1], err)
		}
		if len(buf.Pix()) != 0 {
			t.Fatalf("%dx%d config must yield an empty buffer, got %d bytes", dims[0], dims[1], len(buf.Pix()))
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PixelSize = 0
	if _, err := Generate(1, cfg); err == nil {
		t.Fatal("expected invalid config to be rejected before synthesis")
	}

	cfg = DefaultConfig()
	cfg.Noise = "no-such-algorithm"
	if _, err := Generate(1, cfg); err == nil {
		t.Fatal("expected unknown noise algorithm to be rejected")
	}
}

func TestGenerateSeedVariation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32

	pairs := [][2]uint32{{1, 2}, {3, 4}, {42, 1337}, {7, 8}, {100, 200}}
	for _, pair := range pairs {
		a, err := Generate(pair[0], cfg)
		if err != nil {
			t.Fatalf("Generate(seed %d): %v", pair[0], err)
		}
		b, err := Generate(pair[1], cfg)
		if err != nil {
			t.Fatalf("Generate(seed %d): %v", pair[1], err)
		}
		if slices.Equal(a.Pix(), b.Pix()) {
			t.Fatalf("seeds %d and %d produced identical buffers", pair[0], pair[1])
		}
	}
}

func TestHeightFieldOctaveAmplitudeDecay(t *testing.T) {
	// With a sampler pinned to 1, octave n shifts the normalized height by
	// exactly persistence^(n-1)/2, so contributions must shrink geometrically.
	cfg := DefaultConfig()
	cfg.Width = 1
	cfg.Height = 1
	cfg.Persistence = 0.5

	heights := make([]float64, 6)
	heights[0] = 0.5 // zero-octave baseline of the (v+1)/2 normalization
	for n := 1; n <= 5; n++ {
		cfg.Octaves = n
		synth := NewSynthesizer(&constSampler{value: 1})
		heights[n] = synth.HeightField(cfg).At(0, 0)
	}

	prev := math.Inf(1)
	for n := 1; n <= 5; n++ {
		contribution := heights[n] - heights[n-1]
		want := math.Pow(cfg.Persistence, float64(n-1)) / 2
		if math.Abs(contribution-want) > 1e-12 {
			t.Fatalf("octave %d contribution = %v, want persistence^%d/2 = %v", n, contribution, n-1, want)
		}
		if contribution >= prev {
			t.Fatalf("octave %d contribution %v did not shrink from %v", n, contribution, prev)
		}
		prev = contribution
	}
}

func TestHeightFieldFrequencyProgression(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 1
	cfg.Height = 1
	cfg.Scale = 10
	cfg.Octaves = 4
	cfg.Lacunarity = 2

	sampler := &constSampler{value: 0}
	NewSynthesizer(sampler).HeightField(cfg)

	if len(sampler.calls) != cfg.Octaves {
		t.Fatalf("sampled %d times, want %d", len(sampler.calls), cfg.Octaves)
	}
	// The single pixel sits at the centered coordinate (-0.5, -0.5).
	for k, call := range sampler.calls {
		want := -0.5 * math.Pow(cfg.Lacunarity, float64(k)) * cfg.Scale
		if math.Abs(call[0]-want) > 1e-12 || math.Abs(call[1]-want) > 1e-12 {
			t.Fatalf("octave %d sampled at (%v, %v), want (%v, %v)", k, call[0], call[1], want, want)
		}
	}
}

func TestRasterizeUsesPalette(t *testing.T) {
	heights := []float64{-0.2, 0.0, 0.35, 0.45, 0.6, 0.75, 0.9, 1.3}
	grid := core.NewFloatGrid(len(heights), 1)
	copy(grid.Values(), heights)
	buf := Rasterize(grid)
	for i, h := range heights {
		want := Palette()[Classify(h)]
		if got := buf.At(i, 0); got != want {
			t.Fatalf("pixel %d (height %v) = %v, want %v", i, h, got, want)
		}
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	cfg := Config{
		Width:       4,
		Height:      4,
		Scale:       10,
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2,
		PixelSize:   1,
	}
	buf, err := Generate(42, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	pix := buf.Pix()
	if len(pix) != 64 {
		t.Fatalf("4x4 RGBA buffer holds %d bytes, want 64", len(pix))
	}

	allowed := map[[3]uint8]bool{}
	for _, col := range Palette() {
		allowed[[3]uint8{col.R, col.G, col.B}] = true
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, pix[i+3])
		}
		rgb := [3]uint8{pix[i], pix[i+1], pix[i+2]}
		if !allowed[rgb] {
			t.Fatalf("pixel %d color %v is not in the biome palette", i/4, rgb)
		}
	}
}
