package terrain

import (
	"image/color"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		height float64
		want   Biome
	}{
		{0.0, BiomeDeepWater},
		{0.29, BiomeDeepWater},
		{0.3, BiomeWater},
		{0.39, BiomeWater},
		{0.4, BiomeSand},
		{0.49, BiomeSand},
		{0.5, BiomeGrass},
		{0.69, BiomeGrass},
		{0.7, BiomeMountain},
		{0.79, BiomeMountain},
		{0.8, BiomeSnow},
		{1.0, BiomeSnow},
	}
	for _, tc := range cases {
		if got := Classify(tc.height); got != tc.want {
			t.Fatalf("Classify(%v) = %v, want %v", tc.height, got, tc.want)
		}
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	// Multi-octave sums are not clamped, so heights can legitimately land
	// outside [0, 1]; they must fall into the extreme bands.
	if got := Classify(-0.75); got != BiomeDeepWater {
		t.Fatalf("Classify(-0.75) = %v, want deep water", got)
	}
	if got := Classify(1.6); got != BiomeSnow {
		t.Fatalf("Classify(1.6) = %v, want snow", got)
	}
}

func TestBiomeColors(t *testing.T) {
	cases := []struct {
		biome Biome
		want  color.RGBA
	}{
		{BiomeDeepWater, color.RGBA{0, 0, 255, 255}},
		{BiomeWater, color.RGBA{65, 105, 225, 255}},
		{BiomeSand, color.RGBA{210, 180, 140, 255}},
		{BiomeGrass, color.RGBA{34, 139, 34, 255}},
		{BiomeMountain, color.RGBA{139, 69, 19, 255}},
		{BiomeSnow, color.RGBA{255, 255, 255, 255}},
	}
	for _, tc := range cases {
		if got := tc.biome.Color(); got != tc.want {
			t.Fatalf("%v color = %v, want %v", tc.biome, got, tc.want)
		}
	}
}

func TestPaletteIsQuantized(t *testing.T) {
	palette := Palette()
	if len(palette) != biomeCount {
		t.Fatalf("palette has %d entries, want %d", len(palette), biomeCount)
	}
	for i, col := range palette {
		want := Quantize(Biome(i).Color(), baseQuantLevels)
		if col != want {
			t.Fatalf("palette[%d] = %v, want %v", i, col, want)
		}
	}
}
