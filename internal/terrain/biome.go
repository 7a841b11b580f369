package terrain

import "image/color"

// Biome enumerates the height-range classifications.
type Biome uint8

const (
	BiomeDeepWater Biome = iota
	BiomeWater
	BiomeSand
	BiomeGrass
	BiomeMountain
	BiomeSnow
)

// Classification thresholds. Bands are right-open: a height maps to the first
// threshold it is strictly below, and everything from the last threshold up
// (including out-of-range sums above 1) is snow. Heights below 0 land in the
// deep water band for the same reason.
const (
	deepWaterMax = 0.3
	waterMax     = 0.4
	sandMax      = 0.5
	grassMax     = 0.7
	mountainMax  = 0.8
)

// Classify maps a normalized height to its biome.
func Classify(height float64) Biome {
	switch {
	case height < deepWaterMax:
		return BiomeDeepWater
	case height < waterMax:
		return BiomeWater
	case height < sandMax:
		return BiomeSand
	case height < grassMax:
		return BiomeGrass
	case height < mountainMax:
		return BiomeMountain
	default:
		return BiomeSnow
	}
}

// Color returns the biome's display color before quantization.
func (b Biome) Color() color.RGBA {
	switch b {
	case BiomeDeepWater:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case BiomeWater:
		return color.RGBA{R: 65, G: 105, B: 225, A: 255}
	case BiomeSand:
		return color.RGBA{R: 210, G: 180, B: 140, A: 255}
	case BiomeGrass:
		return color.RGBA{R: 34, G: 139, B: 34, A: 255}
	case BiomeMountain:
		return color.RGBA{R: 139, G: 69, B: 19, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// String returns the biome name.
func (b Biome) String() string {
	switch b {
	case BiomeDeepWater:
		return "deep water"
	case BiomeWater:
		return "water"
	case BiomeSand:
		return "sand"
	case BiomeGrass:
		return "grass"
	case BiomeMountain:
		return "mountain"
	default:
		return "snow"
	}
}

const biomeCount = int(BiomeSnow) + 1

var biomePalette = buildBiomePalette()

// Palette returns the display palette indexed by Biome, with the base
// quantization already applied.
func Palette() []color.RGBA {
	return biomePalette
}

func buildBiomePalette() []color.RGBA {
	palette := make([]color.RGBA, biomeCount)
	for i := range palette {
		palette[i] = Quantize(Biome(i).Color(), baseQuantLevels)
	}
	return palette
}
