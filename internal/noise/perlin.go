package noise

import (
	"github.com/aquilax/go-perlin"
)

// Single internal layer; octave stacking is the synthesizer's job.
const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinLayers = 1
)

// Perlin is a classic Perlin gradient noise field.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin constructs a Perlin field for the given seed.
func NewPerlin(seed uint32) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinLayers, int64(seed))}
}

// Sample returns the noise value at (x, y).
func (n *Perlin) Sample(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

func init() {
	Register("perlin", func(seed uint32) Sampler { return NewPerlin(seed) })
}
