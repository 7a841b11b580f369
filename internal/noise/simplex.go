package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Simplex is an OpenSimplex gradient noise field.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex constructs a Simplex field for the given seed.
func NewSimplex(seed uint32) *Simplex {
	return &Simplex{n: opensimplex.New(int64(seed))}
}

// Sample returns the noise value at (x, y).
func (s *Simplex) Sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

func init() {
	Register("simplex", func(seed uint32) Sampler { return NewSimplex(seed) })
}
