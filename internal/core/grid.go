package core

// FloatGrid stores a 2D grid of float64 values in row-major order. It holds
// the normalized height field produced while synthesizing terrain.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions. Negative
// dimensions collapse to zero, yielding an empty grid.
func NewFloatGrid(w, h int) *FloatGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores a value at (x, y).
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Size reports the grid dimensions.
func (g *FloatGrid) Size() Size { return Size{W: g.W, H: g.H} }
