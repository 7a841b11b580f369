package core

// Size describes the dimensions of a pixel grid.
type Size struct {
	W int
	H int
}
