//go:build !ebiten

package render

import "terragen/internal/terrain"

// TerrainPainter is a no-op placeholder for headless builds.
type TerrainPainter struct{}

// NewTerrainPainter returns nil in the headless build.
func NewTerrainPainter(int, int) *TerrainPainter { return nil }

// Blit is a no-op in the headless build.
func (tp *TerrainPainter) Blit(any, *terrain.PixelBuffer, int) {}

// Size returns zeros in the headless build.
func (tp *TerrainPainter) Size() (int, int) { return 0, 0 }
