package app

import (
	"flag"
	"strings"

	"terragen/internal/noise"
	"terragen/internal/terrain"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width       int
	Height      int
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	PixelSize   int
	Noise       string

	Seed uint
	Mag  int
	TPS  int
}

// NewConfig returns a Config populated with the generator defaults.
func NewConfig() *Config {
	t := terrain.DefaultConfig()
	return &Config{
		Width:       t.Width,
		Height:      t.Height,
		Scale:       t.Scale,
		Octaves:     t.Octaves,
		Persistence: t.Persistence,
		Lacunarity:  t.Lacunarity,
		PixelSize:   t.PixelSize,
		Noise:       noise.DefaultAlgorithm,
		Seed:        0,
		Mag:         1,
		TPS:         60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "terrain width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "terrain height in pixels")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "noise zoom factor")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "number of fractal octaves")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "per-octave amplitude decay")
	fs.Float64Var(&c.Lacunarity, "lacunarity", c.Lacunarity, "per-octave frequency growth")
	fs.IntVar(&c.PixelSize, "pixel-size", c.PixelSize, "configured quantization levels")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise algorithm: "+strings.Join(noise.Names(), ", "))
	fs.UintVar(&c.Seed, "seed", c.Seed, "terrain seed (0 picks a random one)")
	fs.IntVar(&c.Mag, "mag", c.Mag, "window magnification")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// Terrain converts the CLI parameters into a synthesis config.
func (c *Config) Terrain() terrain.Config {
	return terrain.Config{
		Width:       c.Width,
		Height:      c.Height,
		Scale:       c.Scale,
		Octaves:     c.Octaves,
		Persistence: c.Persistence,
		Lacunarity:  c.Lacunarity,
		PixelSize:   c.PixelSize,
		Noise:       c.Noise,
	}
}
