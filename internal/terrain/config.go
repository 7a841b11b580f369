package terrain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig marks configurations rejected before any synthesis work.
var ErrInvalidConfig = errors.New("invalid terrain config")

// Config holds the parameters for one synthesis run. It is consumed by value:
// the synthesizer never retains or mutates the caller's copy.
type Config struct {
	Width  int
	Height int

	// Scale is the zoom applied to the noise domain.
	Scale float64
	// Octaves is the number of fractal layers summed per pixel.
	Octaves int
	// Persistence is the per-octave amplitude decay in [0, 1].
	Persistence float64
	// Lacunarity is the per-octave frequency growth, at least 1.
	Lacunarity float64
	// PixelSize is the configured quantization level count. It is validated
	// and surfaced as a control but the base quantization factor stays 1.
	PixelSize int

	// Noise selects the field algorithm; empty means the default.
	Noise string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       512,
		Height:      512,
		Scale:       50.0,
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2.0,
		PixelSize:   1,
	}
}

// Validate rejects configurations the synthesizer cannot honor. A width or
// height of zero is valid and yields an empty buffer.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: dimensions %dx%d must not be negative", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidConfig, c.Scale)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("%w: octaves %d must be at least 1", ErrInvalidConfig, c.Octaves)
	}
	if c.Persistence < 0 || c.Persistence > 1 {
		return fmt.Errorf("%w: persistence %v must be in [0, 1]", ErrInvalidConfig, c.Persistence)
	}
	if c.Lacunarity < 1 {
		return fmt.Errorf("%w: lacunarity %v must be at least 1", ErrInvalidConfig, c.Lacunarity)
	}
	if c.PixelSize < 1 {
		return fmt.Errorf("%w: pixel size %d would zero the quantization step", ErrInvalidConfig, c.PixelSize)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Persistence = parsed
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.Lacunarity = parsed
		}
	}
	if v, ok := cfg["pixel_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.PixelSize = parsed
		}
	}
	if v, ok := cfg["noise"]; ok && v != "" {
		c.Noise = v
	}
	return c
}
