package terrain

import (
	"errors"
	"testing"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateAcceptsEmptyDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.Height = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero dimensions are a valid empty buffer, got: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"negative scale", func(c *Config) { c.Scale = -2 }},
		{"zero octaves", func(c *Config) { c.Octaves = 0 }},
		{"negative persistence", func(c *Config) { c.Persistence = -0.1 }},
		{"persistence above one", func(c *Config) { c.Persistence = 1.1 }},
		{"lacunarity below one", func(c *Config) { c.Lacunarity = 0.9 }},
		{"zero pixel size", func(c *Config) { c.PixelSize = 0 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: error %v must wrap ErrInvalidConfig", tc.name, err)
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":           "64",
		"h":           "48",
		"scale":       "25.5",
		"octaves":     "3",
		"persistence": "0.75",
		"lacunarity":  "2.5",
		"pixel_size":  "4",
		"noise":       "simplex",
	})
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Fatalf("dimensions = %dx%d, want 64x48", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 25.5 {
		t.Fatalf("scale = %v, want 25.5", cfg.Scale)
	}
	if cfg.Octaves != 3 {
		t.Fatalf("octaves = %d, want 3", cfg.Octaves)
	}
	if cfg.Persistence != 0.75 {
		t.Fatalf("persistence = %v, want 0.75", cfg.Persistence)
	}
	if cfg.Lacunarity != 2.5 {
		t.Fatalf("lacunarity = %v, want 2.5", cfg.Lacunarity)
	}
	if cfg.PixelSize != 4 {
		t.Fatalf("pixel size = %d, want 4", cfg.PixelSize)
	}
	if cfg.Noise != "simplex" {
		t.Fatalf("noise = %q, want simplex", cfg.Noise)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":           "not-a-number",
		"scale":       "-5",
		"octaves":     "0",
		"persistence": "1.5",
		"lacunarity":  "0.5",
		"pixel_size":  "0",
	})
	if cfg != def {
		t.Fatalf("invalid overrides must keep defaults, got %+v", cfg)
	}
}
