package terrain

import (
	"strconv"

	"terragen/internal/core"
)

// Snapshot reports the adjustable generator parameters for HUD display.
func Snapshot(cfg Config) core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Params: []core.Parameter{
			floatParam("scale", "Scale", cfg.Scale),
			intParam("octaves", "Octaves", cfg.Octaves),
			floatParam("persistence", "Persistence", cfg.Persistence),
			floatParam("lacunarity", "Lacunarity", cfg.Lacunarity),
			intParam("pixel_size", "Pixel size", cfg.PixelSize),
		},
	}
}

// Controls describes the HUD controls with the generator's slider ranges.
func Controls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "scale", Label: "Scale", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 100},
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8},
		{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "lacunarity", Label: "Lacunarity", Type: core.ParamTypeFloat, Step: 0.1, Min: 1, Max: 4},
		{Key: "pixel_size", Label: "Pixel size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16},
	}
}

// ApplyInt updates an integer parameter on the config, clamping to the
// control's range. It reports whether the key was recognized.
func ApplyInt(cfg *Config, key string, value int) bool {
	switch key {
	case "octaves":
		cfg.Octaves = clampInt(value, 1, 8)
	case "pixel_size":
		cfg.PixelSize = clampInt(value, 1, 16)
	default:
		return false
	}
	return true
}

// ApplyFloat updates a float parameter on the config, clamping to the
// control's range. It reports whether the key was recognized.
func ApplyFloat(cfg *Config, key string, value float64) bool {
	switch key {
	case "scale":
		cfg.Scale = clampFloat(value, 1, 100)
	case "persistence":
		cfg.Persistence = clampFloat(value, 0, 1)
	case "lacunarity":
		cfg.Lacunarity = clampFloat(value, 1, 4)
	default:
		return false
	}
	return true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
