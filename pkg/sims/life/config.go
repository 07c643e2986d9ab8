package life

import (
	"strconv"

	"fractal-life/pkg/noise"
)

// Config controls the Life simulation dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Noise noise.Config
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   42,
		Noise:  noise.DefaultConfig(),
	}
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Scale = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Persistence = parsed
		}
	}
	if v, ok := cfg["min_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Noise.MinDensity = parsed
		}
	}
	if v, ok := cfg["max_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Noise.MaxDensity = parsed
		}
	}
	if c.Noise.MaxDensity < c.Noise.MinDensity {
		c.Noise.MaxDensity = c.Noise.MinDensity
	}
	return c
}

// Map renders the config back into the key/value form accepted by FromMap.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":           strconv.Itoa(c.Width),
		"h":           strconv.Itoa(c.Height),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"scale":       formatFloat(c.Noise.Scale),
		"octaves":     strconv.Itoa(c.Noise.Octaves),
		"persistence": formatFloat(c.Noise.Persistence),
		"min_density": formatFloat(c.Noise.MinDensity),
		"max_density": formatFloat(c.Noise.MaxDensity),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
