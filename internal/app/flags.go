package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config represents the command-line parameters for the headless runner.
type Config struct {
	Sim         string
	Size        string
	Seed        int64
	TPS         int
	Generations uint64
	Report      time.Duration

	Scale       float64
	Octaves     int
	Persistence float64
	MinDensity  float64
	MaxDensity  float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "life",
		Size:        "256x256",
		TPS:         60,
		Report:      time.Second,
		Scale:       0.01,
		Octaves:     17,
		Persistence: 0.5,
		MinDensity:  0.01,
		MaxDensity:  0.4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Size, "size", c.Size, "grid size as WxH")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 = time based)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "target generations per second")
	fs.Uint64Var(&c.Generations, "generations", c.Generations, "stop after this many generations (0 = until interrupted)")
	fs.DurationVar(&c.Report, "report", c.Report, "interval between stats reports")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "noise sampling scale")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "fractal noise octaves")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "per-octave amplitude decay")
	fs.Float64Var(&c.MinDensity, "min-density", c.MinDensity, "live probability at the lowest noise value")
	fs.Float64Var(&c.MaxDensity, "max-density", c.MaxDensity, "live probability at the highest noise value")
}

// SimMap converts the flags into the key/value form sim factories accept.
func (c *Config) SimMap() (map[string]string, error) {
	w, h, err := ParseSize(c.Size)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"w":           strconv.Itoa(w),
		"h":           strconv.Itoa(h),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"scale":       strconv.FormatFloat(c.Scale, 'f', -1, 64),
		"octaves":     strconv.Itoa(c.Octaves),
		"persistence": strconv.FormatFloat(c.Persistence, 'f', -1, 64),
		"min_density": strconv.FormatFloat(c.MinDensity, 'f', -1, 64),
		"max_density": strconv.FormatFloat(c.MaxDensity, 'f', -1, 64),
	}, nil
}

// ParseSize parses a "WxH" string. Zero dimensions are allowed.
func ParseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q: %w", parts[1], err)
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("invalid size %q (dimensions must not be negative)", s)
	}
	return w, h, nil
}
