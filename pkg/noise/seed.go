package noise

import "fractal-life/pkg/core"

// maxOffset bounds the random offset drawn for each seeding call.
const maxOffset = 10000

// Rand is the randomness SeedGrid draws from. *core.RNG and *rand.Rand from
// math/rand/v2 both satisfy it.
type Rand interface {
	Float64() float64
}

// Config holds the fractal noise and density parameters used for seeding.
type Config struct {
	Scale       float64
	Octaves     int
	Persistence float64
	MinDensity  float64
	MaxDensity  float64
}

// DefaultConfig returns the standard seeding parameters.
func DefaultConfig() Config {
	return Config{
		Scale:       0.01,
		Octaves:     17,
		Persistence: 0.5,
		MinDensity:  0.01,
		MaxDensity:  0.4,
	}
}

// Density linearly remaps a noise value in [0, 1] into [MinDensity, MaxDensity].
func (c Config) Density(n float64) float64 {
	return c.MinDensity + n*(c.MaxDensity-c.MinDensity)
}

// Offset shifts the sampled region of the noise field.
type Offset struct {
	X, Y float64
}

// RandomOffset draws an offset pair in [0, 10000).
func RandomOffset(r Rand) Offset {
	return Offset{X: r.Float64() * maxOffset, Y: r.Float64() * maxOffset}
}

// SeedGrid draws a fresh offset from r and seeds a w x h grid with it.
func SeedGrid(w, h int, cfg Config, r Rand) *core.Grid {
	return SeedGridAt(w, h, cfg, RandomOffset(r), r)
}

// SeedGridAt seeds a grid sampling the noise field at the given offset. Each
// cell is alive with probability equal to the density at its position, with
// one draw from r per cell in row-major order.
func SeedGridAt(w, h int, cfg Config, off Offset, r Rand) *core.Grid {
	g := core.NewGrid(w, h)
	cells := g.Cells()
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			n := Fractal((float64(i)+off.X)*cfg.Scale, (float64(j)+off.Y)*cfg.Scale, cfg.Octaves, cfg.Persistence)
			if r.Float64() < cfg.Density(n) {
				cells[i*w+j] = core.Alive
			}
		}
	}
	return g
}
