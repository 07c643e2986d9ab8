package life

import (
	"fmt"

	"fractal-life/pkg/core"
	"fractal-life/pkg/noise"
)

// Neighbors returns, for every cell of g, the number of live cells among its
// eight neighbours with toroidal wrapping. The buffer is row-major like g.
func Neighbors(g *core.Grid) []uint8 {
	w, h := g.W, g.H
	counts := make([]uint8, w*h)
	cells := g.Cells()
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if cells[i*w+j] != core.Alive {
				continue
			}
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if di == 0 && dj == 0 {
						continue
					}
					nx, ny := g.Wrap(j+dj, i+di)
					counts[g.Index(nx, ny)]++
				}
			}
		}
	}
	return counts
}

// Step returns the next generation of g under Conway's rules. g is only read;
// the result is a freshly allocated grid of the same size.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.W, g.H)
	counts := Neighbors(g)
	cur := g.Cells()
	out := next.Cells()
	for idx, n := range counts {
		alive := cur[idx] == core.Alive
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			out[idx] = core.Alive
		}
	}
	return next
}

// Life implements Conway's Game of Life with toroidal wrapping, seeded from
// fractal noise.
type Life struct {
	cfg  Config
	grid *core.Grid
	gen  uint64
}

// New returns a Life simulation with the provided dimensions using defaults.
// The board starts all dead until Reset or Load is called.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided options.
func NewWithConfig(cfg Config) *Life {
	return &Life{cfg: cfg, grid: core.NewGrid(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid returns the current generation. The returned grid is never modified by
// later steps.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation reports how many steps have been taken since the last Reset or Load.
func (l *Life) Generation() uint64 { return l.gen }

// Reset seeds the board from fractal noise. A zero seed falls back to the
// configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.grid = noise.SeedGrid(l.cfg.Width, l.cfg.Height, l.cfg.Noise, core.NewRNG(seed))
	l.gen = 0
}

// Load replaces the board with a copy of g and restarts the generation count.
func (l *Life) Load(g *core.Grid) {
	if g.W != l.cfg.Width || g.H != l.cfg.Height {
		panic(fmt.Sprintf("life: cannot load %dx%d grid into %dx%d sim", g.W, g.H, l.cfg.Width, l.cfg.Height))
	}
	l.grid = g.Clone()
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid = Step(l.grid)
	l.gen++
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
