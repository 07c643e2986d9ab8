package core

import "fmt"

// Cell is a single automaton cell. Only Dead and Alive are valid.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid stores a 2D grid of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions. Zero
// dimensions produce an empty grid; negative dimensions panic.
func NewGrid(w, h int) *Grid {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// GridFromRows builds a grid from a slice of equal-length rows. Any non-zero
// value is treated as alive.
func GridFromRows(rows [][]uint8) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := NewGrid(w, h)
	for y, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("core: row %d has %d cells, want %d", y, len(row), w))
		}
		for x, v := range row {
			if v != 0 {
				g.data[y*w+x] = Alive
			}
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice. Callers must treat it as read-only.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell { return g.data[y*g.W+x] }

// Set stores a cell value, normalising anything non-zero to Alive.
func (g *Grid) Set(x, y int, c Cell) {
	if c != Dead {
		c = Alive
	}
	g.data[y*g.W+x] = c
}

// Row returns row y as a slice view.
func (g *Grid) Row(y int) []Cell { return g.data[y*g.W : (y+1)*g.W] }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Alive counts the live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]Cell(nil), g.data...)}
}

// String renders the grid as rows of '#' and '.'.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.W+1)*g.H)
	for y := 0; y < g.H; y++ {
		for _, c := range g.Row(y) {
			if c == Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
