package core

import "testing"

func TestNewGridRejectsNegative(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"negative width", -1, 3},
		{"negative height", 3, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewGrid(%d,%d) did not panic", tt.w, tt.h)
				}
			}()
			NewGrid(tt.w, tt.h)
		})
	}
}

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid(0, 4)
	if g.W != 0 || g.H != 4 || len(g.Cells()) != 0 {
		t.Fatalf("unexpected empty grid %+v", g.Size())
	}
	if len(g.Row(3)) != 0 {
		t.Fatal("rows of a zero-width grid should be empty")
	}
}

func TestSetNormalisesValues(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 1, Cell(7))
	if got := g.At(2, 1); got != Alive {
		t.Fatalf("Set stored %d, want Alive", got)
	}
	if g.Alive() != 1 {
		t.Fatalf("Alive() = %d, want 1", g.Alive())
	}
	if g.Row(1)[2] != Alive {
		t.Fatal("Row view does not reflect Set")
	}
}

func TestWrap(t *testing.T) {
	g := NewGrid(5, 4)
	tests := []struct {
		x, y, wx, wy int
	}{
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{-6, 9, 4, 1},
		{2, 2, 2, 2},
	}
	for _, tt := range tests {
		if x, y := g.Wrap(tt.x, tt.y); x != tt.wx || y != tt.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, x, y, tt.wx, tt.wy)
		}
	}
}

func TestWrapMatchesOffsetModulo(t *testing.T) {
	g := NewGrid(7, 3)
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			for _, d := range []int{-1, 0, 1} {
				wx, wy := g.Wrap(x+d, y+d)
				if wx != (x+d+g.W)%g.W || wy != (y+d+g.H)%g.H {
					t.Fatalf("Wrap(%d,%d) = (%d,%d)", x+d, y+d, wx, wy)
				}
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := GridFromRows([][]uint8{{1, 0}, {0, 1}})
	c := g.Clone()
	c.Set(1, 0, Alive)
	if g.At(1, 0) != Dead {
		t.Fatal("Clone shares storage with the original")
	}
	if g.Equal(c) {
		t.Fatal("grids with different cells reported equal")
	}
}

func TestGridString(t *testing.T) {
	g := GridFromRows([][]uint8{{0, 1, 0}, {1, 1, 1}})
	if got, want := g.String(), ".#.\n###\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(12), NewRNG(12)
	for i := 0; i < 32; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
	if NewRNG(12).Float64() == NewRNG(13).Float64() {
		t.Fatal("different seeds produced the same first draw")
	}
}
