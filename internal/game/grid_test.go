package game

import "testing"

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		d      Direction
		dx, dy int
	}{
		{DirRight, 1, 0},
		{DirLeft, -1, 0},
		{DirUp, 0, 1},
		{DirDown, 0, -1},
	}
	for _, c := range cases {
		dx, dy := c.d.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%s: got (%d,%d), want (%d,%d)", c.d, dx, dy, c.dx, c.dy)
		}
		ox, oy := c.d.Opposite().Delta()
		if ox != -dx || oy != -dy {
			t.Errorf("%s: opposite is (%d,%d)", c.d, ox, oy)
		}
	}
}

func TestCellInBounds(t *testing.T) {
	in := []Cell{{0, 0}, {GridSize - 1, GridSize - 1}, {10, 10}}
	out := []Cell{{-1, 5}, {GridSize, 5}, {5, -1}, {5, GridSize}}
	for _, c := range in {
		if !c.InBounds() {
			t.Errorf("%v should be in bounds", c)
		}
	}
	for _, c := range out {
		if c.InBounds() {
			t.Errorf("%v should be out of bounds", c)
		}
	}
}

func TestSnakeAdvanceIsPure(t *testing.T) {
	s := NewSnake(Cell{3, 3})
	next := s.Advance(DirUp)
	if next != (Cell{3, 4}) {
		t.Fatalf("Advance = %v, want (3,4)", next)
	}
	if s.Len() != 1 || s.Head() != (Cell{3, 3}) {
		t.Errorf("Advance mutated snake: %v", s.Cells())
	}
}

func TestSnakeGrowShrink(t *testing.T) {
	s := NewSnake(Cell{3, 3})
	s.Grow(Cell{4, 3})
	s.Grow(Cell{5, 3})
	want := []Cell{{5, 3}, {4, 3}, {3, 3}}
	if len(s.Cells()) != len(want) {
		t.Fatalf("len = %d, want %d", s.Len(), len(want))
	}
	for i, c := range want {
		if s.Cells()[i] != c {
			t.Errorf("cell %d = %v, want %v", i, s.Cells()[i], c)
		}
	}
	if s.Tail() != (Cell{3, 3}) {
		t.Errorf("tail = %v", s.Tail())
	}

	s.Shrink()
	if s.Len() != 2 || s.Tail() != (Cell{4, 3}) {
		t.Errorf("after shrink: %v", s.Cells())
	}
	s.Shrink()
	s.Shrink()
	if s.Len() != 1 {
		t.Errorf("single-cell snake must not shrink further, len = %d", s.Len())
	}
	if !s.Contains(Cell{5, 3}) || s.Contains(Cell{4, 3}) {
		t.Errorf("Contains mismatch for %v", s.Cells())
	}
}

func TestSnakeReset(t *testing.T) {
	s := NewSnake(Cell{1, 1})
	s.Grow(Cell{2, 1})
	s.Reset(CenterCell())
	if s.Len() != 1 || s.Head() != (Cell{10, 10}) {
		t.Errorf("Reset = %v", s.Cells())
	}
}
