package game

// Cell is one square of the playfield. The y axis points up.
type Cell struct {
	X, Y int
}

// InBounds reports whether c lies on the GridSize x GridSize playfield.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Add returns c offset by the direction's unit delta.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// CenterCell is where a fresh snake starts.
func CenterCell() Cell {
	return Cell{X: GridSize / 2, Y: GridSize / 2}
}

type Direction uint8

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// Delta returns the unit step for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// Snake is an ordered run of cells; index 0 is the head.
type Snake struct {
	body []Cell
}

func NewSnake(start Cell) *Snake {
	body := make([]Cell, 1, GridSize*GridSize)
	body[0] = start
	return &Snake{body: body}
}

// Reset shrinks the snake back to a single cell at start.
func (s *Snake) Reset(start Cell) {
	s.body = append(s.body[:0], start)
}

func (s *Snake) Len() int   { return len(s.body) }
func (s *Snake) Head() Cell { return s.body[0] }
func (s *Snake) Tail() Cell { return s.body[len(s.body)-1] }

// Cells exposes the body head-first. Callers must not modify it.
func (s *Snake) Cells() []Cell { return s.body }

// Advance returns the cell the head would move into. It does not mutate s.
func (s *Snake) Advance(d Direction) Cell {
	return s.Head().Add(d)
}

// Grow prepends a new head.
func (s *Snake) Grow(head Cell) {
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head
}

// Shrink drops the tail. A single-cell snake is left unchanged.
func (s *Snake) Shrink() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

func (s *Snake) Contains(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}
