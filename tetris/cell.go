package tetris

// CellKind discriminates the variants of Cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindBlocked
	KindOccupied
)

// Cell is the content of one board square: Empty, Blocked or Occupied by a
// shape. Blocked is only ever returned for coordinates outside the board.
type Cell uint8

const (
	Empty   Cell = 0
	Blocked Cell = 1

	occupiedBase Cell = 2
)

// Occupied returns the cell content left behind by a locked piece of shape s
func Occupied(s Shape) Cell {
	return occupiedBase + Cell(s)
}

// Kind reports which variant c holds
func (c Cell) Kind() CellKind {
	switch {
	case c == Empty:
		return KindEmpty
	case c == Blocked:
		return KindBlocked
	default:
		return KindOccupied
	}
}

// Shape returns the occupying shape, if any
func (c Cell) Shape() (Shape, bool) {
	if c.Kind() != KindOccupied {
		return 0, false
	}
	return Shape(c - occupiedBase), true
}

// IsEmpty reports whether the cell is Empty
func (c Cell) IsEmpty() bool {
	return c == Empty
}

func (c Cell) String() string {
	switch c.Kind() {
	case KindEmpty:
		return "."
	case KindBlocked:
		return "#"
	default:
		shape, _ := c.Shape()
		return shape.String()
	}
}
