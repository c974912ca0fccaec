package tetris

import "fmt"

// Piece is the falling tetromino. It is a value; every transform returns a
// new Piece and leaves the receiver untouched.
type Piece struct {
	Position    Vector
	Shape       Shape
	Orientation Orientation
}

// NewPiece creates a North-facing piece of the given shape at position
func NewPiece(shape Shape, position Vector) Piece {
	return Piece{Position: position, Shape: shape, Orientation: North}
}

// Blocks returns the four absolute cells covered by the piece
func (p Piece) Blocks() [4]Vector {
	offsets := blockTable[p.Shape][p.Orientation]
	var blocks [4]Vector
	for i, offset := range offsets {
		blocks[i] = p.Position.Add(offset)
	}
	return blocks
}

// WithPosition returns a copy of the piece moved to position
func (p Piece) WithPosition(position Vector) Piece {
	p.Position = position
	return p
}

// WithOrientation returns a copy of the piece facing orientation
func (p Piece) WithOrientation(orientation Orientation) Piece {
	p.Orientation = orientation
	return p
}

// Moved returns a copy of the piece translated by offset
func (p Piece) Moved(offset Vector) Piece {
	return p.WithPosition(p.Position.Add(offset))
}

// Rotated returns a copy of the piece with its orientation turned one step.
// The position is not corrected; see Rotate for kick resolution.
func (p Piece) Rotated(dir Direction) Piece {
	return p.WithOrientation(dir.Apply(p.Orientation))
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s @ %s", p.Shape, p.Orientation, p.Position)
}
