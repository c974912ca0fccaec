package tetris

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	I Shape = iota
	O
	J
	L
	S
	T
	Z
)

// ShapeCount is the number of distinct shapes
const ShapeCount = 7

var shapeNames = [ShapeCount]string{"I", "O", "J", "L", "S", "T", "Z"}

// Shapes returns every shape in canonical order
func Shapes() [ShapeCount]Shape {
	return [ShapeCount]Shape{I, O, J, L, S, T, Z}
}

func (s Shape) String() string {
	if int(s) < ShapeCount {
		return shapeNames[s]
	}
	return "?"
}

// Orientation is one of the four rotation states of a piece.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

const orientationCount = 4

var orientationNames = [orientationCount]string{"North", "East", "South", "West"}

// Clockwise returns the next orientation in the North → East → South → West cycle
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % orientationCount
}

// CounterClockwise returns the previous orientation in the cycle
func (o Orientation) CounterClockwise() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

func (o Orientation) String() string {
	if o < orientationCount {
		return orientationNames[o]
	}
	return "?"
}

// Direction is a rotation request.
type Direction uint8

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Apply returns the orientation reached by rotating o in direction d
func (d Direction) Apply(o Orientation) Orientation {
	if d == CounterClockwise {
		return o.CounterClockwise()
	}
	return o.Clockwise()
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// blockTable holds the four cell offsets of every shape in every orientation.
// Each orientation is the previous one rotated a quarter turn clockwise about
// the origin, offset by offset; the rotation kicks restore the standard
// resting positions.
var blockTable = [ShapeCount][orientationCount][4]Vector{
	I: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {0, -2}},
		South: {{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	O: {
		North: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		East:  {{0, 0}, {0, -1}, {1, 0}, {1, -1}},
		South: {{0, 0}, {-1, 0}, {0, -1}, {-1, -1}},
		West:  {{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
	},
	J: {
		North: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		East:  {{1, 1}, {0, 1}, {0, 0}, {0, -1}},
		South: {{1, -1}, {1, 0}, {0, 0}, {-1, 0}},
		West:  {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
	L: {
		North: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		East:  {{1, -1}, {0, 1}, {0, 0}, {0, -1}},
		South: {{-1, -1}, {1, 0}, {0, 0}, {-1, 0}},
		West:  {{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
	},
	S: {
		North: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		South: {{1, 0}, {0, 0}, {0, -1}, {-1, -1}},
		West:  {{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	},
	T: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, 0}},
		South: {{1, 0}, {0, 0}, {-1, 0}, {0, -1}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	},
	Z: {
		North: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		East:  {{1, 1}, {1, 0}, {0, 0}, {0, -1}},
		South: {{1, -1}, {0, -1}, {0, 0}, {-1, 0}},
		West:  {{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
}

// Offsets returns the relative cells of shape s in orientation o
func Offsets(s Shape, o Orientation) [4]Vector {
	return blockTable[s][o]
}
