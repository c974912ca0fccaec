package tetris

import "fmt"

// Vector is a cell coordinate or offset on the board. Y grows upwards.
type Vector struct {
	X, Y int32
}

// Vec creates a Vector from its components
func Vec(x, y int32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector) Sub(o Vector) Vector {
	return v.Add(Vector{X: -o.X, Y: -o.Y})
}

// AddXY adds a raw offset pair
func (v Vector) AddXY(dx, dy int32) Vector {
	return v.Add(Vector{X: dx, Y: dy})
}

// SubXY subtracts a raw offset pair
func (v Vector) SubXY(dx, dy int32) Vector {
	return v.Sub(Vector{X: dx, Y: dy})
}

// Mul scales both components
func (v Vector) Mul(s int32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div divides both components, truncating towards zero. A zero divisor is a
// programming error and panics.
func (v Vector) Div(s int32) Vector {
	if s == 0 {
		panic("tetris: division by zero")
	}
	return Vector{X: v.X / s, Y: v.Y / s}
}

// RotateClockwise turns the vector a quarter turn clockwise about the origin.
func (v Vector) RotateClockwise() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
