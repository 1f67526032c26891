package core

import "fmt"

// Position is a cell on the board grid
// X grows to the right, Y grows downward
type Position struct {
	X, Y uint16
}

// Pos is a convenience constructor for Position
func Pos(x, y uint16) Position {
	return Position{X: x, Y: y}
}

// String returns the position as (x,y)
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether p lies inside [0,width)x[0,height)
func (p Position) InBounds(width, height uint16) bool {
	return p.X < width && p.Y < height
}
