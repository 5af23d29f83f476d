// Package object defines the snake entities: head, body segments and edibles.
package object

import (
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Direction is an axis-aligned unit vector. The zero value is "none".
type Direction struct {
	DX, DY float64
}

// The four movement directions.
var (
	DirRight = Direction{DX: 1}
	DirLeft  = Direction{DX: -1}
	DirUp    = Direction{DY: -1}
	DirDown  = Direction{DY: 1}
)

// String returns a short name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// ResolveDirection returns the direction selected by in, or current if no
// movement key is held. Keys are checked right, left, up, down; the last one
// pressed in that order wins. Reversal is not prevented.
func ResolveDirection(current Direction, in Input) Direction {
	d := current
	if in.Right {
		d = DirRight
	}
	if in.Left {
		d = DirLeft
	}
	if in.Up {
		d = DirUp
	}
	if in.Down {
		d = DirDown
	}
	return d
}

// Box is an entity with a center position and square size.
type Box struct {
	X, Y float64 // Center
	Size float64
}

// Rect returns the entity's bounding box.
func (b Box) Rect() physics.Rect {
	return physics.RectAt(b.X, b.Y, b.Size)
}

// GetPosition returns the center of the entity.
func (b Box) GetPosition() (float64, float64) {
	return b.X, b.Y
}
