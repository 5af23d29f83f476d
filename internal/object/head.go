package object

import "github.com/tomz197/snake/internal/loop/config"

// Head is the player-controlled front of the snake.
type Head struct {
	Box
	Direction Direction

	// EdibleTimer counts ticks until the next edible may appear.
	EdibleTimer int
	// EdibleVisible is set while an edible is on the field.
	EdibleVisible bool
}

// NewHead creates a head at the start position, facing right.
func NewHead(edibleTimer int) *Head {
	return &Head{
		Box: Box{
			X:    config.HeadStartX,
			Y:    config.HeadStartY,
			Size: config.HeadSize,
		},
		Direction:   DirRight,
		EdibleTimer: edibleTimer,
	}
}

// Move translates the head by speed pixels along its direction.
func (h *Head) Move(speed float64) {
	h.X += h.Direction.DX * speed
	h.Y += h.Direction.DY * speed
}
