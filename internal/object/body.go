package object

import "github.com/tomz197/snake/internal/loop/config"

// Body is one trailing segment of the snake.
type Body struct {
	Box
	Lifespan      int    // Ticks until removal
	Invincibility int    // Ticks until the segment can cause a loss
	BornTick      uint64 // Tick on which the segment was created
}

// BodyLifespan returns the lifespan of a segment created at the given score.
func BodyLifespan(score int) int {
	return config.BodyBaseLifespan + score*config.BodyLifespanPerPoint
}

// NewBody creates a segment centered on (x, y).
func NewBody(x, y float64, score int, tick uint64) *Body {
	return &Body{
		Box:           Box{X: x, Y: y, Size: config.BodySize},
		Lifespan:      BodyLifespan(score),
		Invincibility: config.BodyInvincibility,
		BornTick:      tick,
	}
}

// Age advances both timers by one tick. Returns true when the lifespan is
// used up and the segment should be removed.
func (b *Body) Age() (expired bool) {
	b.Lifespan--
	if b.Invincibility > 0 {
		b.Invincibility--
	}
	return b.Lifespan <= 0
}

// IsLethal reports whether touching the segment ends the session.
func (b *Body) IsLethal() bool {
	return b.Invincibility <= 0
}
