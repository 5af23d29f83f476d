package object

import "github.com/tomz197/snake/internal/loop/config"

// Edible is the collectible that scores a point when eaten.
type Edible struct {
	Box
}

// NewEdible creates an edible centered on (x, y).
func NewEdible(x, y float64) *Edible {
	return &Edible{Box: Box{X: x, Y: y, Size: config.EdibleSize}}
}
