package game

import (
	"github.com/tomz197/snake/internal/object"
	"github.com/tomz197/snake/internal/physics"
)

// headOutOfBounds reports whether the head touches or crosses a wall or the HUD band.
func headOutOfBounds(h *object.Head, bounds physics.Bounds) bool {
	return bounds.TouchesEdge(h.Rect())
}

// headTouchesBody reports whether the head overlaps a body segment.
func headTouchesBody(h *object.Head, b *object.Body) bool {
	return h.Rect().Overlaps(b.Rect())
}

// headTouchesEdible reports whether the head overlaps the edible.
func headTouchesEdible(h *object.Head, e *object.Edible) bool {
	return h.Rect().Overlaps(e.Rect())
}

// edibleTouchesBody reports whether the edible overlaps a body segment.
func edibleTouchesBody(e *object.Edible, b *object.Body) bool {
	return e.Rect().Overlaps(b.Rect())
}

// edibleOnBody reports whether the edible overlaps any segment. grid must
// index bodies by their position in the slice.
func edibleOnBody(e *object.Edible, bodies []*object.Body, grid *physics.SpatialGrid) bool {
	hit := false
	grid.QueryAround(e.X, e.Y, func(i int) bool {
		hit = edibleTouchesBody(e, bodies[i])
		return hit
	})
	return hit
}
