package game

import (
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/object"
)

// updatePlaying runs one gameplay tick: head, then bodies, then the edible.
func (w *World) updatePlaying(in object.Input) {
	w.updateHead(in)
	w.updateBodies()
	w.updateEdible()
}

// updateHead steers and moves the head, lays a body segment, runs the
// edible countdown and checks for a pickup.
func (w *World) updateHead(in object.Input) {
	h := w.Head
	if h == nil {
		return
	}

	h.Direction = object.ResolveDirection(h.Direction, in)

	if headOutOfBounds(h, w.bounds) {
		w.lose()
		return
	}

	h.Move(config.HeadSpeed)
	w.Bodies = append(w.Bodies, object.NewBody(h.X, h.Y, w.Score, w.Tick))

	h.EdibleTimer--
	w.spawnEdible()

	if w.Edible != nil && headTouchesEdible(h, w.Edible) {
		w.eatEdible()
	}
}

// spawnEdible places an edible once the countdown has run out and none is
// on the field.
func (w *World) spawnEdible() {
	h := w.Head
	if h.EdibleTimer > 0 || h.EdibleVisible || w.Edible != nil {
		return
	}
	x := randRange(w.rng, config.EdibleMarginSide, config.ScreenWidth-config.EdibleMarginSide)
	y := randRange(w.rng, config.EdibleMarginTop, config.ScreenHeight-config.EdibleMarginBottom)
	w.Edible = object.NewEdible(float64(x), float64(y))
	h.EdibleVisible = true
}

// eatEdible consumes the edible and scores a point.
func (w *World) eatEdible() {
	h := w.Head
	w.Edible = nil
	h.EdibleVisible = false
	h.EdibleTimer = w.edibleTimer()

	w.Score++
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}

	w.emit(Intent{Type: IntentPlaySound, Sound: SoundPickup})
	w.emit(Intent{Type: IntentScoreChanged, Score: w.Score, HighScore: w.HighScore})
}

// updateBodies ages every segment and checks for lethal contact with the
// head. Segments are first aged on the tick after the one that created them.
// A segment expiring this tick can still end the session.
func (w *World) updateBodies() {
	w.bodyGrid.Clear()

	kept := w.Bodies[:0]
	for _, b := range w.Bodies {
		expired := b.BornTick != w.Tick && b.Age()

		if w.Head != nil && b.IsLethal() && headTouchesBody(w.Head, b) {
			w.lose()
		}

		if !expired {
			w.bodyGrid.Insert(b.X, b.Y, len(kept))
			kept = append(kept, b)
		}
	}
	// Drop references to removed segments
	clear(w.Bodies[len(kept):])
	w.Bodies = kept
}

// updateEdible removes an edible that lies on the body; the countdown is
// restarted without scoring.
func (w *World) updateEdible() {
	if w.Edible == nil {
		return
	}
	if !edibleOnBody(w.Edible, w.Bodies, w.bodyGrid) {
		return
	}

	w.Edible = nil
	if h := w.Head; h != nil {
		h.EdibleVisible = false
		h.EdibleTimer = w.edibleTimer()
	}
}

// lose ends the session. Bodies and the edible stay until the next idle tick.
func (w *World) lose() {
	if w.GameState != GameStatePlaying {
		return
	}
	w.GameState = GameStateDead
	w.Head = nil

	w.emit(Intent{Type: IntentPlaySound, Sound: SoundLose})
	w.emit(Intent{Type: IntentGameOver, Score: w.Score, HighScore: w.HighScore})
}
