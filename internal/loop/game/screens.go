package game

import "github.com/tomz197/snake/internal/object"

// updateIdle handles the title and game-over screens. Leftover bodies and
// the edible are cleared before a new session can start.
func (w *World) updateIdle(startPressed bool) {
	w.clearField()

	if startPressed {
		w.Start()
	}
}

// Snapshot is a copy of the world for rendering.
type Snapshot struct {
	GameState      GameState
	Head           *object.Box // nil when there is no head
	Direction      object.Direction
	Bodies         []object.Box // Oldest first
	Edible         *object.Box  // nil when no edible is on the field
	Score          int
	HighScore      int
	MessageVisible bool
}

// Snapshot copies the renderable state. The result shares no memory with the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		GameState:      w.GameState,
		Bodies:         make([]object.Box, len(w.Bodies)),
		Score:          w.Score,
		HighScore:      w.HighScore,
		MessageVisible: w.MessageVisible,
	}
	for i, b := range w.Bodies {
		s.Bodies[i] = b.Box
	}
	if w.Head != nil {
		box := w.Head.Box
		s.Head = &box
		s.Direction = w.Head.Direction
	}
	if w.Edible != nil {
		box := w.Edible.Box
		s.Edible = &box
	}
	return s
}

// Begun reports whether the snapshot was taken after the first session started.
func (s Snapshot) Begun() bool {
	return s.GameState != GameStateStart
}
