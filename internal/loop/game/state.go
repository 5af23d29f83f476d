// Package game implements the snake simulation: movement, growth, edible
// spawning, collisions and the session state machine. It performs no I/O;
// each Step returns the intents the presentation layer should act on.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/object"
	"github.com/tomz197/snake/internal/physics"
)

// GameState represents the current session phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen, never played yet
	GameStatePlaying                  // Active gameplay
	GameStateDead                     // Game over, waiting for restart
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// bodyGridCellSize must be >= the per-axis center distance at which an
// edible and a body can overlap ((BodySize + EdibleSize) / 2).
const bodyGridCellSize = config.BodySize

// World owns the whole session: entities, score and phase.
type World struct {
	GameState      GameState
	Head           *object.Head   // nil unless playing
	Bodies         []*object.Body // Oldest first
	Edible         *object.Edible // nil when no edible is on the field
	Score          int
	HighScore      int
	MessageVisible bool   // Blink state of the "press space" prompt
	Tick           uint64 // Number of Step calls so far

	rng       *rand.Rand
	bounds    physics.Bounds
	bodyGrid  *physics.SpatialGrid
	prevSpace bool
	intents   []Intent
}

// NewWorld creates a world on the title screen. A nil rng uses a
// clock-seeded generator.
func NewWorld(rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &World{
		GameState:      GameStateStart,
		MessageVisible: true,
		rng:            rng,
		bounds: physics.Bounds{
			Left:   0,
			Top:    config.HUDHeight,
			Right:  config.ScreenWidth,
			Bottom: config.ScreenHeight,
		},
		bodyGrid: physics.NewSpatialGrid(config.ScreenWidth, config.ScreenHeight, bodyGridCellSize),
	}
}

// Active reports whether a session is being played.
func (w *World) Active() bool {
	return w.GameState == GameStatePlaying
}

// Begun reports whether at least one session has been started.
func (w *World) Begun() bool {
	return w.GameState != GameStateStart
}

// Step advances the simulation by one tick using the given input snapshot
// and returns the intents raised during the tick, in order.
// The returned slice is owned by the caller.
func (w *World) Step(in object.Input) []Intent {
	w.intents = nil
	w.Tick++

	// Start is edge-triggered: holding space does not restart repeatedly.
	startPressed := in.Space && !w.prevSpace
	w.prevSpace = in.Space

	switch w.GameState {
	case GameStateStart, GameStateDead:
		w.updateIdle(startPressed)
	case GameStatePlaying:
		w.updatePlaying(in)
	}

	return w.intents
}

// Start begins a new session. High score is kept.
func (w *World) Start() {
	w.clearField()
	w.Head = object.NewHead(w.edibleTimer())
	w.Score = 0
	w.GameState = GameStatePlaying

	w.emit(Intent{Type: IntentSessionStarted, HighScore: w.HighScore})
	w.emit(Intent{Type: IntentPlaySound, Sound: SoundStart})
}

// ToggleMessage flips the prompt blink state. No-op while playing.
func (w *World) ToggleMessage() {
	if w.Active() {
		return
	}
	w.MessageVisible = !w.MessageVisible
}

// edibleTimer draws a new spawn countdown.
func (w *World) edibleTimer() int {
	return randRange(w.rng, config.EdibleTimerMin, config.EdibleTimerMax)
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// clearField removes all bodies and the edible.
func (w *World) clearField() {
	clear(w.Bodies)
	w.Bodies = w.Bodies[:0]
	w.Edible = nil
}

func (w *World) emit(i Intent) {
	w.intents = append(w.intents, i)
}
