package client

import (
	"time"

	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/game"
)

// ShutdownDisplaySeconds is how long the shutdown notice stays up before
// the client disconnects on its own.
const ShutdownDisplaySeconds = 10.0

// NoticeDisplaySeconds is how long a lobby notice stays on screen.
const NoticeDisplaySeconds = 4.0

// ClientState holds per-connection presentation state. The game itself
// lives in game.World.
type ClientState struct {
	Input         input.Input
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	prevGameState game.GameState
	isInactive    bool // Whether the client is in inactive warning state
	wasInactive   bool
	shutdown      bool    // Server announced shutdown
	wasShutdown   bool
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
	notice        string  // Lobby message shown at the bottom
	noticeTimer   float64
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:       true,
		prevGameState: game.GameStateStart,
	}
}
