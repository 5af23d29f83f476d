package game

// IntentType identifies what the presentation layer should do.
type IntentType int

const (
	IntentPlaySound      IntentType = iota // Play Intent.Sound
	IntentScoreChanged                     // Score or high score changed
	IntentGameOver                         // Session lost
	IntentSessionStarted                   // New session began
)

// String returns the intent name.
func (t IntentType) String() string {
	switch t {
	case IntentPlaySound:
		return "play_sound"
	case IntentScoreChanged:
		return "score_changed"
	case IntentGameOver:
		return "game_over"
	case IntentSessionStarted:
		return "session_started"
	default:
		return "unknown"
	}
}

// Sound is a sound effect kind.
type Sound int

const (
	SoundPickup Sound = iota
	SoundLose
	SoundStart
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundPickup:
		return "pickup"
	case SoundLose:
		return "lose"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// Intent is a fire-and-forget request raised by the simulation.
type Intent struct {
	Type      IntentType
	Sound     Sound // For IntentPlaySound
	Score     int   // For IntentScoreChanged and IntentGameOver
	HighScore int   // For IntentScoreChanged, IntentGameOver and IntentSessionStarted
}
