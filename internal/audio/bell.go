package audio

import (
	"io"

	"github.com/tomz197/snake/internal/loop/game"
)

// Bell rings the terminal bell for sounds worth interrupting the player for.
// Used where no local speaker is available, such as SSH sessions.
type Bell struct {
	W io.Writer
}

// Play writes BEL for pickups and losses. The start jingle is skipped.
func (b Bell) Play(s game.Sound) {
	if b.W == nil || s == game.SoundStart {
		return
	}
	_, _ = io.WriteString(b.W, "\a")
}

// Mute discards all sounds.
type Mute struct{}

// Play does nothing.
func (Mute) Play(game.Sound) {}
