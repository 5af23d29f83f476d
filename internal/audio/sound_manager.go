// Package audio plays the game's sound effects.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/snake/internal/loop/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	gain       = 0.3
)

// Player plays game sounds. Implementations must not block the caller.
type Player interface {
	Play(s game.Sound)
}

// SoundManager synthesizes sound effects on the local speaker.
// All methods are safe to call without a successful Initialize; they
// become no-ops so the game keeps running without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// Compile-time check that SoundManager implements Player.
var _ Player = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// Play queues the effect for s on the mixer.
func (sm *SoundManager) Play(s game.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := effectFor(s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// effectFor builds a fresh streamer for the given sound.
func effectFor(s game.Sound) beep.Streamer {
	switch s {
	case game.SoundPickup:
		return pickupEffect()
	case game.SoundLose:
		return jingle(sampleRate, gain,
			note{freq: 440, duration: 120 * time.Millisecond, wave: WaveSquare},
			note{freq: 330, duration: 120 * time.Millisecond, wave: WaveSquare},
			note{freq: 220, duration: 240 * time.Millisecond, wave: WaveSquare},
		)
	case game.SoundStart:
		return jingle(sampleRate, gain,
			note{freq: 523.25, duration: 80 * time.Millisecond, wave: WaveTriangle},
			note{freq: 659.25, duration: 80 * time.Millisecond, wave: WaveTriangle},
			note{freq: 783.99, duration: 160 * time.Millisecond, wave: WaveTriangle},
		)
	default:
		return nil
	}
}

// pickupEffect is a short high blip followed by a higher one.
func pickupEffect() beep.Streamer {
	const blip = 50 * time.Millisecond

	low, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return nil
	}
	high, err := generators.SineTone(sampleRate, 1320)
	if err != nil {
		return nil
	}
	return beep.Seq(
		NewEnvelope(beep.Take(sampleRate.N(blip), low), blip, 2*time.Millisecond, blip/2, gain, sampleRate),
		NewEnvelope(beep.Take(sampleRate.N(blip), high), blip, 2*time.Millisecond, blip/2, gain, sampleRate),
	)
}
