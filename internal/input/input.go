// Package input turns raw terminal bytes into per-tick key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report no key-up events, so holds are approximated by repeat bytes.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current tick's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Space   bool
	Pressed []byte // Raw bytes read this tick
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	space time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error (including io.EOF).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the key state for this tick. A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.apply(buf, time.Now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// ResetKeyInput forgets all held keys, so a key that started a game is not
// read again on the following ticks.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// apply parses buf, updates key timestamps and builds the input for now.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    held(now, s.state.quit),
		Left:    held(now, s.state.left),
		Right:   held(now, s.state.right),
		Up:      held(now, s.state.up),
		Down:    held(now, s.state.down),
		Space:   held(now, s.state.space),
		Pressed: buf,
	}
}

func held(now, last time.Time) bool {
	return !last.IsZero() && now.Sub(last) < keyHoldDuration
}

// applyByteToState updates the key state timestamps based on the pressed byte.
// Unknown bytes are ignored.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	}
}
