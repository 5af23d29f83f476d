package client

import (
	"bufio"
	"bytes"
	"io"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomz197/snake/internal/loop/game"
	"github.com/tomz197/snake/internal/loop/server"
)

type recordingPlayer struct {
	mu     sync.Mutex
	sounds []game.Sound
}

func (p *recordingPlayer) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sounds = append(p.sounds, s)
}

func (p *recordingPlayer) played(s game.Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, got := range p.sounds {
		if got == s {
			return true
		}
	}
	return false
}

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, gs server.GameServer, r io.Reader, w io.Writer, p *recordingPlayer) *Client {
	t.Helper()
	return NewClient(gs, bufio.NewReader(r), w, ClientOptions{
		TermSizeFunc: fixedSize(80, 40),
		Username:     "tester",
		Sound:        p,
		Rand:         rand.New(rand.NewSource(1)),
	})
}

func runWithTimeout(t *testing.T, c *Client, timeout time.Duration) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- c.Run() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(timeout):
		t.Fatal("Run did not return")
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                     string
		w, h                     int
		wantW, wantH, offC, offR int
	}{
		{"height bound", 80, 24, 43, 24, 18, 0},
		{"width bound", 40, 40, 40, 22, 0, 9},
		{"capped", 300, 100, 126, 70, 87, 15},
		{"empty", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := clampTermSize(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH || oc != tt.offC || or != tt.offR {
				t.Errorf("clampTermSize(%d,%d) = %d,%d,%d,%d; want %d,%d,%d,%d",
					tt.w, tt.h, w, h, oc, or, tt.wantW, tt.wantH, tt.offC, tt.offR)
			}
		})
	}
}

func TestRunQuitsOnEOF(t *testing.T) {
	gs := server.NewServer()
	out := &syncBuffer{}
	c := newTestClient(t, gs, strings.NewReader(""), out, &recordingPlayer{})
	if gs.Players() != 1 {
		t.Fatalf("Players = %d, want 1", gs.Players())
	}

	runWithTimeout(t, c, 2*time.Second)

	if gs.Players() != 0 {
		t.Error("client still registered after Run")
	}
	if !strings.Contains(out.String(), "\033]0;Snake\007") {
		t.Error("caption not set")
	}
	if !strings.Contains(out.String(), "Press SPACE to start") {
		t.Error("start screen not drawn")
	}
}

func TestRunStartsOnSpace(t *testing.T) {
	gs := server.NewServer()
	pr, pw := io.Pipe()
	player := &recordingPlayer{}
	out := &syncBuffer{}
	c := newTestClient(t, gs, pr, out, player)

	go func() {
		_, _ = pw.Write([]byte(" "))
		time.Sleep(200 * time.Millisecond)
		pw.Close()
	}()

	runWithTimeout(t, c, 3*time.Second)

	if !player.played(game.SoundStart) {
		t.Error("start sound not played")
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Error("HUD not drawn while playing")
	}
}

func TestDispatchGameOverSubmitsScore(t *testing.T) {
	gs := server.NewServer()
	player := &recordingPlayer{}
	c := newTestClient(t, gs, strings.NewReader(""), io.Discard, player)

	c.dispatch([]game.Intent{
		{Type: game.IntentPlaySound, Sound: game.SoundLose},
		{Type: game.IntentGameOver, Score: 4, HighScore: 7},
	})

	if !player.played(game.SoundLose) {
		t.Error("lose sound not played")
	}
	top := gs.TopScores()
	if len(top) != 1 || top[0].Score != 4 || top[0].Username != "tester" {
		t.Errorf("TopScores = %v", top)
	}
}

func TestShutdownEventEndsClient(t *testing.T) {
	gs := server.NewServer()
	c := newTestClient(t, gs, strings.NewReader(""), io.Discard, &recordingPlayer{})

	c.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()
	if !c.state.shutdown {
		t.Fatal("shutdown not recorded")
	}

	c.state.delta = time.Duration(ShutdownDisplaySeconds+1) * time.Second
	c.updateShutdownState()
	if c.state.Running {
		t.Error("client still running after shutdown countdown")
	}
}

func TestNewRecordEventSetsNotice(t *testing.T) {
	gs := server.NewServer()
	c := newTestClient(t, gs, strings.NewReader(""), io.Discard, &recordingPlayer{})
	other := gs.RegisterClient("alice")

	gs.SubmitScore(other.ID, 12)
	c.processServerEvents()

	if !strings.Contains(c.state.notice, "alice") || c.state.noticeTimer <= 0 {
		t.Errorf("notice = %q, timer = %v", c.state.notice, c.state.noticeTimer)
	}
}

func TestDeadScreenShowsLeaderboard(t *testing.T) {
	gs := server.NewServer()
	out := &bytes.Buffer{}
	c := newTestClient(t, gs, strings.NewReader(""), out, &recordingPlayer{})
	gs.SubmitScore(c.handle.ID, 3)

	c.world.Start()
	c.world.GameState = game.GameStateDead
	c.world.Head = nil
	if err := c.drawFrame(); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	for _, want := range []string{"Top scores", "tester", "Press SPACE to restart"} {
		if !strings.Contains(s, want) {
			t.Errorf("dead screen missing %q", want)
		}
	}
}
