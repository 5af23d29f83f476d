// Package client drives one player's game: it samples input, steps the
// simulation at a fixed rate, acts on the resulting intents and renders.
package client

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/audio"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/loop/game"
	"github.com/tomz197/snake/internal/loop/server"
)

// Client handles simulation, rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	world        *game.World
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	sound        audio.Player
	logger       *log.Logger
	styles       styles
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Sound        audio.Player // Defaults to audio.Mute
	Logger       *log.Logger  // Defaults to a discarding logger
	Rand         *rand.Rand   // Defaults to a clock-seeded source
}

// NewClient creates a new client registered with the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Mute{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	handle := gs.RegisterClient(opts.Username)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ScreenWidth, config.ScreenHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		world:        game.NewWorld(opts.Rand),
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		username:     handle.Username,
		termSizeFunc: termSizeFunc,
		sound:        sound,
		logger:       logger.With("user", handle.Username),
		styles:       newStyles(w),
	}
}

// Run starts the client loop. Blocks until the player quits, the input
// ends or the server shuts down.
func (c *Client) Run() error {
	defer c.server.UnregisterClient(c.handle.ID)

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.SetTitle(c.writer, config.Caption)
	draw.ClearScreen(c.writer)
	c.canvas.ForceRedraw()

	blink := time.NewTicker(config.BlinkInterval)
	defer blink.Stop()

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		switch {
		case c.state.shutdown:
			c.updateShutdownState()
		case c.state.Running:
			c.dispatch(c.world.Step(c.state.Input))
		}

		select {
		case <-blink.C:
			c.world.ToggleMessage()
		default:
		}

		if c.state.noticeTimer > 0 {
			c.state.noticeTimer -= c.state.delta.Seconds()
		}

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads this tick's input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive player")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.shutdown = true
				c.state.shutdownTimer = ShutdownDisplaySeconds
			case server.EventNewRecord:
				c.state.notice = fmt.Sprintf("New record: %s with %d", event.Username, event.Score)
				c.state.noticeTimer = NoticeDisplaySeconds
			}
		default:
			return
		}
	}
}

// dispatch acts on the intents raised by one simulation step.
func (c *Client) dispatch(intents []game.Intent) {
	for _, in := range intents {
		switch in.Type {
		case game.IntentPlaySound:
			c.sound.Play(in.Sound)
		case game.IntentSessionStarted:
			input.ResetKeyInput(c.inputStream)
			c.logger.Info("session started", "high_score", in.HighScore)
		case game.IntentScoreChanged:
			c.logger.Debug("score changed", "score", in.Score, "high_score", in.HighScore)
		case game.IntentGameOver:
			ranked := c.server.SubmitScore(c.handle.ID, in.Score)
			c.logger.Info("game over", "score", in.Score, "high_score", in.HighScore, "ranked", ranked)
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		c.logger.Debug("terminal size unavailable", "err", err)
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.ForceRedraw()
	}

	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize fits the playfield's aspect ratio into the terminal, capped
// at the max render resolution, and computes the centering offset.
// A terminal row holds two roughly square sub-pixels.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	maxWidth := min(termWidth, config.MaxTermWidth)
	maxHeight := min(termHeight, config.MaxTermHeight)

	renderWidth = maxWidth
	renderHeight = int(math.Round(float64(maxWidth) * config.ScreenHeight / config.ScreenWidth / 2))
	if renderHeight > maxHeight {
		renderHeight = maxHeight
		renderWidth = int(math.Round(float64(maxHeight) * 2 * config.ScreenWidth / config.ScreenHeight))
	}
	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
