package client

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/loop/game"
	"github.com/tomz197/snake/internal/physics"
)

// styles holds the text styles for one output. Sessions are not always
// TTYs (SSH), so the color profile is fixed rather than detected.
type styles struct {
	title  lipgloss.Style
	text   lipgloss.Style
	prompt lipgloss.Style
	hud    lipgloss.Style
	dim    lipgloss.Style
	edible lipgloss.Style
	warn   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		text:   r.NewStyle(),
		prompt: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		hud:    r.NewStyle().Foreground(lipgloss.Color("15")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
		edible: r.NewStyle().Foreground(lipgloss.Color("9")),
		warn:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// figlet "small"
var titleArt = []string{
	`  ___ _  _   _   _  _____ `,
	` / __| \| | /_\ | |/ / __|`,
	" \\__ \\ .` |/ _ \\| ' <| _| ",
	` |___/_|\_/_/ \_\_|\_\___|`,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	snap := c.world.Snapshot()

	// On game state or overlay transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := snap.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	shutdownChanged := c.state.shutdown != c.state.wasShutdown
	if stateChanged || inactiveChanged || shutdownChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = snap.GameState
		c.state.wasInactive = c.state.isInactive
		c.state.wasShutdown = c.state.shutdown
	}

	c.canvas.Clear()
	if snap.GameState == game.GameStatePlaying && !c.state.shutdown {
		c.drawField(snap)
	}
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds the render area
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(snap)

	return c.chunkWriter.Flush()
}

// drawField draws the playfield outline, the HUD separator and all entities.
func (c *Client) drawField(snap game.Snapshot) {
	c.canvas.StrokeRect(physics.Rect{
		X: 0,
		Y: config.HUDHeight,
		W: config.ScreenWidth,
		H: config.ScreenHeight - config.HUDHeight,
	})

	for _, b := range snap.Bodies {
		c.canvas.FillRect(b.Rect())
	}
	if snap.Head != nil {
		c.canvas.FillRect(snap.Head.Rect())
	}
}

// drawUI draws the text overlay for the current state.
func (c *Client) drawUI(snap game.Snapshot) {
	centerY := c.canvas.TerminalHeight() / 2

	if c.state.shutdown {
		c.drawShutdownScreen(centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerY)
		return
	}

	switch snap.GameState {
	case game.GameStatePlaying:
		c.drawEdible(snap)
		c.drawPlayingHUD(snap)
	case game.GameStateStart:
		c.drawStartScreen(centerY, snap)
	case game.GameStateDead:
		c.drawDeadScreen(centerY, snap)
	}

	if c.state.noticeTimer > 0 {
		c.writeCentered(c.canvas.TerminalHeight(), c.state.notice, c.styles.dim)
	}
}

// writeAt writes styled text at a 1-based canvas position and marks the
// cells so the canvas repaints them once the text is gone.
func (c *Client) writeAt(col, row int, s string, style lipgloss.Style) {
	out := style.Render(s)
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	c.chunkWriter.WriteAt(col, row, out)
	c.canvas.MarkTextDirty(col, row, lipgloss.Width(out))
}

// writeCentered writes styled text horizontally centered on a row.
func (c *Client) writeCentered(row int, s string, style lipgloss.Style) {
	col := c.canvas.TerminalWidth()/2 - lipgloss.Width(s)/2 + 1
	c.writeAt(col, row, s, style)
}

// writeBlock writes lines centered as a block, starting at row.
// Returns the row after the block.
func (c *Client) writeBlock(row int, lines []string, style lipgloss.Style) int {
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	col := c.canvas.TerminalWidth()/2 - width/2 + 1
	for i, line := range lines {
		c.writeAt(col, row+i, line, style)
	}
	return row + len(lines)
}

// artFits reports whether ASCII art fits the render area.
func (c *Client) artFits(art []string) bool {
	return lipgloss.Width(art[0])+2 <= c.canvas.TerminalWidth()
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerY int, snap game.Snapshot) {
	row := centerY - 7
	if c.artFits(titleArt) {
		row = c.writeBlock(row, titleArt, c.styles.title)
	} else {
		c.writeCentered(row, "SNAKE", c.styles.title)
		row++
	}

	c.writeCentered(row+1, "~ eat, grow, don't bite your tail ~", c.styles.dim)

	controls := []string{
		"Arrows / WASD  . . Move",
		"SPACE  . . . . .  Start",
		"Q  . . . . . . . . Quit",
	}
	c.writeCentered(row+3, "Controls", c.styles.text)
	row = c.writeBlock(row+4, controls, c.styles.text)

	if snap.MessageVisible {
		c.writeCentered(row+1, ">>  Press SPACE to start  <<", c.styles.prompt)
	}

	if players := c.server.Players(); players > 1 {
		c.writeCentered(row+3, fmt.Sprintf("Players online: %d", players), c.styles.dim)
	}
}

// drawPlayingHUD draws score and high score in the HUD band.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(snap game.Snapshot) {
	_, row := c.canvas.LogicalToTerminal(0, config.HUDHeight/2)

	c.writeAt(2, row, fmt.Sprintf("Score: %-6d", snap.Score), c.styles.hud)

	high := fmt.Sprintf("High Score: %-6d", snap.HighScore)
	c.writeAt(c.canvas.TerminalWidth()-len(high), row, high, c.styles.hud)
}

// drawEdible overlays the edible as a glyph; it is smaller than a body
// segment and reads better as a character than as scaled pixels.
func (c *Client) drawEdible(snap game.Snapshot) {
	if snap.Edible == nil {
		return
	}
	col, row := c.canvas.LogicalToTerminal(snap.Edible.X, snap.Edible.Y)
	c.writeAt(col, row, "●", c.styles.edible)
}

// drawDeadScreen draws the game over screen with the leaderboard.
func (c *Client) drawDeadScreen(centerY int, snap game.Snapshot) {
	row := centerY - 8
	if c.artFits(gameOverArt) {
		row = c.writeBlock(row, gameOverArt, c.styles.warn)
	} else {
		c.writeCentered(row, "GAME OVER", c.styles.warn)
		row++
	}

	c.writeCentered(row+1, fmt.Sprintf("Score: %d", snap.Score), c.styles.text)
	c.writeCentered(row+2, fmt.Sprintf("High Score: %d", snap.HighScore), c.styles.text)
	row += 4

	if top := c.server.TopScores(); len(top) > 0 {
		c.writeCentered(row, "Top scores", c.styles.dim)
		lines := make([]string, len(top))
		for i, e := range top {
			lines[i] = fmt.Sprintf("%d. %-*s %5d", i+1, config.MaxUsernameLength, e.Username, e.Score)
		}
		row = c.writeBlock(row+1, lines, c.styles.dim) + 1
	}

	if snap.MessageVisible {
		c.writeCentered(row, ">>  Press SPACE to restart  <<", c.styles.prompt)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	c.writeCentered(centerY-2, "INACTIVITY WARNING", c.styles.warn)

	remaining := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.writeCentered(centerY, fmt.Sprintf("Disconnecting in %d seconds.", remaining), c.styles.text)

	c.writeCentered(centerY+2, "Press any key to continue", c.styles.dim)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.writeCentered(centerY-3, "SERVER SHUTTING DOWN", c.styles.warn)
	c.writeCentered(centerY-1, "The server is restarting for maintenance.", c.styles.text)
	c.writeCentered(centerY, "Please reconnect in a moment.", c.styles.text)

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining), c.styles.text)
	c.writeCentered(centerY+4, "Press Q to disconnect now", c.styles.dim)
}
