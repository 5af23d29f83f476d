package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/snake/internal/physics"
)

// Block characters used by the canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// cellUnknown marks a terminal cell whose on-screen content is not known.
const cellUnknown rune = 0

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// Stays under a typical 1500 byte MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game code draws in logical pixels; the canvas scales them to the terminal.
// Render only emits cells that changed since the previous frame.
type Canvas struct {
	termWidth      int    // Terminal columns used for rendering
	termHeight     int    // Terminal rows used for rendering
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]
	prev           []rune // Cell contents as last emitted, [row * termWidth + col]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when the terminal is larger than
	// the render area. 0-based columns/rows to skip.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A size change forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]rune, termHeight*termWidth)
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the render area column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the render area row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw assumes the screen was cleared: every set cell is emitted on
// the next Render.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = BlockEmpty
	}
}

// Invalidate marks a 1-based terminal cell (relative to the canvas) as
// overwritten by something else, so the next Render repaints it.
func (c *Canvas) Invalidate(col, row int) {
	col--
	row--
	if col >= 0 && col < c.termWidth && row >= 0 && row < c.termHeight {
		c.prev[row*c.termWidth+col] = cellUnknown
	}
}

// MarkTextDirty invalidates n cells starting at a 1-based position, for
// text written over the canvas outside of Render.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	for i := 0; i < n; i++ {
		c.Invalidate(col+i, row)
	}
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixelSpan converts a logical [lo, hi) range to an inclusive pixel range.
// Every non-empty range covers at least one pixel.
func pixelSpan(lo, hi, scale float64) (int, int) {
	p0 := int(math.Round(lo * scale))
	p1 := int(math.Round(hi*scale)) - 1
	if p1 < p0 {
		p1 = p0
	}
	return p0, p1
}

// FillRect fills a logical rectangle.
func (c *Canvas) FillRect(r physics.Rect) {
	x0, x1 := pixelSpan(r.Left(), r.Right(), c.scaleX)
	y0, y1 := pixelSpan(r.Top(), r.Bottom(), c.scaleY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y)
		}
	}
}

// StrokeRect draws the one-pixel outline of a logical rectangle.
func (c *Canvas) StrokeRect(r physics.Rect) {
	x0, x1 := pixelSpan(r.Left(), r.Right(), c.scaleX)
	y0, y1 := pixelSpan(r.Top(), r.Bottom(), c.scaleY)
	for x := x0; x <= x1; x++ {
		c.setPixel(x, y0)
		c.setPixel(x, y1)
	}
	for y := y0; y <= y1; y++ {
		c.setPixel(x0, y)
		c.setPixel(x1, y)
	}
}

// HLine draws a horizontal line at logical y between logical x0 and x1.
func (c *Canvas) HLine(y, x0, x1 float64) {
	px0, px1 := pixelSpan(x0, x1, c.scaleX)
	py := int(math.Round(y * c.scaleY))
	for x := px0; x <= px1; x++ {
		c.setPixel(x, py)
	}
}

// cellAt returns the block character for a terminal cell.
func (c *Canvas) cellAt(col, row int) rune {
	top := c.pixels[(row*2)*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// Render writes the cells that changed since the last Render.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			ch := c.cellAt(col, row)
			if c.prev[idx] == ch {
				continue
			}
			c.prev[idx] = ch

			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// is larger than the render area on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	moveTo := func(row, col int) {
		buf.WriteString("\033[")
		buf.WriteString(strconv.Itoa(row))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(col))
		buf.WriteByte('H')
	}

	if hasV {
		if hasH {
			moveTo(top, left)
			buf.WriteString("┌" + line + "┐")
			moveTo(bottom, left)
			buf.WriteString("└" + line + "┘")
		} else {
			moveTo(top, c.offsetCol+1)
			buf.WriteString(line)
			moveTo(bottom, c.offsetCol+1)
			buf.WriteString(line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			moveTo(row, left)
			buf.WriteString("│")
			moveTo(row, right)
			buf.WriteString("│")
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row) relative to the canvas.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
