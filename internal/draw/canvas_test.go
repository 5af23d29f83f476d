package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/snake/internal/physics"
)

func TestFillRectRendersBlocks(t *testing.T) {
	c := NewScaledCanvas(35, 39, 350, 390)
	c.ForceRedraw()
	c.FillRect(physics.Rect{X: 100, Y: 100, W: 20, H: 20})

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.ContainsRune(buf.String(), BlockFull) {
		t.Fatalf("expected full blocks in output, got %q", buf.String())
	}
}

func TestRenderOnlyEmitsChanges(t *testing.T) {
	c := NewScaledCanvas(35, 39, 350, 390)
	c.ForceRedraw()
	c.FillRect(physics.Rect{X: 100, Y: 100, W: 20, H: 20})

	var first bytes.Buffer
	c.Render(&first)

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged frame emitted %d bytes", second.Len())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if strings.ContainsRune(third.String(), BlockFull) {
		t.Error("cleared frame still contains blocks")
	}
	if third.Len() == 0 {
		t.Error("cleared frame did not erase previous blocks")
	}
}

func TestForceRedrawRepaints(t *testing.T) {
	c := NewScaledCanvas(35, 39, 350, 390)
	c.ForceRedraw()
	c.FillRect(physics.Rect{X: 10, Y: 10, W: 10, H: 10})
	c.Render(&bytes.Buffer{})

	c.ForceRedraw()
	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.ContainsRune(buf.String(), BlockFull) {
		t.Error("ForceRedraw did not repaint set cells")
	}
}

func TestInvalidateRepaintsCell(t *testing.T) {
	c := NewScaledCanvas(10, 10, 10, 20)
	c.ForceRedraw()
	c.Render(&bytes.Buffer{})

	c.Invalidate(3, 4)
	var buf bytes.Buffer
	c.Render(&buf)
	if got := buf.String(); got != "\033[4;3H " {
		t.Errorf("Render after Invalidate = %q", got)
	}

	// Out-of-range positions are ignored.
	c.Invalidate(0, 0)
	c.Invalidate(100, 100)
}

func TestSmallRectCoversAPixel(t *testing.T) {
	c := NewScaledCanvas(10, 10, 1000, 1000)
	c.FillRect(physics.Rect{X: 500, Y: 500, W: 1, H: 1})
	set := 0
	for _, p := range c.pixels {
		if p {
			set++
		}
	}
	if set != 1 {
		t.Errorf("tiny rect set %d pixels, want 1", set)
	}
}

func TestOffsetAppliedToRender(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(5, 3)
	c.ForceRedraw()
	c.FillRect(physics.Rect{X: 0, Y: 0, W: 1, H: 2})

	var buf bytes.Buffer
	c.Render(&buf)
	want := "\033[4;6H" + string(BlockFull)
	if buf.String() != want {
		t.Errorf("Render = %q, want %q", buf.String(), want)
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var none bytes.Buffer
	c.RenderBorder(&none)
	if none.Len() != 0 {
		t.Error("border drawn without spare space")
	}

	c.SetOffset(2, 2)
	var buf bytes.Buffer
	c.RenderBorder(&buf)
	out := buf.String()
	for _, s := range []string{"┌────┐", "└────┘", "│"} {
		if !strings.Contains(out, s) {
			t.Errorf("border output missing %q", s)
		}
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(35, 39, 350, 390)
	col, row := c.LogicalToTerminal(0, 0)
	if col != 1 || row != 1 {
		t.Errorf("origin = (%d,%d), want (1,1)", col, row)
	}
	col, row = c.LogicalToTerminal(175, 195)
	if col != 19 || row != 10 {
		t.Errorf("center = (%d,%d), want (19,10)", col, row)
	}
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(3, 4, "hi")
	cw.WriteAt(-1, 0, "x")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "\033[5;5Hhi\033[2;3Hx"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if cw.Len() != 0 {
		t.Error("buffer not reset after Flush")
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	big := strings.Repeat("a", maxChunkSize*3+7)
	cw.WriteString(big)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != big {
		t.Error("large flush corrupted data")
	}
}

func TestSetTitle(t *testing.T) {
	var buf bytes.Buffer
	SetTitle(&buf, "Snake")
	if buf.String() != "\033]0;Snake\007" {
		t.Errorf("SetTitle wrote %q", buf.String())
	}
}

func TestMarkTextDirty(t *testing.T) {
	c := NewScaledCanvas(10, 2, 10, 4)
	c.ForceRedraw()
	c.Render(&bytes.Buffer{})

	c.MarkTextDirty(2, 1, 3)
	var buf bytes.Buffer
	c.Render(&buf)
	if got := strings.Count(buf.String(), "H "); got != 3 {
		t.Errorf("repainted %d cells, want 3", got)
	}
}
