// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/restyle/internal/editor"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/theme"
)

// AttachmentPlaceholder is drawn for attachments without a glyph.
const AttachmentPlaceholder = "□"

// GlyphFunc returns the display glyph for an attachment reference.
type GlyphFunc func(ref string) (string, bool)

// DrawOptions control how the buffer is laid out.
type DrawOptions struct {
	Theme           *theme.Theme
	Glyphs          GlyphFunc
	TabWidth        int
	ShowLineNumbers bool
}

// Viewport is the first buffer line shown on screen.
type Viewport struct {
	Top int
}

// Follow scrolls so that line is inside a window of height lines.
func (v *Viewport) Follow(line, height int) {
	if height <= 0 {
		return
	}
	if line < v.Top {
		v.Top = line
	}
	if line >= v.Top+height {
		v.Top = line - height + 1
	}
}

// cell is one grapheme cluster laid out on a line.
type cell struct {
	pos   int // buffer position of the cluster's first rune
	runes []rune
	width int
	style tcell.Style
}

// line is the buffer range [start, end) of one line, excluding the break.
type line struct {
	start, end int
}

func splitLines(text *styled.Text) []line {
	var lines []line
	start := 0
	for i := 0; i < text.Len(); i++ {
		if text.RuneAt(i) == '\n' {
			lines = append(lines, line{start, i})
			start = i + 1
		}
	}
	return append(lines, line{start, text.Len()})
}

// layoutLine splits a line into display cells. Tabs expand to the next tab
// stop and attachments draw their glyph.
func layoutLine(text *styled.Text, l line, opts DrawOptions) []cell {
	var cells []cell
	gr := uniseg.NewGraphemes(text.Slice(l.start, l.end))
	pos, col := l.start, 0
	for gr.Next() {
		runes := gr.Runes()
		attrs := text.AttrsAt(pos)
		c := cell{pos: pos, runes: runes, width: gr.Width(), style: opts.Theme.StyleFor(attrs)}

		switch {
		case runes[0] == '\t':
			tab := max(opts.TabWidth, 1)
			c.runes = []rune{' '}
			c.width = tab - col%tab
		case runes[0] == styled.ObjectReplacement && attrs.Has(styled.AttrAttachment):
			glyph := AttachmentPlaceholder
			if opts.Glyphs != nil {
				if g, ok := opts.Glyphs(attrs[styled.AttrAttachment]); ok {
					glyph = g
				}
			}
			c.runes = []rune(glyph)
			c.width = max(uniseg.StringWidth(glyph), 1)
		}

		cells = append(cells, c)
		pos += len(runes)
		col += c.width
	}
	return cells
}

func gutterWidth(lineCount, width int, show bool) int {
	if !show {
		return 0
	}
	digits := int(math.Log10(float64(max(lineCount, 1)))) + 1
	if digits+1 >= width {
		return 0
	}
	return digits + 1
}

// DrawBuffer draws the lines of ed visible in the top height rows.
func DrawBuffer(t *TUI, ed *editor.Editor, vp Viewport, height int, opts DrawOptions) {
	width, _ := t.Size()
	if height <= 0 || width <= 0 {
		return
	}
	defaultStyle := opts.Theme.GetStyle(theme.StyleDefault)
	lineNumberStyle := opts.Theme.GetStyle("LineNumber")
	selectionStyle := opts.Theme.GetStyle(theme.StyleSelection)

	text := ed.Text()
	sel := ed.Selection()
	lines := splitLines(text)
	gutter := gutterWidth(len(lines), width, opts.ShowLineNumbers)
	caretLine, _ := ed.LineCol()

	for screenY := 0; screenY < height; screenY++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}
		idx := vp.Top + screenY
		if idx < 0 || idx >= len(lines) {
			continue
		}

		if gutter > 0 {
			style := lineNumberStyle
			if idx == caretLine {
				style = style.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", gutter-1, idx+1) {
				t.screen.SetContent(i, screenY, r, nil, style)
			}
		}

		x := gutter
		for _, c := range layoutLine(text, lines[idx], opts) {
			if x+c.width > width {
				break
			}
			style := c.style
			if c.pos >= sel.Start && c.pos < sel.End() {
				style = selectionStyle
			}
			t.screen.SetContent(x, screenY, c.runes[0], c.runes[1:], style)
			// Expanded tabs cover several cells; wide glyphs are handled by tcell.
			if c.runes[0] == ' ' {
				for fill := 1; fill < c.width; fill++ {
					t.screen.SetContent(x+fill, screenY, ' ', nil, style)
				}
			}
			x += c.width
		}
	}
}

// DrawCursor shows the terminal cursor at the caret, or hides it when the
// caret is off screen.
func DrawCursor(t *TUI, ed *editor.Editor, vp Viewport, height int, opts DrawOptions) {
	width, _ := t.Size()
	text := ed.Text()
	lines := splitLines(text)
	gutter := gutterWidth(len(lines), width, opts.ShowLineNumbers)
	caretLine, _ := ed.LineCol()

	x := gutter
	for _, c := range layoutLine(text, lines[caretLine], opts) {
		if c.pos >= ed.Caret() {
			break
		}
		x += c.width
	}
	y := caretLine - vp.Top
	if x >= width || y < 0 || y >= height {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, y)
}
