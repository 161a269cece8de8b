// internal/editor/cursor.go
package editor

// Movement methods move the caret. With extend the anchor stays put and the
// selection grows or shrinks; without it any selection collapses.

func (e *Editor) moveTo(pos int, extend bool) {
	if extend {
		e.setSelection(e.anchor, pos)
		return
	}
	e.setSelection(pos, pos)
}

// MoveLeft moves one character left. Without extend, a selection collapses
// to its start.
func (e *Editor) MoveLeft(extend bool) {
	e.preferredCol = -1
	if !extend && e.HasSelection() {
		e.moveTo(e.Selection().Start, false)
		return
	}
	e.moveTo(e.caret-1, extend)
}

// MoveRight moves one character right. Without extend, a selection
// collapses to its end.
func (e *Editor) MoveRight(extend bool) {
	e.preferredCol = -1
	if !extend && e.HasSelection() {
		e.moveTo(e.Selection().End(), false)
		return
	}
	e.moveTo(e.caret+1, extend)
}

// MoveHome moves to the start of the caret's line.
func (e *Editor) MoveHome(extend bool) {
	e.preferredCol = -1
	e.moveTo(e.lineStart(e.caret), extend)
}

// MoveEnd moves to the end of the caret's line.
func (e *Editor) MoveEnd(extend bool) {
	e.preferredCol = -1
	e.moveTo(e.lineEnd(e.caret), extend)
}

// MoveUp moves to the previous line, keeping the column where possible.
func (e *Editor) MoveUp(extend bool) {
	start := e.lineStart(e.caret)
	if start == 0 {
		e.moveTo(0, extend)
		return
	}
	e.moveVertical(e.lineStart(start-1), extend)
}

// MoveDown moves to the next line, keeping the column where possible.
func (e *Editor) MoveDown(extend bool) {
	end := e.lineEnd(e.caret)
	if end == e.text.Len() {
		e.moveTo(end, extend)
		return
	}
	e.moveVertical(end+1, extend)
}

func (e *Editor) moveVertical(targetLineStart int, extend bool) {
	if e.preferredCol < 0 {
		e.preferredCol = e.caret - e.lineStart(e.caret)
	}
	col := e.preferredCol
	pos := min(targetLineStart+col, e.lineEnd(targetLineStart))
	e.moveTo(pos, extend)
	e.preferredCol = col
}

// lineStart returns the position after the line break preceding pos.
func (e *Editor) lineStart(pos int) int {
	for pos > 0 && e.text.RuneAt(pos-1) != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the position of the line break at or after pos, or the
// buffer length.
func (e *Editor) lineEnd(pos int) int {
	n := e.text.Len()
	for pos < n && e.text.RuneAt(pos) != '\n' {
		pos++
	}
	return pos
}

// LineCol returns the zero-based line and column of the caret.
func (e *Editor) LineCol() (line, col int) {
	for i := 0; i < e.caret; i++ {
		if e.text.RuneAt(i) == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}
