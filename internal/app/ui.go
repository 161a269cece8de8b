package app

import (
	"strings"

	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	width, height := a.tuiManager.Size()
	viewHeight := height - a.cfg.Editor.StatusBarHeight
	a.scrollToCaret(viewHeight)
	logger.DebugTagf("draw", "draw: screen %dx%d, view height %d, top %d", width, height, viewHeight, a.viewport.Top)

	opts := a.drawOptions()
	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, a.viewport, viewHeight, opts)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	tui.DrawCursor(a.tuiManager, a.editor, a.viewport, viewHeight, opts)
	a.tuiManager.Show()
}

func (a *App) drawOptions() tui.DrawOptions {
	return tui.DrawOptions{
		Theme:           a.themeManager.Current(),
		Glyphs:          a.pipeline.Glyphs(),
		TabWidth:        a.cfg.Editor.TabWidth,
		ShowLineNumbers: a.cfg.Editor.LineNumbers,
	}
}

// scrollToCaret keeps scroll_off lines of context around the caret line.
func (a *App) scrollToCaret(height int) {
	if height <= 0 {
		return
	}
	line, _ := a.editor.LineCol()
	lastLine := strings.Count(a.editor.Text().String(), "\n")
	margin := min(a.cfg.Editor.ScrollOff, (height-1)/2)
	a.viewport.Follow(max(0, line-margin), height)
	a.viewport.Follow(min(lastLine, line+margin), height)
	a.viewport.Top = max(0, a.viewport.Top)
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	line, col := a.editor.LineCol()
	a.statusBar.SetFileInfo(a.filePath, a.editor.Modified())
	a.statusBar.SetCursorInfo(line, col, a.editor.Selection())
	a.statusBar.SetTransformInfo(a.editor.TransformerName(), a.editor.LastTransformChanged())
}
