package app

import (
	"github.com/bethropolis/restyle/internal/event"
	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/statusbar"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeBufferTransformed, a.handleBufferTransformed)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	line, col := a.editor.LineCol()
	a.statusBar.SetCursorInfo(line, col, a.editor.Selection())
	return false
}

func (a *App) handleBufferModified(e event.Event) bool {
	a.statusBar.SetFileInfo(a.filePath, true)
	return false
}

func (a *App) handleBufferTransformed(e event.Event) bool {
	if data, ok := e.Data.(event.BufferTransformedData); ok {
		logger.DebugTagf("app", "%s rewrote the buffer: %d -> %d runes", data.Transformer, data.OldLength, data.NewLength)
		a.statusBar.SetTransformInfo(data.Transformer, true)
	}
	return false
}

// handleThemeChanged applies the manager's current theme to the screen and
// status bar.
func (a *App) handleThemeChanged(e event.Event) bool {
	th := a.themeManager.Current()
	a.tuiManager.SetTheme(th)
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(th))
	a.statusBar.SetTemporaryMessage("Theme: %s", th.Name)
	return false
}
