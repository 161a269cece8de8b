package app

import (
	"github.com/bethropolis/restyle/internal/event"
	"github.com/bethropolis/restyle/internal/input"
	"github.com/bethropolis/restyle/internal/logger"
)

// handleAction applies a decoded key to the editor and reports whether the
// screen needs a redraw.
func (a *App) handleAction(ae input.ActionEvent) bool {
	ed := a.editor
	var err error

	switch ae.Action {
	case input.ActionQuit:
		a.requestQuit()
		return false

	case input.ActionMoveUp:
		ed.MoveUp(false)
	case input.ActionMoveDown:
		ed.MoveDown(false)
	case input.ActionMoveLeft:
		ed.MoveLeft(false)
	case input.ActionMoveRight:
		ed.MoveRight(false)
	case input.ActionMoveHome:
		ed.MoveHome(false)
	case input.ActionMoveEnd:
		ed.MoveEnd(false)
	case input.ActionSelectUp:
		ed.MoveUp(true)
	case input.ActionSelectDown:
		ed.MoveDown(true)
	case input.ActionSelectLeft:
		ed.MoveLeft(true)
	case input.ActionSelectRight:
		ed.MoveRight(true)
	case input.ActionSelectHome:
		ed.MoveHome(true)
	case input.ActionSelectEnd:
		ed.MoveEnd(true)
	case input.ActionSelectAll:
		ed.SelectAll()

	case input.ActionInsertRune:
		err = ed.InsertRune(ae.Rune)
	case input.ActionInsertNewLine:
		err = ed.InsertNewline()
	case input.ActionInsertTab:
		err = ed.InsertRune('\t')
	case input.ActionDeleteCharBackward:
		err = ed.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = ed.DeleteForward()

	case input.ActionCopy:
		if ed.HasSelection() {
			if err = ed.Copy(); err == nil {
				a.statusBar.SetTemporaryMessage("Copied %d characters", ed.Selection().Length)
			}
		}
	case input.ActionCut:
		err = ed.Cut()
	case input.ActionPaste:
		err = ed.Paste()

	case input.ActionCycleTheme:
		th := a.themeManager.Next()
		a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: th.Name})

	default:
		return false
	}

	if err != nil {
		logger.Warnf("App: %s: %v", ae.Action, err)
		a.statusBar.SetTemporaryMessage("Error: %v", err)
	}
	return true
}
