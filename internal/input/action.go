// internal/input/action.go
package input

// Action is an editor operation decoded from a key event.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit

	// Caret movement. The Select variants extend the selection.
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionSelectUp
	ActionSelectDown
	ActionSelectLeft
	ActionSelectRight
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll

	// Text manipulation.
	ActionInsertRune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward
	ActionDeleteCharBackward
	ActionCopy
	ActionCut
	ActionPaste

	ActionCycleTheme
)

var actionNames = map[Action]string{
	ActionQuit:               "quit",
	ActionMoveUp:             "move_up",
	ActionMoveDown:           "move_down",
	ActionMoveLeft:           "move_left",
	ActionMoveRight:          "move_right",
	ActionMoveHome:           "move_home",
	ActionMoveEnd:            "move_end",
	ActionSelectUp:           "select_up",
	ActionSelectDown:         "select_down",
	ActionSelectLeft:         "select_left",
	ActionSelectRight:        "select_right",
	ActionSelectHome:         "select_home",
	ActionSelectEnd:          "select_end",
	ActionSelectAll:          "select_all",
	ActionInsertRune:         "insert_rune",
	ActionInsertNewLine:      "insert_newline",
	ActionInsertTab:          "insert_tab",
	ActionDeleteCharForward:  "delete_forward",
	ActionDeleteCharBackward: "delete_backward",
	ActionCopy:               "copy",
	ActionCut:                "cut",
	ActionPaste:              "paste",
	ActionCycleTheme:         "cycle_theme",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent is a decoded key event. Rune is set for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
