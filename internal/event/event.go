// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/restyle/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified    // a host edit changed the buffer, before transforming
	TypeBufferTransformed // the transformer rewrote the buffer
	TypeSelectionChanged  // the caret or selection moved
	TypeKeyPressed
	TypeThemeChanged
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferTransformed:
		return "BufferTransformed"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeThemeChanged:
		return "ThemeChanged"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is passed to subscribers.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes a host edit: Removed runes at Start were
// replaced by Inserted runes.
type BufferModifiedData struct {
	Start    int
	Removed  int
	Inserted int
}

// BufferTransformedData reports a transformer rewrite.
type BufferTransformedData struct {
	Transformer string
	OldLength   int
	NewLength   int
	Selection   types.Selection
}

// SelectionChangedData carries the new selection.
type SelectionChangedData struct {
	Selection types.Selection
}

// KeyPressedData carries the raw key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the new theme.
type ThemeChangedData struct {
	Name string
}
