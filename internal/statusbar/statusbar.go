// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/restyle/internal/theme"
	"github.com/bethropolis/restyle/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleChanged   tcell.Style // the transform indicator after a rewrite
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides defaults independent of any theme.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleChanged:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme) Config {
	cfg := DefaultConfig()
	cfg.StyleDefault = th.GetStyle(theme.StyleStatusBar)
	cfg.StyleChanged = th.GetStyle(theme.StyleStatusBarChanged)
	cfg.StyleMessage = th.GetStyle(theme.StyleStatusBarMessage)
	return cfg
}

// StatusBar is the status line at the bottom of the screen.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath    string
	isModified  bool
	line, col   int
	selection   types.Range
	transformer string
	transformed bool

	tempMessage     string
	tempMessageTime time.Time

	now func() time.Time
}

func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetConfig replaces the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the zero-based caret line and column and the
// selection.
func (sb *StatusBar) SetCursorInfo(line, col int, sel types.Range) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line, sb.col = line, col
	sb.selection = sel
}

// SetTransformInfo records the transformer name and whether its last call
// rewrote the buffer.
func (sb *StatusBar) SetTransformInfo(name string, changed bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.transformer = name
	sb.transformed = changed
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the status line. The caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	selection := ""
	if sb.selection.Length > 0 {
		selection = fmt.Sprintf(" (%d selected)", sb.selection.Length)
	}
	text := fmt.Sprintf("%s%s -- Line: %d, Col: %d%s", fPath, modifiedIndicator, sb.line+1, sb.col+1, selection)
	if sb.transformer != "" {
		text += " -- " + sb.transformer
		if sb.transformed {
			text += "*"
		}
	}
	return text
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	switch {
	case isTempMsgActive:
		text, style = sb.tempMessage, sb.config.StyleMessage
	case sb.transformed:
		text, style = sb.getDefaultDisplayText(), sb.config.StyleChanged
	default:
		text, style = sb.getDefaultDisplayText(), sb.config.StyleDefault
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(currentX, y, runes[0], runes[1:], style)
		currentX += clusterWidth
	}
}
