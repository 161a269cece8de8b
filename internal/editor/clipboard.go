// internal/editor/clipboard.go
package editor

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/restyle/internal/logger"
)

// Clipboard stores copied text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// NewClipboard returns the system clipboard when requested and available,
// and an in-process clipboard otherwise.
func NewClipboard(system bool) Clipboard {
	if system && !clipboard.Unsupported {
		return systemClipboard{}
	}
	if system {
		logger.Warnf("Editor: system clipboard unsupported, using internal clipboard")
	}
	return &MemoryClipboard{}
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// MemoryClipboard keeps the copied text in the process.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}
