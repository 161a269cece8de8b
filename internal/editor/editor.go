// Package editor is the editable host: it owns a styled buffer and its
// selection, applies user edits, and hands the buffer to a transformer
// after every edit that changes content.
package editor

import (
	"fmt"

	"github.com/bethropolis/restyle/internal/event"
	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/types"
)

// Options configure an Editor. Zero fields get defaults: no transformer,
// no event dispatch, an in-process clipboard.
type Options struct {
	Transformer transform.Transformer
	Events      *event.Manager
	Clipboard   Clipboard
}

// Editor holds a buffer with a caret and an optional selection anchor. The
// selection is always present; an empty one is the caret.
type Editor struct {
	text   *styled.Text
	caret  int
	anchor int // equals caret when nothing is selected

	// Column to return to when moving vertically through shorter lines.
	preferredCol int

	transformer   transform.Transformer
	eventManager  *event.Manager
	clipboard     Clipboard
	modified      bool
	lastTransform bool
}

// New returns an editor over text with the caret at 0. The transformer is
// run once so initial content is already styled.
func New(text *styled.Text, opts Options) *Editor {
	if text == nil {
		text = styled.New("")
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &MemoryClipboard{}
	}
	e := &Editor{
		text:         text,
		preferredCol: -1,
		transformer:  opts.Transformer,
		eventManager: opts.Events,
		clipboard:    opts.Clipboard,
	}
	e.runTransformer()
	e.modified = false
	return e
}

// Text returns the buffer. Callers must not modify it.
func (e *Editor) Text() *styled.Text { return e.text }

// Caret returns the caret position.
func (e *Editor) Caret() int { return e.caret }

// Selection returns the selected range, which is a caret when nothing is
// selected.
func (e *Editor) Selection() types.Range {
	return types.Span(min(e.caret, e.anchor), max(e.caret, e.anchor))
}

// HasSelection reports whether a non-empty range is selected.
func (e *Editor) HasSelection() bool { return e.caret != e.anchor }

// Modified reports whether the buffer changed since New.
func (e *Editor) Modified() bool { return e.modified }

// LastTransformChanged reports the result of the most recent transform call.
func (e *Editor) LastTransformChanged() bool { return e.lastTransform }

// TransformerName names the configured transformer, or "" when none is set.
func (e *Editor) TransformerName() string {
	if e.transformer == nil {
		return ""
	}
	return transform.Name(e.transformer)
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// setSelection moves caret and anchor, clamped to the buffer, and reports
// the change.
func (e *Editor) setSelection(anchor, caret int) {
	n := e.text.Len()
	anchor = max(0, min(anchor, n))
	caret = max(0, min(caret, n))
	if anchor == e.anchor && caret == e.caret {
		return
	}
	e.anchor, e.caret = anchor, caret
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Selection: types.Some(e.Selection())})
}

// runTransformer hands the buffer and selection to the transformer and
// adopts the remapped selection when it reports a change. The caret stays on
// the same side of the selection it was on.
func (e *Editor) runTransformer() {
	if e.transformer == nil {
		return
	}
	sel := types.Some(e.Selection())
	caretFirst := e.caret < e.anchor
	oldLen := e.text.Len()

	e.lastTransform = e.transformer.Transform(e.text, &sel)
	if !e.lastTransform {
		return
	}

	r, _ := sel.Get()
	if caretFirst {
		e.caret, e.anchor = r.Start, r.End()
	} else {
		e.anchor, e.caret = r.Start, r.End()
	}
	e.preferredCol = -1
	e.modified = true
	logger.DebugTagf("editor", "transformed: length %d -> %d, selection %v", oldLen, e.text.Len(), r)
	e.dispatch(event.TypeBufferTransformed, event.BufferTransformedData{
		Transformer: transform.Name(e.transformer),
		OldLength:   oldLen,
		NewLength:   e.text.Len(),
		Selection:   sel,
	})
}

// replaceSelection deletes the selection and inserts s in its place.
func (e *Editor) replaceSelection(s string) error {
	r := e.Selection()
	if err := e.text.Delete(r.Start, r.End()); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	if err := e.text.Insert(r.Start, s, nil); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	inserted := len([]rune(s))
	if r.Length == 0 && inserted == 0 {
		return nil
	}

	e.modified = true
	e.preferredCol = -1
	e.anchor, e.caret = r.Start+inserted, r.Start+inserted
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Start: r.Start, Removed: r.Length, Inserted: inserted})
	e.runTransformer()
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Selection: types.Some(e.Selection())})
	return nil
}

// InsertText replaces the selection with s.
func (e *Editor) InsertText(s string) error {
	return e.replaceSelection(s)
}

// InsertRune replaces the selection with r.
func (e *Editor) InsertRune(r rune) error {
	return e.replaceSelection(string(r))
}

// InsertNewline replaces the selection with a line break.
func (e *Editor) InsertNewline() error {
	return e.replaceSelection("\n")
}

// DeleteBackward deletes the selection, or the character before the caret.
func (e *Editor) DeleteBackward() error {
	if !e.HasSelection() {
		if e.caret == 0 {
			return nil
		}
		e.anchor = e.caret - 1
	}
	return e.replaceSelection("")
}

// DeleteForward deletes the selection, or the character after the caret.
func (e *Editor) DeleteForward() error {
	if !e.HasSelection() {
		if e.caret == e.text.Len() {
			return nil
		}
		e.anchor = e.caret + 1
	}
	return e.replaceSelection("")
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() {
	e.setSelection(0, e.text.Len())
}

// SetCaret moves the caret to pos, clamped, and clears the selection.
func (e *Editor) SetCaret(pos int) {
	e.preferredCol = -1
	e.setSelection(pos, pos)
}

// Copy writes the selected text to the clipboard.
func (e *Editor) Copy() error {
	if !e.HasSelection() {
		return nil
	}
	r := e.Selection()
	if err := e.clipboard.WriteAll(e.text.Slice(r.Start, r.End())); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	logger.Debugf("Editor: copied %d characters", r.Length)
	return nil
}

// Cut copies the selection and deletes it.
func (e *Editor) Cut() error {
	if !e.HasSelection() {
		return nil
	}
	if err := e.Copy(); err != nil {
		return err
	}
	return e.replaceSelection("")
}

// Paste replaces the selection with the clipboard content.
func (e *Editor) Paste() error {
	s, err := e.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("paste from clipboard: %w", err)
	}
	if s == "" {
		return nil
	}
	logger.Debugf("Editor: pasting %d bytes", len(s))
	return e.replaceSelection(s)
}
