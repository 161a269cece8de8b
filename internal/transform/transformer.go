// Package transform defines the contract between a text-editing host and the
// components that rewrite its styled buffer after each edit.
//
// A Transformer receives the host's buffer and, for hosts that track one,
// its caret or selection. It decides whether to rewrite the buffer, does so
// atomically, and leaves the selection pointing at the same logical content
// in the rewritten buffer. Variants describe their rewrite as a Script of
// disjoint edits over the original buffer; Script.Commit applies it and
// remaps the selection.
package transform

import (
	"fmt"
	"strings"

	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/types"
)

// Transformer inspects and optionally rewrites text.
//
// text must not be nil; an empty buffer is a zero-length Text. sel must not
// be nil either: hosts without a caret pass a pointer to types.None().
// Transform returns true if and only if text was modified. When it returns
// false, text and sel are unchanged. When it returns true and sel holds a
// range, that range has been remapped onto the new content.
//
// Calls are synchronous and must not overlap on the same buffer.
// Implementations must not retain text or sel after returning.
type Transformer interface {
	Transform(text *styled.Text, sel *types.Selection) bool
}

// Func adapts a function to the Transformer interface.
type Func func(text *styled.Text, sel *types.Selection) bool

// Transform calls f.
func (f Func) Transform(text *styled.Text, sel *types.Selection) bool {
	return f(text, sel)
}

// Chain runs transformers in order on the same buffer and selection. Each
// stage sees the output of the previous one.
type Chain []Transformer

// Transform reports whether any stage changed the text.
func (c Chain) Transform(text *styled.Text, sel *types.Selection) bool {
	MustValidate(text, sel)
	changed := false
	for _, t := range c {
		if t.Transform(text, sel) {
			logger.DebugTagf("transform", "Chain: %s changed the text (len %d, selection %v)", Name(t), text.Len(), *sel)
			changed = true
		}
	}
	return changed
}

// Name joins the stage names with "+".
func (c Chain) Name() string {
	if len(c) == 0 {
		return "chain"
	}
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = Name(t)
	}
	return strings.Join(names, "+")
}

// Named is implemented by transformers that report a display name.
type Named interface {
	Name() string
}

// Name returns the display name of t, falling back to its type.
func Name(t Transformer) string {
	if n, ok := t.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", t)
}
