// Package token replaces shorthand codes such as :smile: with a single
// inline attachment character.
package token

import (
	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/types"
)

// Transformer replaces every token of its table with U+FFFC carrying
// attachment=<ref> on top of the attributes found at the token's start.
//
// Remapping uses BiasAfter: a caret inside a token lands after the new
// character, the token's start stays before it and its end lands after it.
// A selection covering exactly one token therefore covers its replacement.
type Transformer struct {
	table *Table
}

// New returns a transformer over table, or over DefaultTable when nil.
func New(table *Table) *Transformer {
	if table == nil {
		table = DefaultTable()
	}
	return &Transformer{table: table}
}

func (t *Transformer) Name() string { return "tokens" }

// Table returns the vocabulary in use.
func (t *Transformer) Table() *Table { return t.table }

func (t *Transformer) Transform(text *styled.Text, sel *types.Selection) bool {
	transform.MustValidate(text, sel)

	runes := text.Runes()
	script := transform.NewScript(transform.BiasAfter)
	replacement := string(styled.ObjectReplacement)

	for i := 0; i < len(runes); {
		n, ref := t.table.Match(runes, i)
		if n == 0 {
			i++
			continue
		}
		attrs := text.AttrsAt(i).With(styled.Attrs{styled.AttrAttachment: ref})
		script.Add(transform.Replace(i, i+n, replacement, attrs))
		i += n
	}

	if script.Len() == 0 {
		return false
	}
	changed := script.Commit(text, sel)
	logger.DebugTagf("transform", "tokens: replaced %d token(s), changed=%v", script.Len(), changed)
	return changed
}
