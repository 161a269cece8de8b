// Package syntax keeps the syntax attribute of a buffer in step with a
// tree-sitter parse of its text.
package syntax

import (
	"context"

	"github.com/bethropolis/restyle/internal/highlighter"
	"github.com/bethropolis/restyle/internal/highlighter/lang"
	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/types"
)

// Transformer restyles the whole buffer on every call. It only emits
// restyle edits, so the text length and any selection never change.
type Transformer struct {
	hl       *highlighter.Highlighter
	language *lang.Language
}

// New returns a transformer highlighting as language.
func New(hl *highlighter.Highlighter, language *lang.Language) *Transformer {
	if hl == nil {
		hl = highlighter.NewHighlighter()
	}
	return &Transformer{hl: hl, language: language}
}

func (t *Transformer) Name() string { return "syntax:" + t.language.Name }

func (t *Transformer) Transform(text *styled.Text, sel *types.Selection) bool {
	transform.MustValidate(text, sel)
	if text.Len() == 0 {
		return false
	}

	captures, err := t.hl.Highlight(context.Background(), []byte(text.String()), t.language)
	if err != nil {
		logger.WarnTagf("transform", "syntax: %s: %v", t.language.Name, err)
		return false
	}
	styles := highlighter.Styles(captures, text.Len())

	script := transform.NewScript(transform.BiasBefore)
	for start := 0; start < len(styles); {
		end := start + 1
		for end < len(styles) && styles[end] == styles[start] {
			end++
		}
		if styles[start] == "" {
			script.Add(transform.Restyle(start, end, nil, styled.AttrSyntax))
		} else {
			script.Add(transform.Restyle(start, end, styled.Attrs{styled.AttrSyntax: styles[start]}))
		}
		start = end
	}
	return script.Commit(text, sel)
}
