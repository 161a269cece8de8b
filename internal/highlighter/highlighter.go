// Package highlighter runs tree-sitter highlight queries and reports the
// captures as rune ranges.
package highlighter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/restyle/internal/highlighter/lang"
	"github.com/bethropolis/restyle/internal/highlighter/utils"
	"github.com/bethropolis/restyle/internal/logger"
)

// Capture is one highlighted rune range [Start, End) with its style name,
// e.g. "keyword" or "string.escape".
type Capture struct {
	Start int
	End   int
	Style string
}

// Highlighter parses source and extracts captures. Compiled queries are
// cached per language; a Highlighter is safe for concurrent use.
type Highlighter struct {
	mu      sync.Mutex
	queries map[*lang.Language]*sitter.Query
}

// NewHighlighter creates a highlighter and makes sure the built-in languages
// are registered.
func NewHighlighter() *Highlighter {
	RegisterLanguages()
	return &Highlighter{queries: make(map[*lang.Language]*sitter.Query)}
}

func (h *Highlighter) query(l *lang.Language) (*sitter.Query, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if q, ok := h.queries[l]; ok {
		return q, nil
	}
	src, err := l.Query()
	if err != nil {
		return nil, err
	}
	q, err := sitter.NewQuery(src, l.TreeSitterLang)
	if err != nil {
		return nil, fmt.Errorf("query parse failed for %s: %w", l.Name, err)
	}
	h.queries[l] = q
	return q, nil
}

// Highlight parses source as l and returns its captures sorted by start,
// wider captures before the narrower ones they contain. Applying them in
// order lets the innermost capture win. Empty captures are dropped.
func (h *Highlighter) Highlight(ctx context.Context, source []byte, l *lang.Language) ([]Capture, error) {
	if l == nil || l.TreeSitterLang == nil {
		return nil, errors.New("no language provided for highlighting")
	}
	q, err := h.query(l)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(l.TreeSitterLang)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, tree.RootNode())

	offsets := utils.RuneOffsets(source)
	var captures []Capture
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range match.Captures {
			start, end := int(c.Node.StartByte()), int(c.Node.EndByte())
			if end > len(source) {
				end = len(source)
			}
			if start >= end {
				continue
			}
			captures = append(captures, Capture{
				Start: offsets[start],
				End:   offsets[end],
				Style: utils.CaptureNameToStyleName(q.CaptureNameForId(c.Index)),
			})
		}
	}

	sort.SliceStable(captures, func(i, j int) bool {
		if captures[i].Start != captures[j].Start {
			return captures[i].Start < captures[j].Start
		}
		return captures[i].End > captures[j].End
	})
	logger.DebugTagf("highlight", "%s: %d capture(s) over %d bytes", l.Name, len(captures), len(source))
	return captures, nil
}

// Styles flattens captures into one style name per rune of an n-rune text.
// Positions without a capture get "".
func Styles(captures []Capture, n int) []string {
	styles := make([]string, n)
	for _, c := range captures {
		for i := max(c.Start, 0); i < c.End && i < n; i++ {
			styles[i] = c.Style
		}
	}
	return styles
}
