// internal/transform/script.go
package transform

import (
	"fmt"
	"sort"

	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/types"
)

// Kind identifies what an Edit does to its span.
type Kind int

const (
	// KindReplace deletes [Start, End) and inserts Insert at Start. A pure
	// deletion has no Insert; a pure insertion has Start == End.
	KindReplace Kind = iota
	// KindRestyle changes attributes in [Start, End). It never changes length.
	KindRestyle
)

func (k Kind) String() string {
	switch k {
	case KindReplace:
		return "replace"
	case KindRestyle:
		return "restyle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Edit is one operation over the original buffer. Start and End are
// positions in the text as it was before any edit of the script applied.
type Edit struct {
	Kind  Kind
	Start int
	End   int

	// KindReplace: the inserted characters and their attributes.
	Insert      []rune
	InsertAttrs styled.Attrs

	// KindRestyle: attributes to set, and keys to remove.
	Set   styled.Attrs
	Clear []string
}

// Delete removes [start, end).
func Delete(start, end int) Edit {
	return Edit{Kind: KindReplace, Start: start, End: end}
}

// Insert adds s at pos carrying attrs.
func Insert(pos int, s string, attrs styled.Attrs) Edit {
	return Edit{Kind: KindReplace, Start: pos, End: pos, Insert: []rune(s), InsertAttrs: attrs}
}

// Replace removes [start, end) and inserts s carrying attrs in its place.
func Replace(start, end int, s string, attrs styled.Attrs) Edit {
	return Edit{Kind: KindReplace, Start: start, End: end, Insert: []rune(s), InsertAttrs: attrs}
}

// Restyle sets attributes and removes the clear keys over [start, end).
func Restyle(start, end int, set styled.Attrs, clear ...string) Edit {
	return Edit{Kind: KindRestyle, Start: start, End: end, Set: set, Clear: clear}
}

// delta is the length change the edit causes.
func (e Edit) delta() int {
	if e.Kind == KindRestyle {
		return 0
	}
	return len(e.Insert) - (e.End - e.Start)
}

func (e Edit) String() string {
	switch e.Kind {
	case KindRestyle:
		return fmt.Sprintf("restyle[%d,%d)%v-%v", e.Start, e.End, e.Set, e.Clear)
	default:
		return fmt.Sprintf("replace[%d,%d)->%q", e.Start, e.End, string(e.Insert))
	}
}

// Script collects the edits of one transform and commits them atomically.
type Script struct {
	// Bias decides where a selection endpoint goes when it sits exactly at
	// an insertion point, or inside a deleted span that gets replaced.
	Bias  Bias
	edits []Edit
}

// NewScript returns an empty script with the given bias.
func NewScript(bias Bias) *Script {
	return &Script{Bias: bias}
}

// Add appends edits. They may be added in any order; Commit sorts them by
// start position, with a pure insertion ahead of a span starting at the
// same point.
func (s *Script) Add(edits ...Edit) {
	s.edits = append(s.edits, edits...)
}

// Len returns the number of edits.
func (s *Script) Len() int {
	return len(s.edits)
}

// Edits returns the edits sorted by start, then end position.
func (s *Script) Edits() []Edit {
	sorted := make([]Edit, len(s.edits))
	copy(sorted, s.edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	return sorted
}

// validate checks that edits are in range and disjoint. Two edits may touch
// at a boundary, but a position can receive at most one insertion.
func validate(edits []Edit, n int) error {
	insertedAt := -1
	prevEnd := 0
	for i, e := range edits {
		if e.Kind != KindReplace && e.Kind != KindRestyle {
			return fmt.Errorf("edit %d %v: unknown kind", i, e)
		}
		if e.Start < 0 || e.End < e.Start || e.End > n {
			return fmt.Errorf("edit %d %v out of range for text of length %d", i, e, n)
		}
		if i > 0 && e.Start < prevEnd {
			return fmt.Errorf("edit %d %v overlaps edit %d %v", i, e, i-1, edits[i-1])
		}
		if e.Kind == KindRestyle && len(e.Insert) > 0 {
			return fmt.Errorf("edit %d %v: restyle cannot insert", i, e)
		}
		if e.Kind == KindReplace && len(e.Insert) > 0 {
			if e.Start == insertedAt {
				return fmt.Errorf("edit %d %v: second insertion at %d", i, e, e.Start)
			}
			insertedAt = e.Start
		}
		prevEnd = e.End
	}
	return nil
}

// build produces the rewritten text without touching the original.
func build(text *styled.Text, edits []Edit) *styled.Text {
	var b styled.Builder
	pos := 0
	for _, e := range edits {
		b.Copy(text, pos, e.Start, nil)
		switch e.Kind {
		case KindReplace:
			b.Append(e.Insert, e.InsertAttrs)
		case KindRestyle:
			set, clear := e.Set, e.Clear
			b.Copy(text, e.Start, e.End, func(a styled.Attrs) styled.Attrs {
				return a.With(set, clear...)
			})
		}
		pos = e.End
	}
	b.Copy(text, pos, text.Len(), nil)
	return b.Text()
}

// Commit applies the script to text and remaps sel. The rewritten buffer is
// built separately and only swapped in when it differs from text, so the
// return value is true exactly when text was modified. A malformed script is
// a contract violation.
func (s *Script) Commit(text *styled.Text, sel *types.Selection) bool {
	MustValidate(text, sel)
	if len(s.edits) == 0 {
		return false
	}

	edits := s.Edits()
	if err := validate(edits, text.Len()); err != nil {
		violate("script", "%v", err)
	}

	next := build(text, edits)
	if next.Equal(text) {
		logger.DebugTagf("transform", "Commit: %d edit(s) produced identical text", len(edits))
		return false
	}

	if r, ok := sel.Get(); ok {
		mapped := Remap(edits, r, s.Bias)
		logger.DebugTagf("transform", "Commit: selection %v -> %v", r, mapped)
		sel.Set(mapped)
	}
	logger.DebugTagf("transform", "Commit: applied %d edit(s), length %d -> %d", len(edits), text.Len(), next.Len())
	text.Replace(next)
	return true
}
