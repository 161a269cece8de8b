package transform

import "github.com/bethropolis/restyle/internal/types"

// Bias resolves the one ambiguous remapping case: an endpoint that lands
// exactly where new content is inserted.
type Bias int

const (
	// BiasBefore keeps the endpoint before inserted content.
	BiasBefore Bias = iota
	// BiasAfter moves the endpoint past inserted content.
	BiasAfter
)

func (b Bias) String() string {
	if b == BiasAfter {
		return "after"
	}
	return "before"
}

// MapPosition maps position p of the original text through edits, which must
// be sorted and disjoint.
//
//   - Positions before an edit, or in unedited text, shift by the net length
//     change of the edits before them.
//   - The start of a deleted span stays before the span and before anything
//     inserted in its place.
//   - Positions strictly inside a deleted span collapse to its start. If the
//     span is replaced, bias picks before or after the replacement.
//   - A position exactly at a pure insertion is placed by bias.
//   - Restyles never move positions.
func MapPosition(edits []Edit, p int, bias Bias) int {
	delta := 0
	for _, e := range edits {
		if e.Kind == KindRestyle {
			continue
		}
		ins := len(e.Insert)
		switch {
		case p < e.Start:
			return p + delta
		case p == e.Start && e.Start < e.End:
			return p + delta
		case p == e.Start:
			if bias == BiasAfter {
				return p + delta + ins
			}
			return p + delta
		case p < e.End:
			start := e.Start + delta
			if bias == BiasAfter {
				return start + ins
			}
			return start
		}
		delta += e.delta()
	}
	return p + delta
}

// Remap maps both endpoints of r independently. A selection whose end would
// precede its start degenerates to a caret at the mapped start.
func Remap(edits []Edit, r types.Range, bias Bias) types.Range {
	start := MapPosition(edits, r.Start, bias)
	end := MapPosition(edits, r.End(), bias)
	length := end - start
	if length < 0 {
		length = 0
	}
	return types.Range{Start: start, Length: length}
}
