// internal/types/range.go
package types

import "fmt"

// Range is a span of character (rune) positions in a styled text.
// Start is the 0-based index of the first character, Length the number of
// characters covered. A Length of 0 is a caret.
type Range struct {
	Start  int
	Length int
}

// Caret returns a zero-length range at pos.
func Caret(pos int) Range {
	return Range{Start: pos}
}

// Span returns the range covering [start, end).
func Span(start, end int) Range {
	return Range{Start: start, Length: end - start}
}

// End returns the exclusive end position.
func (r Range) End() int {
	return r.Start + r.Length
}

// IsCaret reports whether the range has no extent.
func (r Range) IsCaret() bool {
	return r.Length == 0
}

// Valid reports whether the range fits in a text of length n.
func (r Range) Valid(n int) bool {
	return r.Start >= 0 && r.Length >= 0 && r.End() <= n
}

func (r Range) String() string {
	return fmt.Sprintf("(%d,%d)", r.Start, r.Length)
}
