// internal/types/selection.go
package types

// Selection is an optional Range. The zero value holds no range, which is
// what hosts without a caret (read-only labels, batch output) pass.
type Selection struct {
	r  Range
	ok bool
}

// Some returns a selection holding r.
func Some(r Range) Selection {
	return Selection{r: r, ok: true}
}

// None returns an absent selection.
func None() Selection {
	return Selection{}
}

// Get returns the range and whether one is present.
func (s Selection) Get() (Range, bool) {
	return s.r, s.ok
}

// Present reports whether the selection holds a range.
func (s Selection) Present() bool {
	return s.ok
}

// Set stores r, making the selection present.
func (s *Selection) Set(r Range) {
	s.r = r
	s.ok = true
}

// Clear makes the selection absent.
func (s *Selection) Clear() {
	*s = Selection{}
}

func (s Selection) String() string {
	if !s.ok {
		return "none"
	}
	return s.r.String()
}
