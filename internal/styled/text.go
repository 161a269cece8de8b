// internal/styled/text.go
package styled

import (
	"fmt"
	"strings"
)

type run struct {
	n     int
	attrs Attrs
}

// Text is a mutable sequence of characters where every position carries an
// attribute set. Attributes are stored as runs: they never overlap, cover
// the whole text, and adjacent runs never share identical attributes.
type Text struct {
	runes []rune
	runs  []run
}

// Run is a read-only view of one attribute run.
type Run struct {
	Start int
	Len   int
	Attrs Attrs
}

// End returns the exclusive end of the run.
func (r Run) End() int { return r.Start + r.Len }

// Segment is a piece of input for FromSegments.
type Segment struct {
	Text  string
	Attrs Attrs
}

// New creates a text with no attributes.
func New(s string) *Text {
	var b Builder
	b.AppendString(s, nil)
	return b.Text()
}

// FromSegments creates a text from consecutive styled segments.
func FromSegments(segs ...Segment) *Text {
	var b Builder
	for _, seg := range segs {
		b.AppendString(seg.Text, seg.Attrs)
	}
	return b.Text()
}

// Len returns the number of characters.
func (t *Text) Len() int {
	return len(t.runes)
}

// String returns the plain character content.
func (t *Text) String() string {
	return string(t.runes)
}

// Slice returns the characters in [start, end) as a string.
func (t *Text) Slice(start, end int) string {
	return string(t.runes[start:end])
}

// RuneAt returns the character at i.
func (t *Text) RuneAt(i int) rune {
	return t.runes[i]
}

// Runes returns a copy of the character content.
func (t *Text) Runes() []rune {
	out := make([]rune, len(t.runes))
	copy(out, t.runes)
	return out
}

// AttrsAt returns a copy of the attributes at position i.
func (t *Text) AttrsAt(i int) Attrs {
	return t.attrsAt(i).Clone()
}

// Attr returns the value of key at position i.
func (t *Text) Attr(i int, key string) (string, bool) {
	v, ok := t.attrsAt(i)[key]
	return v, ok
}

func (t *Text) attrsAt(i int) Attrs {
	if i < 0 || i >= len(t.runes) {
		panic(fmt.Sprintf("styled: position %d out of range [0,%d)", i, len(t.runes)))
	}
	pos := 0
	for _, r := range t.runs {
		if i < pos+r.n {
			return r.attrs
		}
		pos += r.n
	}
	return nil
}

// Runs returns the attribute runs in order.
func (t *Text) Runs() []Run {
	out := make([]Run, 0, len(t.runs))
	pos := 0
	for _, r := range t.runs {
		out = append(out, Run{Start: pos, Len: r.n, Attrs: r.attrs.Clone()})
		pos += r.n
	}
	return out
}

// Clone returns a deep copy.
func (t *Text) Clone() *Text {
	c := &Text{
		runes: make([]rune, len(t.runes)),
		runs:  make([]run, len(t.runs)),
	}
	copy(c.runes, t.runes)
	for i, r := range t.runs {
		c.runs[i] = run{n: r.n, attrs: r.attrs.Clone()}
	}
	return c
}

// Equal reports whether both texts hold the same characters and attributes.
func (t *Text) Equal(o *Text) bool {
	if len(t.runes) != len(o.runes) || len(t.runs) != len(o.runs) {
		return false
	}
	for i := range t.runes {
		if t.runes[i] != o.runes[i] {
			return false
		}
	}
	for i := range t.runs {
		if t.runs[i].n != o.runs[i].n || !t.runs[i].attrs.Equal(o.runs[i].attrs) {
			return false
		}
	}
	return true
}

// Replace swaps the content of t for that of o. o must not be used afterwards.
func (t *Text) Replace(o *Text) {
	t.runes = o.runes
	t.runs = o.runs
}

// Validate checks the run invariants.
func (t *Text) Validate() error {
	total := 0
	for i, r := range t.runs {
		if r.n <= 0 {
			return fmt.Errorf("run %d has length %d", i, r.n)
		}
		if i > 0 && t.runs[i-1].attrs.Equal(r.attrs) {
			return fmt.Errorf("runs %d and %d share attributes %v", i-1, i, r.attrs)
		}
		total += r.n
	}
	if total != len(t.runes) {
		return fmt.Errorf("runs cover %d characters, text has %d", total, len(t.runes))
	}
	return nil
}

// Dump renders the runs as "start+len{attrs}" entries, one per run.
func (t *Text) Dump() string {
	var sb strings.Builder
	for i, r := range t.Runs() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d+%d%s", r.Start, r.Len, r.Attrs)
	}
	return sb.String()
}

// --- Host edits ---

// Insert inserts s at pos. A nil attrs inherits the attributes of the
// character before pos, minus any attachment.
func (t *Text) Insert(pos int, s string, attrs Attrs) error {
	if pos < 0 || pos > len(t.runes) {
		return fmt.Errorf("insert position %d out of bounds (0-%d)", pos, len(t.runes))
	}
	if s == "" {
		return nil
	}
	if attrs == nil && pos > 0 {
		attrs = t.attrsAt(pos - 1).With(nil, AttrAttachment)
	}

	var b Builder
	b.Copy(t, 0, pos, nil)
	b.AppendString(s, attrs)
	b.Copy(t, pos, len(t.runes), nil)
	t.Replace(b.Text())
	return nil
}

// Delete removes the characters in [start, end).
func (t *Text) Delete(start, end int) error {
	if start < 0 || end > len(t.runes) || start > end {
		return fmt.Errorf("delete range [%d,%d) out of bounds (0-%d)", start, end, len(t.runes))
	}
	if start == end {
		return nil
	}

	var b Builder
	b.Copy(t, 0, start, nil)
	b.Copy(t, end, len(t.runes), nil)
	t.Replace(b.Text())
	return nil
}
