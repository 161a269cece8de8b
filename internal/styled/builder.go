// internal/styled/builder.go
package styled

import "unicode/utf8"

// Builder assembles a Text by appending styled pieces. The zero value is
// ready to use. Runs are normalised when Text is called.
type Builder struct {
	runes []rune
	runs  []run
}

// Len returns the number of characters appended so far.
func (b *Builder) Len() int {
	return len(b.runes)
}

// Append adds rs carrying attrs.
func (b *Builder) Append(rs []rune, attrs Attrs) {
	if len(rs) == 0 {
		return
	}
	b.runes = append(b.runes, rs...)
	b.push(len(rs), attrs.Clone())
}

// AppendString adds s carrying attrs.
func (b *Builder) AppendString(s string, attrs Attrs) {
	if s == "" {
		return
	}
	n := utf8.RuneCountInString(s)
	for _, r := range s {
		b.runes = append(b.runes, r)
	}
	b.push(n, attrs.Clone())
}

// Copy appends the characters of src in [start, end). When restyle is not
// nil, every copied run's attributes are passed through it.
func (b *Builder) Copy(src *Text, start, end int, restyle func(Attrs) Attrs) {
	if start >= end {
		return
	}
	b.runes = append(b.runes, src.runes[start:end]...)

	pos := 0
	for _, r := range src.runs {
		runStart, runEnd := pos, pos+r.n
		pos = runEnd
		if runEnd <= start {
			continue
		}
		if runStart >= end {
			break
		}
		lo, hi := max(runStart, start), min(runEnd, end)
		attrs := r.attrs.Clone()
		if restyle != nil {
			attrs = restyle(attrs)
		}
		b.push(hi-lo, attrs)
	}
}

// push appends a run, merging with the previous one when attributes match.
func (b *Builder) push(n int, attrs Attrs) {
	if n <= 0 {
		return
	}
	if len(attrs) == 0 {
		attrs = nil
	}
	if last := len(b.runs) - 1; last >= 0 && b.runs[last].attrs.Equal(attrs) {
		b.runs[last].n += n
		return
	}
	b.runs = append(b.runs, run{n: n, attrs: attrs})
}

// Text returns the built text. The builder is reset.
func (b *Builder) Text() *Text {
	t := &Text{runes: b.runes, runs: b.runs}
	if t.runes == nil {
		t.runes = []rune{}
	}
	b.runes, b.runs = nil, nil
	return t
}
