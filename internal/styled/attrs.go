// internal/styled/attrs.go
package styled

import (
	"maps"
	"sort"
	"strings"
)

// Well-known attribute keys.
const (
	AttrBold          = "bold"
	AttrItalic        = "italic"
	AttrStrikethrough = "strikethrough"
	AttrCode          = "code"
	AttrAttachment    = "attachment" // value is an attachment reference
	AttrSyntax        = "syntax"     // value is a highlight capture name, e.g. "keyword"
)

// On is the value stored for boolean attributes such as AttrBold.
const On = "true"

// ObjectReplacement is the character an inline attachment occupies.
const ObjectReplacement = '\uFFFC'

// Attrs is the attribute set of a run. Keys are unique; a nil Attrs and an
// empty one are the same set.
type Attrs map[string]string

// Clone returns an independent copy, or nil when a is empty.
func (a Attrs) Clone() Attrs {
	if len(a) == 0 {
		return nil
	}
	return maps.Clone(a)
}

// Equal reports whether a and b hold the same key/value pairs.
func (a Attrs) Equal(b Attrs) bool {
	return maps.Equal(a, b)
}

// Has reports whether key is set.
func (a Attrs) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// With returns a copy of a with set applied and the clear keys removed.
func (a Attrs) With(set Attrs, clear ...string) Attrs {
	out := make(Attrs, len(a)+len(set))
	for k, v := range a {
		out[k] = v
	}
	for _, k := range clear {
		delete(out, k)
	}
	for k, v := range set {
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// String renders the set with sorted keys, e.g. "{bold=true syntax=keyword}".
func (a Attrs) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(a[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
