// Package markup turns inline delimiter markup such as **bold** into
// styled runs.
//
// Each matched pair is consumed as three edits: delete the opening
// delimiter, restyle the enclosed run, delete the closing delimiter. No
// content is inserted, so the only ambiguous remapping case is a caret
// inside a delimiter; it collapses to the delimiter's start (BiasBefore).
package markup

import (
	"fmt"
	"sort"

	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/types"
)

// Rule maps a delimiter to the attribute applied to the text it encloses.
// The same delimiter opens and closes the span.
type Rule struct {
	Delimiter string `toml:"delimiter"`
	Attr      string `toml:"attr"`
	Value     string `toml:"value"` // defaults to styled.On
}

// DefaultRules are used when New is given no rules.
var DefaultRules = []Rule{
	{Delimiter: "**", Attr: styled.AttrBold},
	{Delimiter: "__", Attr: styled.AttrItalic},
	{Delimiter: "~~", Attr: styled.AttrStrikethrough},
	{Delimiter: "`", Attr: styled.AttrCode},
}

type rule struct {
	delim []rune
	attrs styled.Attrs
}

// Transformer consumes delimiter pairs left to right. Matching is
// non-overlapping and outermost-first: delimiters inside a consumed span are
// left as literal text until the next call. Pairs never span a line break,
// and a pair with nothing between the delimiters is not a match. Unmatched
// delimiters stay literal.
type Transformer struct {
	rules []rule
}

// New compiles rules, longest delimiter first. It returns an error for an
// empty delimiter or attribute, or a delimiter used twice.
func New(rules ...Rule) (*Transformer, error) {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	seen := make(map[string]bool, len(rules))
	compiled := make([]rule, 0, len(rules))
	for _, r := range rules {
		if r.Delimiter == "" || r.Attr == "" {
			return nil, fmt.Errorf("markup rule %+v: delimiter and attr are required", r)
		}
		if seen[r.Delimiter] {
			return nil, fmt.Errorf("markup rule %+v: delimiter %q defined twice", r, r.Delimiter)
		}
		seen[r.Delimiter] = true
		value := r.Value
		if value == "" {
			value = styled.On
		}
		compiled = append(compiled, rule{delim: []rune(r.Delimiter), attrs: styled.Attrs{r.Attr: value}})
	}
	sort.SliceStable(compiled, func(i, j int) bool {
		return len(compiled[i].delim) > len(compiled[j].delim)
	})
	logger.Debugf("markup: compiled %d rule(s)", len(compiled))
	return &Transformer{rules: compiled}, nil
}

// Must is like New but panics on error. For package-level defaults.
func Must(rules ...Rule) *Transformer {
	t, err := New(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Transformer) Name() string { return "markup" }

// Transform consumes every delimiter pair found in one left-to-right pass.
func (t *Transformer) Transform(text *styled.Text, sel *types.Selection) bool {
	transform.MustValidate(text, sel)

	runes := text.Runes()
	script := transform.NewScript(transform.BiasBefore)
	pairs := 0

	for i := 0; i < len(runes); {
		open, close, r, ok := t.match(runes, i)
		if !ok {
			i++
			continue
		}
		n := len(r.delim)
		script.Add(
			transform.Delete(open, open+n),
			transform.Restyle(open+n, close, r.attrs),
			transform.Delete(close, close+n),
		)
		pairs++
		i = close + n
	}

	if pairs == 0 {
		return false
	}
	changed := script.Commit(text, sel)
	logger.DebugTagf("transform", "markup: consumed %d pair(s), changed=%v", pairs, changed)
	return changed
}

// match tries the rules at position i and returns the first pair found.
// While looking for the close, occurrences of longer delimiters are skipped
// whole, so "*a **b** c*" pairs the outer "*" delimiters.
func (t *Transformer) match(runes []rune, i int) (open, close int, r rule, ok bool) {
	for k, r := range t.rules {
		if !hasPrefixAt(runes, i, r.delim) {
			continue
		}
		longer := t.rules[:k]
		contentStart := i + len(r.delim)
	scan:
		for j := contentStart; j+len(r.delim) <= len(runes); j++ {
			if runes[j] == '\n' {
				break
			}
			for _, l := range longer {
				if len(l.delim) > len(r.delim) && hasPrefixAt(runes, j, l.delim) {
					j += len(l.delim) - 1
					continue scan
				}
			}
			if hasPrefixAt(runes, j, r.delim) {
				if j == contentStart {
					break
				}
				return i, j, r, true
			}
		}
	}
	return 0, 0, rule{}, false
}

func hasPrefixAt(runes []rune, i int, prefix []rune) bool {
	if i+len(prefix) > len(runes) {
		return false
	}
	for k, r := range prefix {
		if runes[i+k] != r {
			return false
		}
	}
	return true
}
