// internal/transform/token/table.go
package token

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/restyle/internal/logger"
)

// DefaultSentinel delimits tokens on both sides, as in ":smile:".
const DefaultSentinel = ':'

// Entry maps one token to the attachment that replaces it.
type Entry struct {
	Token string `toml:"token"`
	Ref   string `toml:"ref"`
	Glyph string `toml:"glyph"` // shown in place of the attachment; optional
}

// tableFile is the on-disk form of a Table.
type tableFile struct {
	Sentinel string  `toml:"sentinel"`
	Tokens   []Entry `toml:"token"`
}

type candidate struct {
	token []rune
	ref   string
}

// Table is a closed token vocabulary. It is read-only once built and safe to
// share between transformers and goroutines.
type Table struct {
	sentinel rune
	byFirst  map[rune][]candidate // longest token first
	glyphs   map[string]string
	size     int
}

// NewTable validates entries and builds a table. A sentinel of 0 disables
// the delimiter check; otherwise every token must start and end with it and
// have at least one character in between.
func NewTable(sentinel rune, entries []Entry) (*Table, error) {
	t := &Table{
		sentinel: sentinel,
		byFirst:  make(map[rune][]candidate),
		glyphs:   make(map[string]string),
	}
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Token == "" || e.Ref == "" {
			return nil, fmt.Errorf("token entry %d: token and ref are required", i)
		}
		if seen[e.Token] {
			return nil, fmt.Errorf("token entry %d: duplicate token %q", i, e.Token)
		}
		seen[e.Token] = true

		rs := []rune(e.Token)
		if sentinel != 0 && (len(rs) < 3 || rs[0] != sentinel || rs[len(rs)-1] != sentinel) {
			return nil, fmt.Errorf("token entry %d: %q is not delimited by %q", i, e.Token, sentinel)
		}
		t.byFirst[rs[0]] = append(t.byFirst[rs[0]], candidate{token: rs, ref: e.Ref})
		if e.Glyph != "" {
			t.glyphs[e.Ref] = e.Glyph
		}
		t.size++
	}
	for _, cs := range t.byFirst {
		sort.SliceStable(cs, func(i, j int) bool { return len(cs[i].token) > len(cs[j].token) })
	}
	return t, nil
}

// LoadTable reads a TOML token table:
//
//	sentinel = ":"
//	[[token]]
//	token = ":smile:"
//	ref = "emoji/smile"
//	glyph = "😄"
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token table %s: %w", path, err)
	}
	t, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("token table %s: %w", path, err)
	}
	logger.Debugf("token: loaded %d token(s) from %s", t.Len(), path)
	return t, nil
}

func parseTable(data []byte) (*Table, error) {
	var f tableFile
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("token: ignoring unknown keys %v", undecoded)
	}
	sentinel, err := parseSentinel(f.Sentinel, meta.IsDefined("sentinel"))
	if err != nil {
		return nil, err
	}
	return NewTable(sentinel, f.Tokens)
}

// parseSentinel accepts a single character. An explicitly empty value
// disables the sentinel; a missing one means DefaultSentinel.
func parseSentinel(s string, defined bool) (rune, error) {
	if !defined {
		return DefaultSentinel, nil
	}
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, errors.New("sentinel must be a single character")
	}
	return r, nil
}

//go:embed default_tokens.toml
var defaultTokens []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultTable returns the built-in table, built on first use.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		t, err := parseTable(defaultTokens)
		if err != nil {
			panic(fmt.Sprintf("token: built-in table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Len returns the number of tokens.
func (t *Table) Len() int { return t.size }

// Sentinel returns the delimiter, or 0 when there is none.
func (t *Table) Sentinel() rune { return t.sentinel }

// Glyph returns the display glyph for an attachment reference.
func (t *Table) Glyph(ref string) (string, bool) {
	g, ok := t.glyphs[ref]
	return g, ok
}

// Match returns the longest token starting at runes[i] and its reference.
// n is 0 when nothing matches.
func (t *Table) Match(runes []rune, i int) (n int, ref string) {
	if i < 0 || i >= len(runes) {
		return 0, ""
	}
	for _, c := range t.byFirst[runes[i]] {
		if hasPrefixAt(runes, i, c.token) {
			return len(c.token), c.ref
		}
	}
	return 0, ""
}

// Lookup returns the reference for an exact token.
func (t *Table) Lookup(token string) (string, bool) {
	rs := []rune(token)
	if n, ref := t.Match(rs, 0); n == len(rs) && n > 0 {
		return ref, true
	}
	return "", false
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
