package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/types"
)

func smileTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(DefaultSentinel, []Entry{
		{Token: ":smile:", Ref: "emoji/smile", Glyph: "☺"},
		{Token: ":smile2:", Ref: "emoji/grin"},
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

func TestTransformReplacesToken(t *testing.T) {
	text := styled.New("hi :smile: now")
	sel := types.None()
	tr := transform.Checked(New(smileTable(t)))

	if !tr.Transform(text, &sel) {
		t.Fatalf("Transform() = false")
	}
	if got, want := text.Len(), 14-6; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := text.String(), "hi \uFFFC now"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	want := []styled.Run{
		{Start: 0, Len: 3},
		{Start: 3, Len: 1, Attrs: styled.Attrs{styled.AttrAttachment: "emoji/smile"}},
		{Start: 4, Len: 4},
	}
	if diff := cmp.Diff(want, text.Runs()); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}

	if tr.Transform(text, &sel) {
		t.Errorf("second Transform() = true")
	}
}

func TestTransformRemapsSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  types.Range
		want types.Range
	}{
		{"covering the token", types.Span(3, 10), types.Span(3, 4)},
		{"caret inside the token", types.Caret(6), types.Caret(4)},
		{"caret at token start", types.Caret(3), types.Caret(3)},
		{"caret at token end", types.Caret(10), types.Caret(4)},
		{"caret after token", types.Caret(12), types.Caret(6)},
		{"selection from before into the token", types.Span(1, 5), types.Span(1, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := styled.New("hi :smile: now")
			sel := types.Some(tt.sel)
			if !transform.Checked(New(smileTable(t))).Transform(text, &sel) {
				t.Fatalf("Transform() = false")
			}
			if r, _ := sel.Get(); r != tt.want {
				t.Errorf("selection = %v, want %v", r, tt.want)
			}
		})
	}
}

func TestTransformLongestTokenFirst(t *testing.T) {
	text := styled.New(":smile2::smile:")
	sel := types.None()
	if !New(smileTable(t)).Transform(text, &sel) {
		t.Fatalf("Transform() = false")
	}
	if got, want := text.Dump(), "0+1{attachment=emoji/grin} 1+1{attachment=emoji/smile}"; got != want {
		t.Errorf("runs = %q, want %q", got, want)
	}
}

func TestTransformKeepsSurroundingAttributes(t *testing.T) {
	bold := styled.Attrs{styled.AttrBold: styled.On}
	text := styled.FromSegments(styled.Segment{Text: "a:smile:", Attrs: bold})
	sel := types.None()
	if !New(smileTable(t)).Transform(text, &sel) {
		t.Fatalf("Transform() = false")
	}
	if got, want := text.Dump(), "0+1{bold=true} 1+1{attachment=emoji/smile bold=true}"; got != want {
		t.Errorf("runs = %q, want %q", got, want)
	}
}

func TestTransformNoTokens(t *testing.T) {
	for _, s := range []string{"", "plain", ":smile", "smile:", ": smile :"} {
		text := styled.New(s)
		sel := types.None()
		if New(smileTable(t)).Transform(text, &sel) {
			t.Errorf("Transform(%q) = true", s)
		}
		if text.String() != s {
			t.Errorf("text changed to %q", text.String())
		}
	}
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name     string
		sentinel rune
		entries  []Entry
	}{
		{"empty token", ':', []Entry{{Token: "", Ref: "r"}}},
		{"empty ref", ':', []Entry{{Token: ":a:", Ref: ""}}},
		{"duplicate", ':', []Entry{{Token: ":a:", Ref: "r"}, {Token: ":a:", Ref: "s"}}},
		{"missing sentinel", ':', []Entry{{Token: "a:", Ref: "r"}}},
		{"sentinels only", ':', []Entry{{Token: "::", Ref: "r"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.sentinel, tt.entries); err == nil {
				t.Errorf("NewTable() error = nil")
			}
		})
	}

	if _, err := NewTable(0, []Entry{{Token: "->", Ref: "arrow"}}); err != nil {
		t.Errorf("NewTable without sentinel error = %v", err)
	}
}

func TestTableLookupAndGlyph(t *testing.T) {
	table := smileTable(t)
	if ref, ok := table.Lookup(":smile:"); !ok || ref != "emoji/smile" {
		t.Errorf("Lookup(:smile:) = %q, %v", ref, ok)
	}
	if _, ok := table.Lookup(":smile"); ok {
		t.Errorf("Lookup(:smile) found a token")
	}
	if g, ok := table.Glyph("emoji/smile"); !ok || g != "☺" {
		t.Errorf("Glyph() = %q, %v", g, ok)
	}
	if _, ok := table.Glyph("emoji/grin"); ok {
		t.Errorf("Glyph() for an entry without glyph found one")
	}
	if table.Len() != 2 || table.Sentinel() != ':' {
		t.Errorf("Len() = %d, Sentinel() = %q", table.Len(), table.Sentinel())
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.toml")
	data := `
sentinel = "%"
[[token]]
token = "%tm%"
ref = "symbol/trademark"
glyph = "™"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if table.Sentinel() != '%' {
		t.Errorf("Sentinel() = %q", table.Sentinel())
	}
	text := styled.New("acme%tm%")
	sel := types.Some(types.Caret(8))
	if !New(table).Transform(text, &sel) {
		t.Fatalf("Transform() = false")
	}
	if r, _ := sel.Get(); r != types.Caret(5) {
		t.Errorf("caret = %v, want (5,0)", r)
	}

	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("LoadTable(missing) error = nil")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("sentinel = \"ab\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(bad); err == nil {
		t.Errorf("LoadTable(two-character sentinel) error = nil")
	}
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	if table != DefaultTable() {
		t.Errorf("DefaultTable() built twice")
	}
	if table.Sentinel() != DefaultSentinel || table.Len() == 0 {
		t.Fatalf("DefaultTable() = sentinel %q, %d tokens", table.Sentinel(), table.Len())
	}
	if _, ok := table.Lookup(":smile:"); !ok {
		t.Errorf("default table lacks :smile:")
	}
	if New(nil).Table() != table {
		t.Errorf("New(nil) does not use the default table")
	}
}
