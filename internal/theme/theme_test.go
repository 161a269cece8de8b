package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/bethropolis/restyle/internal/styled"
)

func TestGetStyleFallsBackThroughParents(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			StyleDefault: tcell.StyleDefault,
			"keyword":    tcell.StyleDefault.Bold(true),
			"string":     tcell.StyleDefault.Foreground(tcell.ColorGreen),
		},
	}
	tests := []struct {
		name string
		want tcell.Style
	}{
		{"keyword", tcell.StyleDefault.Bold(true)},
		{"keyword.control.return", tcell.StyleDefault.Bold(true)},
		{"string.escape", tcell.StyleDefault.Foreground(tcell.ColorGreen)},
		{"unknown", tcell.StyleDefault},
		{"", tcell.StyleDefault},
	}
	for _, tt := range tests {
		if got := th.GetStyle(tt.name); got != tt.want {
			t.Errorf("GetStyle(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	th := DevComfortDark

	if got := th.StyleFor(nil); got != th.GetStyle(StyleDefault) {
		t.Errorf("StyleFor(nil) = %v, want Default", got)
	}

	bold := th.StyleFor(styled.Attrs{styled.AttrBold: styled.On, styled.AttrItalic: styled.On})
	if _, _, attrs := bold.Decompose(); attrs&tcell.AttrBold == 0 || attrs&tcell.AttrItalic == 0 {
		t.Errorf("StyleFor(bold italic) attrs = %v", attrs)
	}

	strike := th.StyleFor(styled.Attrs{styled.AttrStrikethrough: styled.On})
	if _, _, attrs := strike.Decompose(); attrs&tcell.AttrStrikeThrough == 0 {
		t.Errorf("StyleFor(strikethrough) attrs = %v", attrs)
	}

	kw := th.StyleFor(styled.Attrs{styled.AttrSyntax: "keyword.control"})
	if kw != th.GetStyle("keyword") {
		t.Errorf("StyleFor(syntax=keyword.control) = %v, want keyword style", kw)
	}

	att := th.StyleFor(styled.Attrs{styled.AttrAttachment: "emoji/smile", styled.AttrSyntax: "string"})
	if att != th.GetStyle(StyleAttachment) {
		t.Errorf("attachment style not preferred: %v", att)
	}

	code := th.StyleFor(styled.Attrs{styled.AttrCode: styled.On})
	if code != th.GetStyle(StyleCode) {
		t.Errorf("StyleFor(code) = %v", code)
	}
}

func writeTheme(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "solar.toml", `
is_dark = true

[styles.Default]
fg = "#c0c0c0"
bg = "reset"

[styles.keyword]
fg = "red"
bold = true

[styles.comment]
strikethrough = true

[styles.broken]
fg = "#12"
`)
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile() error = %v", err)
	}
	if th.Name != "solar" || !th.IsDark {
		t.Errorf("Name = %q, IsDark = %v", th.Name, th.IsDark)
	}

	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0xc0c0c0)).Background(tcell.ColorReset)
	want := map[string]tcell.Style{
		StyleDefault:   base,
		StyleSelection: base.Reverse(true),
		"keyword":      base.Foreground(tcell.ColorRed).Bold(true),
		"comment":      base.StrikeThrough(true),
	}
	if diff := cmp.Diff(want, th.Styles, cmp.Comparer(func(a, b tcell.Style) bool { return a == b })); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadThemeFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadThemeFromFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("missing file: error = nil")
	}
	bad := writeTheme(t, dir, "bad.toml", "name = [")
	if _, err := LoadThemeFromFile(bad); err == nil {
		t.Errorf("invalid TOML: error = nil")
	}
	badDefault := writeTheme(t, dir, "default.toml", "[styles.Default]\nfg = \"nocolor\"\n")
	if _, err := LoadThemeFromFile(badDefault); err == nil {
		t.Errorf("invalid Default style: error = nil")
	}
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "mono.toml", "name = \"Mono\"\n[styles.Default]\nfg = \"white\"\n")
	writeTheme(t, dir, "notes.txt", "ignored")
	writeTheme(t, dir, "broken.toml", "name = [")

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if diff := cmp.Diff([]string{"DevComfort Dark", "Mono", "Paper"}, m.ListThemes()); diff != "" {
		t.Errorf("ListThemes() mismatch (-want +got):\n%s", diff)
	}
	if m.Current() != DevComfortDark {
		t.Errorf("Current() = %s", m.Current().Name)
	}

	if err := m.SetTheme("mono"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if m.Current().Name != "Mono" {
		t.Errorf("Current() = %s", m.Current().Name)
	}
	if err := m.SetTheme("nope"); err == nil {
		t.Errorf("SetTheme(nope) error = nil")
	}

	if next := m.Next(); next.Name != "Paper" {
		t.Errorf("Next() = %s, want Paper", next.Name)
	}
	if next := m.Next(); next.Name != "DevComfort Dark" {
		t.Errorf("Next() = %s, want wrap to DevComfort Dark", next.Name)
	}

	if _, ok := m.GetTheme("PAPER"); !ok {
		t.Errorf("GetTheme(PAPER) not found")
	}
}

func TestManagerMissingDir(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if len(m.ListThemes()) != 2 {
		t.Errorf("ListThemes() = %v", m.ListThemes())
	}
}
