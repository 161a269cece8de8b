package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/restyle/internal/types"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.Screen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestDrawDefaultText(t *testing.T) {
	s := newScreen(t, 80, 3)
	sb := New(DefaultConfig())
	sb.SetFileInfo("notes.md", true)
	sb.SetCursorInfo(1, 4, types.Span(2, 5))
	sb.SetTransformInfo("markup", true)
	sb.Draw(s, 80, 3)

	want := "notes.md [Modified] -- Line: 2, Col: 5 (3 selected) -- markup*"
	if got := row(s, 2, 80); got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
	if _, _, style, _ := s.GetContent(0, 2); style != DefaultConfig().StyleChanged {
		t.Errorf("style = %v, want the changed style", style)
	}
}

func TestTemporaryMessageExpires(t *testing.T) {
	s := newScreen(t, 40, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sb := New(DefaultConfig())
	sb.now = func() time.Time { return now }

	sb.SetTemporaryMessage("theme: %s", "Paper")
	sb.Draw(s, 40, 1)
	if got := row(s, 0, 40); got != "theme: Paper" {
		t.Errorf("status = %q", got)
	}

	now = now.Add(5 * time.Second)
	sb.Draw(s, 40, 1)
	if got := row(s, 0, 40); !strings.HasPrefix(got, "[No Name] -- Line: 1, Col: 1") {
		t.Errorf("status after timeout = %q", got)
	}
}

func TestDrawTruncates(t *testing.T) {
	s := newScreen(t, 8, 1)
	sb := New(DefaultConfig())
	sb.Draw(s, 8, 1)
	if got := row(s, 0, 8); got != "[No Name" {
		t.Errorf("status = %q", got)
	}
}
