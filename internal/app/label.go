package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/types"
)

// LabelOptions control Label output.
type LabelOptions struct {
	// Runs appends the attribute run dump after the text.
	Runs bool
	// Glyphs, when set, prints attachments as their glyph instead of U+FFFC.
	Glyphs func(ref string) (string, bool)
}

// Label is the non-interactive host: it transforms src once without a
// selection and writes the resulting text to w.
func Label(w io.Writer, src string, t transform.Transformer, opts LabelOptions) error {
	text := styled.New(src)
	sel := types.None()
	if t != nil {
		t.Transform(text, &sel)
	}

	out := plain(text, opts.Glyphs)
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	if !opts.Runs {
		return nil
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write runs: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, text.Dump()); err != nil {
		return fmt.Errorf("write runs: %w", err)
	}
	return nil
}

func plain(text *styled.Text, glyphs func(string) (string, bool)) string {
	if glyphs == nil {
		return text.String()
	}
	var sb strings.Builder
	for i, r := range text.Runes() {
		if r == styled.ObjectReplacement {
			if ref, ok := text.Attr(i, styled.AttrAttachment); ok {
				if g, ok := glyphs(ref); ok {
					sb.WriteString(g)
					continue
				}
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
