package transform

import (
	"testing"

	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/types"
)

func TestMapPosition(t *testing.T) {
	// "ab:xy:cd" with ":xy:" at [2,6) replaced by one character.
	replace := []Edit{Replace(2, 6, "@", nil)}
	// "**bold**" with both delimiters deleted and the word restyled.
	markup := []Edit{Delete(0, 2), Restyle(2, 6, styled.Attrs{styled.AttrBold: styled.On}), Delete(6, 8)}
	// "abc" with "XY" inserted at 1.
	insert := []Edit{Insert(1, "XY", nil)}

	tests := []struct {
		name  string
		edits []Edit
		p     int
		bias  Bias
		want  int
	}{
		{"before replace", replace, 1, BiasAfter, 1},
		{"at replaced span start stays before", replace, 2, BiasAfter, 2},
		{"inside replaced span, bias after", replace, 4, BiasAfter, 3},
		{"inside replaced span, bias before", replace, 4, BiasBefore, 2},
		{"at replaced span end", replace, 6, BiasBefore, 3},
		{"after replace shifts by delta", replace, 8, BiasBefore, 5},

		{"inside opening delimiter", markup, 1, BiasBefore, 0},
		{"just after opening delimiter", markup, 2, BiasBefore, 0},
		{"inside restyled word", markup, 3, BiasBefore, 1},
		{"at closing delimiter start", markup, 6, BiasBefore, 4},
		{"inside closing delimiter", markup, 7, BiasBefore, 4},
		{"end of text", markup, 8, BiasBefore, 4},

		{"at insertion point, bias before", insert, 1, BiasBefore, 1},
		{"at insertion point, bias after", insert, 1, BiasAfter, 3},
		{"after insertion", insert, 2, BiasBefore, 4},
		{"before insertion", insert, 0, BiasAfter, 0},

		{"no edits", nil, 5, BiasAfter, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapPosition(tt.edits, tt.p, tt.bias); got != tt.want {
				t.Errorf("MapPosition(%v, %d, %v) = %d, want %d", tt.edits, tt.p, tt.bias, got, tt.want)
			}
		})
	}
}

func TestRemap(t *testing.T) {
	replace := []Edit{Replace(3, 10, string(styled.ObjectReplacement), nil)}

	tests := []struct {
		name string
		r    types.Range
		bias Bias
		want types.Range
	}{
		{"selection covering the token covers the replacement", types.Span(3, 10), BiasAfter, types.Span(3, 4)},
		{"caret after the token", types.Caret(10), BiasAfter, types.Caret(4)},
		{"caret inside the token moves after", types.Caret(5), BiasAfter, types.Caret(4)},
		{"both ends inside collapse to caret", types.Span(4, 8), BiasBefore, types.Caret(3)},
		{"selection ending inside keeps the replacement", types.Span(1, 6), BiasAfter, types.Span(1, 4)},
		{"selection after the token shifts", types.Span(11, 13), BiasAfter, types.Span(5, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remap(replace, tt.r, tt.bias); got != tt.want {
				t.Errorf("Remap(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
