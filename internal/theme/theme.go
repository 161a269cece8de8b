// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
)

// UI style names looked up by the drawing code.
const (
	StyleDefault          = "Default"
	StyleSelection        = "Selection"
	StyleCode             = "Code"
	StyleAttachment       = "Attachment"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarChanged = "StatusBarChanged"
	StyleStatusBarMessage = "StatusBarMessage"
)

// Theme maps style names to tcell styles. Syntax capture names such as
// "keyword.control" are style names too.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name. Dotted names fall back to their
// parents ("string.escape" to "string"), then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	for n := name; n != ""; {
		if style, ok := t.Styles[n]; ok {
			if n != name {
				logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using '%s'", t.Name, name, n)
			}
			return style
		}
		dot := strings.LastIndex(n, ".")
		if dot == -1 {
			break
		}
		n = n[:dot]
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// StyleFor resolves the attribute set of a run to a screen style. The
// syntax attribute picks the base style; code spans and attachments use
// their UI styles; bold, italic and strikethrough are applied on top.
func (t *Theme) StyleFor(attrs styled.Attrs) tcell.Style {
	style := t.GetStyle(StyleDefault)
	switch {
	case attrs.Has(styled.AttrAttachment):
		style = t.GetStyle(StyleAttachment)
	case attrs.Has(styled.AttrCode):
		style = t.GetStyle(StyleCode)
	case attrs.Has(styled.AttrSyntax):
		style = t.GetStyle(attrs[styled.AttrSyntax])
	}
	if attrs[styled.AttrBold] == styled.On {
		style = style.Bold(true)
	}
	if attrs[styled.AttrItalic] == styled.On {
		style = style.Italic(true)
	}
	if attrs[styled.AttrStrikethrough] == styled.On {
		style = style.StrikeThrough(true)
	}
	return style
}

// DevComfortDark is the built-in default theme.
var DevComfortDark = newDevComfortDark()

func newDevComfortDark() *Theme {
	dcBackground := tcell.NewHexColor(0x2a2f38)
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcCodeBg := tcell.NewHexColor(0x353b45)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcOrange := tcell.NewHexColor(0xd19a66)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcCyan := tcell.NewHexColor(0x56b6c2)
	dcBlue := tcell.NewHexColor(0x61afef)
	dcMagenta := tcell.NewHexColor(0xc678dd)

	// Terminal background, DevComfort foreground.
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	return &Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StyleSelection:        baseStyle.Reverse(true),
			StyleCode:             baseStyle.Background(dcCodeBg).Foreground(dcOrange),
			StyleAttachment:       baseStyle.Foreground(dcMagenta),
			StyleStatusBar:        tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			StyleStatusBarChanged: tcell.StyleDefault.Background(dcBackground).Foreground(dcYellow),
			StyleStatusBarMessage: tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground).Bold(true),

			"keyword":          baseStyle.Foreground(dcBlue).Bold(true),
			"string":           baseStyle.Foreground(dcGreen),
			"string.escape":    baseStyle.Foreground(dcMagenta),
			"string.regex":     baseStyle.Foreground(dcMagenta),
			"comment":          baseStyle.Foreground(dcComment).Italic(true),
			"number":           baseStyle.Foreground(dcOrange),
			"constant":         baseStyle.Foreground(dcOrange),
			"type":             baseStyle.Foreground(dcCyan),
			"type.builtin":     baseStyle.Foreground(dcCyan).Bold(true),
			"function":         baseStyle.Foreground(dcYellow),
			"function.macro":   baseStyle.Foreground(dcMagenta),
			"namespace":        baseStyle.Foreground(dcCyan),
			"property":         baseStyle.Foreground(dcForeground),
			"attribute":        baseStyle.Foreground(dcMagenta),
			"variable.builtin": baseStyle.Foreground(dcCyan),
		},
	}
}

// Paper is the built-in light theme.
var Paper = newPaper()

func newPaper() *Theme {
	fg := tcell.NewHexColor(0x383a42)
	bar := tcell.NewHexColor(0xe5e5e6)
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	return &Theme{
		Name:   "Paper",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StyleSelection:        baseStyle.Reverse(true),
			StyleCode:             baseStyle.Background(tcell.NewHexColor(0xf0f0f0)).Foreground(tcell.NewHexColor(0xa626a4)),
			StyleAttachment:       baseStyle.Foreground(tcell.NewHexColor(0xe45649)),
			StyleStatusBar:        tcell.StyleDefault.Background(bar).Foreground(fg),
			StyleStatusBarChanged: tcell.StyleDefault.Background(bar).Foreground(tcell.NewHexColor(0xc18401)),
			StyleStatusBarMessage: tcell.StyleDefault.Background(bar).Foreground(fg).Bold(true),

			"keyword":  baseStyle.Foreground(tcell.NewHexColor(0xa626a4)),
			"string":   baseStyle.Foreground(tcell.NewHexColor(0x50a14f)),
			"comment":  baseStyle.Foreground(tcell.NewHexColor(0xa0a1a7)).Italic(true),
			"number":   baseStyle.Foreground(tcell.NewHexColor(0x986801)),
			"constant": baseStyle.Foreground(tcell.NewHexColor(0x986801)),
			"type":     baseStyle.Foreground(tcell.NewHexColor(0xc18401)),
			"function": baseStyle.Foreground(tcell.NewHexColor(0x4078f2)),
		},
	}
}
