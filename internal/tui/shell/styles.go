package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
)

type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	muted   lipgloss.Color
	text    lipgloss.Color
	surface lipgloss.Color
	raised  lipgloss.Color
	border  lipgloss.Color
}

var (
	darkPalette = palette{
		primary: lipgloss.Color("99"),  // Purple
		accent:  lipgloss.Color("212"), // Pink
		muted:   lipgloss.Color("245"), // Gray
		text:    lipgloss.Color("252"),
		surface: lipgloss.Color("235"),
		raised:  lipgloss.Color("237"),
		border:  lipgloss.Color("240"),
	}

	lightPalette = palette{
		primary: lipgloss.Color("55"),
		accent:  lipgloss.Color("161"),
		muted:   lipgloss.Color("244"),
		text:    lipgloss.Color("235"),
		surface: lipgloss.Color("255"),
		raised:  lipgloss.Color("253"),
		border:  lipgloss.Color("250"),
	}

	// Slide gradients, start and end color.
	gradients = map[string][2]lipgloss.Color{
		"blue-purple": {lipgloss.Color("25"), lipgloss.Color("55")},
		"red-orange":  {lipgloss.Color("124"), lipgloss.Color("166")},
		"green-teal":  {lipgloss.Color("28"), lipgloss.Color("30")},
	}

	iconGlyphs = map[string]string{
		"home":    "⌂",
		"car":     "⛟",
		"map":     "▦",
		"search":  "⌕",
		"info":    "ℹ",
		"mail":    "✉",
		"heart":   "♥",
		"message": "✎",
		"user":    "☺",
	}
)

type styles struct {
	header        lipgloss.Style
	headerCompact lipgloss.Style
	brand         lipgloss.Style
	navItem       lipgloss.Style
	navActive     lipgloss.Style
	pill          lipgloss.Style
	signUp        lipgloss.Style

	dropdown         lipgloss.Style
	dropdownItem     lipgloss.Style
	dropdownSelected lipgloss.Style
	drawer           lipgloss.Style
	drawerTitle      lipgloss.Style
	searchPanel      lipgloss.Style

	badge        lipgloss.Style
	slideTitle   lipgloss.Style
	slideDesc    lipgloss.Style
	ctaPrimary   lipgloss.Style
	ctaSecondary lipgloss.Style
	dot          lipgloss.Style
	dotActive    lipgloss.Style
	counter      lipgloss.Style

	sectionTitle lipgloss.Style
	text         lipgloss.Style
	muted        lipgloss.Style
	footer       lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		header: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.border).
			PaddingLeft(1).
			PaddingRight(1),

		headerCompact: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.raised).
			BorderStyle(lipgloss.ThickBorder()).
			BorderBottom(true).
			BorderForeground(p.primary).
			PaddingLeft(1).
			PaddingRight(1),

		brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		navItem: lipgloss.NewStyle().
			Foreground(p.muted).
			PaddingRight(2),

		navActive: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Underline(true).
			PaddingRight(2),

		pill: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		signUp: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(p.primary).
			Padding(0, 1),

		dropdown: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Background(p.surface).
			Padding(0, 1),

		dropdownItem: lipgloss.NewStyle().
			Foreground(p.text).
			PaddingLeft(2),

		dropdownSelected: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.primary).
			PaddingLeft(1),

		drawer: lipgloss.NewStyle().
			Width(30).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Background(p.surface).
			Padding(1, 2),

		drawerTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginTop(1),

		searchPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Foreground(p.muted).
			Padding(0, 2),

		badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(0, 1),

		slideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginTop(1),

		slideDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("254")).
			MarginBottom(1),

		ctaPrimary: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("234")).
			Background(lipgloss.Color("255")).
			Padding(0, 2).
			MarginRight(2),

		ctaSecondary: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(0, 2),

		dot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),

		dotActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true),

		counter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true),

		sectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginTop(1),

		text: lipgloss.NewStyle().
			Foreground(p.text),

		muted: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),

		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.border),
	}
}

// styles returns the style set for the resolved theme.
func (m Model) styles() styles {
	if m.dark() {
		return newStyles(darkPalette)
	}
	return newStyles(lightPalette)
}

// slideStyle paints the slide frame in its gradient colors.
func slideStyle(gradient string, width int) lipgloss.Style {
	colors, ok := gradients[gradient]
	if !ok {
		colors = [2]lipgloss.Color{lipgloss.Color("238"), lipgloss.Color("240")}
	}
	return lipgloss.NewStyle().
		Width(width).
		Background(colors[0]).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(colors[1]).
		BorderBackground(colors[0]).
		Padding(1, 3)
}

func iconGlyph(ref string) string {
	if glyph, ok := iconGlyphs[ref]; ok {
		return glyph
	}
	return "•"
}

func themeGlyph(mode chrome.ThemeMode) string {
	switch mode {
	case chrome.ThemeLight:
		return "☀"
	case chrome.ThemeDark:
		return "☾"
	default:
		return "◐"
	}
}
