package chrome

import (
	"fmt"
	"strings"
)

// ThemeMode is the display-mode preference.
type ThemeMode int

const (
	ThemeLight ThemeMode = iota
	ThemeDark
	ThemeSystem
)

// ThemeModes lists the modes in picker order.
var ThemeModes = []ThemeMode{ThemeLight, ThemeDark, ThemeSystem}

func (m ThemeMode) String() string {
	switch m {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	case ThemeSystem:
		return "system"
	default:
		return fmt.Sprintf("ThemeMode(%d)", int(m))
	}
}

// Label is the human-readable name shown in the theme picker.
func (m ThemeMode) Label() string {
	switch m {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	case ThemeSystem:
		return "System"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the known modes.
func (m ThemeMode) Valid() bool {
	return m >= ThemeLight && m <= ThemeSystem
}

// ParseThemeMode accepts "light", "dark" or "system", case-insensitively.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	case "system", "":
		return ThemeSystem, nil
	default:
		return ThemeSystem, fmt.Errorf("unknown theme mode %q (want light, dark or system)", s)
	}
}

// ThemeSelector holds the current display-mode preference. It is owned by
// the surrounding application; the chrome only reads and writes through it.
type ThemeSelector interface {
	Mode() ThemeMode
	SetMode(mode ThemeMode)
}

// ThemeCell is an in-memory ThemeSelector.
type ThemeCell struct {
	mode ThemeMode
}

// NewThemeCell returns a cell holding mode.
func NewThemeCell(mode ThemeMode) *ThemeCell {
	return &ThemeCell{mode: mode}
}

// Mode implements ThemeSelector.
func (c *ThemeCell) Mode() ThemeMode {
	return c.mode
}

// SetMode implements ThemeSelector. Unknown modes are ignored.
func (c *ThemeCell) SetMode(mode ThemeMode) {
	if !mode.Valid() {
		return
	}
	c.mode = mode
}

var _ ThemeSelector = (*ThemeCell)(nil)
