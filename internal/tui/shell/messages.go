package shell

import (
	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
)

// AutoplayMsg is delivered when a carousel autoplay interval elapses.
type AutoplayMsg struct {
	Tick chrome.Tick
}

// NavigateMsg requests a route change, as if a navigation link was followed.
type NavigateMsg struct {
	Path string
}

// overlayItem is one selectable row of an open dropdown or drawer.
type overlayItem struct {
	label    string
	selected bool

	path     string
	language string
	theme    chrome.ThemeMode
	kind     itemKind
}

type itemKind int

const (
	itemLink itemKind = iota
	itemLanguage
	itemTheme
)
