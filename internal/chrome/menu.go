package chrome

import (
	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// MenuID names one of the header overlays.
type MenuID int

const (
	MenuLanguage MenuID = iota
	MenuTheme
	MenuMobileMain
	MenuMobileSecondary
	MenuSearch
)

func (id MenuID) String() string {
	switch id {
	case MenuLanguage:
		return "language"
	case MenuTheme:
		return "theme"
	case MenuMobileMain:
		return "mobile-main"
	case MenuMobileSecondary:
		return "mobile-secondary"
	case MenuSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Dropdown says which anchored picker is open. Only one value can be held,
// so the two pickers can never be open together.
type Dropdown int

const (
	DropdownNone Dropdown = iota
	DropdownLanguage
	DropdownTheme
)

// Drawer says which full-height mobile panel is open.
type Drawer int

const (
	DrawerNone Drawer = iota
	DrawerMain
	DrawerSecondary
)

// MenuState is a read-only snapshot of the overlay state.
type MenuState struct {
	Dropdown Dropdown
	Drawer   Drawer
	Search   bool
}

// Open reports whether menu is visible in this snapshot.
func (s MenuState) Open(menu MenuID) bool {
	switch menu {
	case MenuLanguage:
		return s.Dropdown == DropdownLanguage
	case MenuTheme:
		return s.Dropdown == DropdownTheme
	case MenuMobileMain:
		return s.Drawer == DrawerMain
	case MenuMobileSecondary:
		return s.Drawer == DrawerSecondary
	case MenuSearch:
		return s.Search
	default:
		return false
	}
}

// MenuCoordinator owns overlay visibility for the header. Dropdowns and
// drawers are independent exclusivity groups; the search panel is a third
// independent axis.
type MenuCoordinator struct {
	state MenuState

	languages []catalog.Language
	selected  int
	theme     ThemeSelector

	searchQuery string
	compact     bool

	log *logger.Logger
}

// NewMenuCoordinator builds a coordinator over the language catalog. The first
// language is selected. log may be nil.
func NewMenuCoordinator(languages []catalog.Language, theme ThemeSelector, log *logger.Logger) *MenuCoordinator {
	return &MenuCoordinator{
		languages: languages,
		theme:     theme,
		log:       log.Component("menu"),
	}
}

// Toggle flips menu, closing the other member of its exclusivity group.
func (c *MenuCoordinator) Toggle(menu MenuID) {
	switch menu {
	case MenuLanguage:
		c.state.Dropdown = toggleDropdown(c.state.Dropdown, DropdownLanguage)
	case MenuTheme:
		c.state.Dropdown = toggleDropdown(c.state.Dropdown, DropdownTheme)
	case MenuMobileMain:
		c.state.Drawer = toggleDrawer(c.state.Drawer, DrawerMain)
	case MenuMobileSecondary:
		c.state.Drawer = toggleDrawer(c.state.Drawer, DrawerSecondary)
	case MenuSearch:
		c.state.Search = !c.state.Search
	default:
		c.log.DebugFields("ignoring toggle of unknown menu", map[string]any{"menu": int(menu)})
		return
	}
	c.log.DebugFields("menu toggled", map[string]any{"menu": menu.String(), "open": c.state.Open(menu)})
}

func toggleDropdown(current, target Dropdown) Dropdown {
	if current == target {
		return DropdownNone
	}
	return target
}

func toggleDrawer(current, target Drawer) Drawer {
	if current == target {
		return DrawerNone
	}
	return target
}

// Close hides menu. Closing a closed menu does nothing.
func (c *MenuCoordinator) Close(menu MenuID) {
	switch menu {
	case MenuLanguage:
		if c.state.Dropdown == DropdownLanguage {
			c.state.Dropdown = DropdownNone
		}
	case MenuTheme:
		if c.state.Dropdown == DropdownTheme {
			c.state.Dropdown = DropdownNone
		}
	case MenuMobileMain:
		if c.state.Drawer == DrawerMain {
			c.state.Drawer = DrawerNone
		}
	case MenuMobileSecondary:
		if c.state.Drawer == DrawerSecondary {
			c.state.Drawer = DrawerNone
		}
	case MenuSearch:
		c.state.Search = false
	}
}

// CloseAll hides every overlay.
func (c *MenuCoordinator) CloseAll() {
	c.state = MenuState{}
}

// IsOpen reports whether menu is visible.
func (c *MenuCoordinator) IsOpen(menu MenuID) bool {
	return c.state.Open(menu)
}

// State returns a snapshot of the overlay state.
func (c *MenuCoordinator) State() MenuState {
	return c.state
}

// Languages returns the language catalog in picker order.
func (c *MenuCoordinator) Languages() []catalog.Language {
	return c.languages
}

// SelectedLanguage returns the active language. The zero Language is returned
// only when the catalog is empty.
func (c *MenuCoordinator) SelectedLanguage() catalog.Language {
	if c.selected < 0 || c.selected >= len(c.languages) {
		return catalog.Language{}
	}
	return c.languages[c.selected]
}

// SelectLanguage activates code and closes the language dropdown. Codes outside
// the catalog leave every piece of state untouched and report false.
func (c *MenuCoordinator) SelectLanguage(code string) bool {
	for i, lang := range c.languages {
		if lang.Code == code {
			c.selected = i
			c.Close(MenuLanguage)
			c.log.DebugFields("language selected", map[string]any{"code": code})
			return true
		}
	}
	c.log.DebugFields("language selection ignored", map[string]any{
		"error": vitrineerrors.NewSelectionError("language", code).Error(),
	})
	return false
}

// SelectTheme forwards mode to the theme selector and closes the theme dropdown.
func (c *MenuCoordinator) SelectTheme(mode ThemeMode) {
	if !mode.Valid() {
		c.log.DebugFields("theme selection ignored", map[string]any{
			"error": vitrineerrors.NewSelectionError("theme", mode.String()).Error(),
		})
		return
	}
	if c.theme != nil {
		c.theme.SetMode(mode)
	}
	c.Close(MenuTheme)
	c.log.DebugFields("theme selected", map[string]any{"mode": mode.String()})
}

// ThemeMode reads the current preference from the theme selector.
func (c *MenuCoordinator) ThemeMode() ThemeMode {
	if c.theme == nil {
		return ThemeSystem
	}
	return c.theme.Mode()
}

// OnRouteChanged closes both drawers. Dropdowns are left as they are.
func (c *MenuCoordinator) OnRouteChanged(path string) {
	c.state.Drawer = DrawerNone
	c.log.DebugFields("route changed, drawers closed", map[string]any{"path": path})
}

// OnScrollSignal records the header's compact flag.
func (c *MenuCoordinator) OnScrollSignal(compact bool) {
	c.compact = compact
}

// Compact reports whether the header is condensed.
func (c *MenuCoordinator) Compact() bool {
	return c.compact
}

// UpdateSearch stores the search box contents and focus. The suggestions
// panel is shown exactly when focused with a non-empty query.
func (c *MenuCoordinator) UpdateSearch(query string, focused bool) {
	c.searchQuery = query
	c.state.Search = focused && query != ""
}

// SearchQuery returns the last query passed to UpdateSearch.
func (c *MenuCoordinator) SearchQuery() string {
	return c.searchQuery
}
