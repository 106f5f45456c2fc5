package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	assert.True(t, m.ready)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 40-headerLines-footerLines, m.viewport.Height)

	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 3})
	assert.Equal(t, 1, m.viewport.Height, "body keeps at least one line")
}

func TestUpdate_MenuExclusivity(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("L"))
	assert.Equal(t, chrome.DropdownLanguage, m.Menus().State().Dropdown)

	m = send(t, m, runes("T"))
	assert.Equal(t, chrome.DropdownTheme, m.Menus().State().Dropdown, "theme replaces language")

	m = send(t, m, runes("m"))
	assert.Equal(t, chrome.DrawerMain, m.Menus().State().Drawer)
	assert.Equal(t, chrome.DropdownTheme, m.Menus().State().Dropdown, "drawers and dropdowns are independent")

	m = send(t, m, runes("o"))
	assert.Equal(t, chrome.DrawerSecondary, m.Menus().State().Drawer, "secondary replaces main")

	m = send(t, m, runes("o"))
	assert.Equal(t, chrome.DrawerNone, m.Menus().State().Drawer)

	m = send(t, m, runes("m"))
	m = send(t, m, keyOf(tea.KeyEsc))
	assert.Equal(t, chrome.MenuState{}, m.Menus().State())
}

func TestUpdate_SelectLanguage(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("L"))
	assert.Equal(t, 0, m.cursor, "cursor starts on the selected language")

	m = send(t, m, keyOf(tea.KeyDown))
	m = send(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, "fr", m.Menus().SelectedLanguage().Code)
	assert.False(t, m.Menus().IsOpen(chrome.MenuLanguage))
}

func TestUpdate_SelectTheme(t *testing.T) {
	opts := defaultOptions(t)
	cell := chrome.NewThemeCell(chrome.ThemeSystem)
	opts.Theme = cell
	m := newTestModel(t, opts, 100, 40)

	m = send(t, m, runes("T"))
	assert.Equal(t, 2, m.cursor, "cursor starts on System")

	m = send(t, m, keyOf(tea.KeyUp))
	m = send(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, chrome.ThemeDark, cell.Mode())
	assert.False(t, m.Menus().IsOpen(chrome.MenuTheme))
	assert.True(t, m.dark())
}

func TestUpdate_OverlayCursorWraps(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("L"))
	m = send(t, m, keyOf(tea.KeyUp))
	assert.Equal(t, 2, m.cursor)
	m = send(t, m, keyOf(tea.KeyDown))
	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_DrawerLinkNavigates(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("m"))
	assert.Equal(t, 0, m.cursor, "cursor starts on the active page")

	m = send(t, m, keyOf(tea.KeyDown))
	m, cmd := sendCmd(t, m, keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "/listings", m.Path())
	assert.Equal(t, chrome.DrawerNone, m.Menus().State().Drawer)
	assert.False(t, m.Carousel().Active(), "carousel unmounts off the home page")
}

func TestUpdate_DrawerLinkToCurrentPageCloses(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("m"))
	m = send(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, HomePath, m.Path())
	assert.Equal(t, chrome.DrawerNone, m.Menus().State().Drawer)
	assert.True(t, m.Carousel().Active())
}

func TestUpdate_DrawerLanguageRow(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("m"))
	// Four main links, then the languages.
	for i := 0; i < 6; i++ {
		m = send(t, m, keyOf(tea.KeyDown))
	}
	m = send(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, "rn", m.Menus().SelectedLanguage().Code)
	assert.Equal(t, chrome.DrawerMain, m.Menus().State().Drawer, "picking a language keeps the drawer open")
}

func TestUpdate_RouteChangeClosesDrawers(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("L"))
	m = send(t, m, runes("o"))
	m = send(t, m, keyOf(tea.KeyTab))

	assert.Equal(t, "/listings", m.Path())
	assert.Equal(t, chrome.DrawerNone, m.Menus().State().Drawer)
	assert.Equal(t, chrome.DropdownLanguage, m.Menus().State().Dropdown, "dropdowns survive navigation")
}

func TestUpdate_TabNavigationWraps(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, keyOf(tea.KeyShiftTab))
	assert.Equal(t, "/signup", m.Path())

	m, cmd := sendCmd(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, HomePath, m.Path())
	assert.NotNil(t, cmd, "returning home restarts autoplay")
	assert.True(t, m.Carousel().Active())
	assert.Equal(t, 0, m.Carousel().State().Index)
}

func TestUpdate_NavigateMsg(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, NavigateMsg{Path: "/nowhere"})
	assert.Equal(t, HomePath, m.Path(), "unknown destinations are ignored")

	m = send(t, m, NavigateMsg{Path: "/about"})
	assert.Equal(t, "/about", m.Path())
}

func TestUpdate_HeroCallToAction(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m, cmd := sendCmd(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg := cmd()
	nav, ok := msg.(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, ListingsPath, nav.Path)

	m = send(t, m, nav)
	assert.Equal(t, ListingsPath, m.Path())

	_, cmd = sendCmd(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd, "the call to action lives on the home page only")
}

func TestUpdate_CarouselKeys(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m, cmd := sendCmd(t, m, keyOf(tea.KeyRight))
	assert.NotNil(t, cmd)
	assert.Equal(t, chrome.CarouselState{Index: 1, Direction: chrome.Forward, Playing: true}, m.Carousel().State())

	m, cmd = sendCmd(t, m, runes("h"))
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, m.Carousel().State().Index)
	assert.Equal(t, chrome.Backward, m.Carousel().State().Direction)

	m, cmd = sendCmd(t, m, runes("3"))
	assert.NotNil(t, cmd)
	assert.Equal(t, 2, m.Carousel().State().Index)

	m, cmd = sendCmd(t, m, runes("9"))
	assert.Nil(t, cmd, "out-of-range jump leaves the clock alone")
	assert.Equal(t, 2, m.Carousel().State().Index)
}

func TestUpdate_CarouselKeysOffHome(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)
	m = send(t, m, NavigateMsg{Path: "/about"})

	_, cmd := sendCmd(t, m, keyOf(tea.KeyRight))
	assert.Nil(t, cmd)
	assert.False(t, m.Carousel().Active())
}

func TestUpdate_AutoplayMsg(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	live, ok := m.Carousel().Pending()
	require.True(t, ok)

	m, cmd := sendCmd(t, m, AutoplayMsg{Tick: live})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.Carousel().State().Index)

	// The consumed tick is now stale.
	m, cmd = sendCmd(t, m, AutoplayMsg{Tick: live})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Carousel().State().Index)
}

func TestUpdate_ManualActionSupersedesAutoplay(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	stale, ok := m.Carousel().Pending()
	require.True(t, ok)

	m = send(t, m, keyOf(tea.KeyRight))
	m, cmd := sendCmd(t, m, AutoplayMsg{Tick: stale})

	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Carousel().State().Index, "stale tick must not advance")

	live, ok := m.Carousel().Pending()
	require.True(t, ok)
	m = send(t, m, AutoplayMsg{Tick: live})
	assert.Equal(t, 2, m.Carousel().State().Index)
}

func TestUpdate_QuitUnmounts(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	live, ok := m.Carousel().Pending()
	require.True(t, ok)

	m, cmd := sendCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Mounted())
	assert.False(t, m.Carousel().Active())

	_, cmd = sendCmd(t, m, AutoplayMsg{Tick: live})
	assert.Nil(t, cmd, "no autoplay after unmount")
}

func TestUpdate_ScrollCompactsHeader(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 20)
	require.False(t, m.Compact())

	m = send(t, m, keyOf(tea.KeyPgDown))
	assert.Greater(t, m.viewport.YOffset, 10)
	assert.True(t, m.Compact())

	m = send(t, m, keyOf(tea.KeyPgUp))
	assert.Equal(t, 0, m.viewport.YOffset)
	assert.False(t, m.Compact())
}

func TestUpdate_MouseWheelScrolls(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 20)

	wheel := tea.MouseMsg{X: 10, Y: 10, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	for i := 0; i < 4; i++ {
		m = send(t, m, wheel)
	}
	assert.Greater(t, m.viewport.YOffset, 10)
	assert.True(t, m.Compact())
}

func TestUpdate_NavigationResetsScroll(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 20)

	m = send(t, m, keyOf(tea.KeyPgDown))
	require.True(t, m.Compact())

	m = send(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, 0, m.viewport.YOffset)
	assert.False(t, m.Compact())
}

func TestUpdate_Search(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("/"))
	assert.True(t, m.search.Focused())
	assert.False(t, m.Menus().State().Search, "panel stays hidden until there is a query")

	m = send(t, m, runes("v"))
	m = send(t, m, runes("q"))
	assert.Equal(t, "vq", m.search.Value())
	assert.True(t, m.Menus().State().Search)
	assert.True(t, m.Mounted(), "q types into the search box")

	m = send(t, m, keyOf(tea.KeyEsc))
	assert.False(t, m.search.Focused())
	assert.False(t, m.Menus().State().Search)
	assert.Equal(t, "vq", m.Menus().SearchQuery())
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t, defaultOptions(t), 100, 40)

	m = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	m = send(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}
