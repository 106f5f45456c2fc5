package shell

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
)

const (
	headerLines = 4
	footerLines = 2
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		bodyHeight := m.height - headerLines - footerLines
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = bodyHeight
		}
		m.syncBody()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.scrollBody(msg)

	// Carousel autoplay
	case AutoplayMsg:
		next, ok := m.s.carousel.Fire(msg.Tick)
		if !ok {
			// Superseded by a manual action or fired after unmount.
			return m, nil
		}
		m.syncBody()
		return m, autoplayCmd(next, m.s.carousel.Interval())

	case NavigateMsg:
		return m.navigate(msg.Path)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress routes keys: the focused search box first, then overlay
// toggles, then the open overlay, then the page body.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.s.unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.s.menus.CloseAll()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.MainDrawer):
		return m.toggle(chrome.MenuMobileMain), nil

	case key.Matches(msg, m.keys.SecondaryDrawer):
		return m.toggle(chrome.MenuMobileSecondary), nil

	case key.Matches(msg, m.keys.Language):
		return m.toggle(chrome.MenuLanguage), nil

	case key.Matches(msg, m.keys.Theme):
		return m.toggle(chrome.MenuTheme), nil

	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		m.s.menus.UpdateSearch(m.search.Value(), true)
		return m, cmd
	}

	if items := m.overlayItems(); len(items) > 0 {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + len(items)) % len(items)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(items)
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.cursor < 0 || m.cursor >= len(items) {
				return m, nil
			}
			return m.activate(items[m.cursor])
		}
	}

	return m.handleBodyKeys(msg)
}

// handleSearchKeys handles keys while the search box has focus
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.s.unmount()
		return m, tea.Quit

	case "esc", "enter":
		m.search.Blur()
		m.s.menus.UpdateSearch(m.search.Value(), false)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.s.menus.UpdateSearch(m.search.Value(), true)
	return m, cmd
}

// handleBodyKeys handles carousel, page navigation and scrolling
func (m Model) handleBodyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		tick, ok := m.s.carousel.Retreat()
		return m.afterCarousel(tick, ok)

	case key.Matches(msg, m.keys.Next):
		tick, ok := m.s.carousel.Advance()
		return m.afterCarousel(tick, ok)

	case key.Matches(msg, m.keys.Jump):
		index := int(msg.String()[0] - '1')
		tick, ok := m.s.carousel.JumpTo(index)
		return m.afterCarousel(tick, ok)

	case key.Matches(msg, m.keys.Select):
		// The hero's primary call to action.
		if m.Path() == HomePath {
			return m, navigateCmd(ListingsPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m.navigate(m.adjacentPath(1))

	case key.Matches(msg, m.keys.PrevTab):
		return m.navigate(m.adjacentPath(-1))

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Page):
		return m.scrollBody(msg)
	}
	return m, nil
}

func (m Model) afterCarousel(tick chrome.Tick, ok bool) (tea.Model, tea.Cmd) {
	if !ok {
		return m, nil
	}
	m.syncBody()
	return m, autoplayCmd(tick, m.s.carousel.Interval())
}

func (m Model) toggle(menu chrome.MenuID) Model {
	m.s.menus.Toggle(menu)
	m.cursor = 0
	for i, item := range m.overlayItems() {
		if item.selected {
			m.cursor = i
			break
		}
	}
	return m
}

// activate performs the action behind an overlay row.
func (m Model) activate(item overlayItem) (tea.Model, tea.Cmd) {
	switch item.kind {
	case itemLink:
		// Following a link always dismisses the drawer, even when the
		// destination is the current page.
		m.s.menus.Close(chrome.MenuMobileMain)
		m.s.menus.Close(chrome.MenuMobileSecondary)
		return m.navigate(item.path)
	case itemLanguage:
		m.s.menus.SelectLanguage(item.language)
	case itemTheme:
		m.s.menus.SelectTheme(item.theme)
	}
	if len(m.overlayItems()) == 0 {
		m.cursor = 0
	}
	m.syncBody()
	return m, nil
}

// navigate publishes path on the route bus. Unknown destinations are ignored.
func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	if _, ok := m.LinkFor(path); !ok {
		m.s.log.DebugFields("navigation ignored", map[string]any{"path": path})
		return m, nil
	}

	before := m.Path()
	m.s.routeBus.Publish(path)
	if m.Path() != before {
		m.cursor = 0
		if m.ready {
			m.viewport.SetYOffset(0)
		}
	}
	m.syncBody()
	return m, m.s.drain()
}

func (m Model) adjacentPath(step int) string {
	links := m.s.cat.Navigation
	current := 0
	for i, link := range links {
		if link.Path == m.Path() {
			current = i
			break
		}
	}
	next := (current + step + len(links)) % len(links)
	return links[next].Path
}

// scrollBody forwards msg to the viewport and publishes the resulting offset.
func (m Model) scrollBody(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.s.scrollBus.Publish(m.viewport.YOffset)
	return m, cmd
}

// syncBody re-renders the page body into the viewport.
func (m *Model) syncBody() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderBody(m.styles()))
	m.s.scrollBus.Publish(m.viewport.YOffset)
}

// overlayItems lists the rows that keyboard selection acts on: the open
// dropdown, or the open drawer when no dropdown is open.
func (m Model) overlayItems() []overlayItem {
	if items := m.dropdownItems(); len(items) > 0 {
		return items
	}
	return m.drawerItems()
}

func (m Model) dropdownItems() []overlayItem {
	switch m.s.menus.State().Dropdown {
	case chrome.DropdownLanguage:
		return m.languageItems()
	case chrome.DropdownTheme:
		return m.themeItems()
	}
	return nil
}

func (m Model) drawerItems() []overlayItem {
	switch m.s.menus.State().Drawer {
	case chrome.DrawerMain:
		items := m.linkItems(catalog.GroupMain)
		items = append(items, m.languageItems()...)
		return append(items, m.themeItems()...)
	case chrome.DrawerSecondary:
		return m.linkItems(catalog.GroupSecondary)
	}
	return nil
}

func (m Model) linkItems(group catalog.NavGroup) []overlayItem {
	var items []overlayItem
	for _, link := range m.s.cat.Links(group) {
		items = append(items, overlayItem{
			kind:     itemLink,
			label:    iconGlyph(link.IconRef) + " " + link.Label,
			path:     link.Path,
			selected: link.Path == m.Path(),
		})
	}
	return items
}

func (m Model) languageItems() []overlayItem {
	selected := m.s.menus.SelectedLanguage().Code
	var items []overlayItem
	for _, lang := range m.s.menus.Languages() {
		items = append(items, overlayItem{
			kind:     itemLanguage,
			label:    lang.FlagGlyph + " " + lang.DisplayName,
			language: lang.Code,
			selected: lang.Code == selected,
		})
	}
	return items
}

func (m Model) themeItems() []overlayItem {
	current := m.s.menus.ThemeMode()
	items := make([]overlayItem, 0, len(chrome.ThemeModes))
	for _, mode := range chrome.ThemeModes {
		items = append(items, overlayItem{
			kind:     itemTheme,
			label:    themeGlyph(mode) + " " + mode.Label(),
			theme:    mode,
			selected: mode == current,
		})
	}
	return items
}
