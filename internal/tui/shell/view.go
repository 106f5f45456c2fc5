package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
)

const brandName = "🤝 Umuhuza"

// View renders the current model state
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	st := m.styles()
	state := m.s.menus.State()

	body := m.viewport.View()
	switch {
	case state.Search:
		body = overlayTop(body, m.renderSearchPanel(st), 0)
	case state.Dropdown == chrome.DropdownLanguage:
		body = overlayTop(body, m.renderDropdown(st, "Language"), 0)
	case state.Dropdown == chrome.DropdownTheme:
		panel := m.renderDropdown(st, "Theme")
		body = overlayTop(body, panel, m.width-lipgloss.Width(panel))
	}

	switch state.Drawer {
	case chrome.DrawerMain:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderDrawer(st, "Menu"), body)
	case chrome.DrawerSecondary:
		drawer := m.renderDrawer(st, "More")
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, drawer)
	}
	body = lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.viewport.Height).Render(body)

	var content strings.Builder
	content.WriteString(m.renderHeader(st))
	content.WriteString("\n")
	content.WriteString(body)
	content.WriteString("\n")
	content.WriteString(st.footer.Width(m.width).Render(m.help.View(m.keys)))

	return content.String()
}

// renderHeader renders the navigation header, condensed once the page has
// scrolled past the threshold.
func (m Model) renderHeader(st styles) string {
	lang := m.s.menus.SelectedLanguage()
	theme := themeGlyph(m.s.menus.ThemeMode())

	if m.Compact() {
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			st.brand.Render(brandName), "  ",
			m.renderNav(st, catalog.GroupMain), " ",
			lang.FlagGlyph, "  ", theme,
		)
		return st.headerCompact.Width(m.width).Render(row)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Center,
		st.brand.Render(brandName), "  ",
		st.pill.Render("🌐 "+lang.FlagGlyph+" ▾"), "  ",
		m.search.View(), "  ",
		m.renderNav(st, catalog.GroupSecondary), " ",
		st.pill.Render(theme),
	)
	nav := m.renderNav(st, catalog.GroupMain)

	return st.header.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, top, nav))
}

func (m Model) renderNav(st styles, group catalog.NavGroup) string {
	var items []string
	for _, link := range m.s.cat.Links(group) {
		label := iconGlyph(link.IconRef) + " " + link.Label
		switch {
		case link.Path == m.Path():
			items = append(items, st.navActive.Render(label))
		case link.Path == "/signup":
			items = append(items, st.signUp.Render(link.Label))
		default:
			items = append(items, st.navItem.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) renderDropdown(st styles, title string) string {
	lines := []string{st.drawerTitle.UnsetMarginTop().Render(title)}
	for i, item := range m.dropdownItems() {
		lines = append(lines, m.renderItem(st, item, i == m.cursor))
	}
	return st.dropdown.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderDrawer(st styles, title string) string {
	var lines []string
	lines = append(lines, st.brand.Render(title))

	// A dropdown on top takes the keyboard cursor away from the drawer.
	focused := m.s.menus.State().Dropdown == chrome.DropdownNone
	lastKind := itemKind(-1)
	for i, item := range m.drawerItems() {
		if item.kind != lastKind && lastKind != -1 {
			switch item.kind {
			case itemLanguage:
				lines = append(lines, st.drawerTitle.Render("Language"))
			case itemTheme:
				lines = append(lines, st.drawerTitle.Render("Theme"))
			}
		}
		lastKind = item.kind
		lines = append(lines, m.renderItem(st, item, focused && i == m.cursor))
	}

	return st.drawer.Height(m.viewport.Height - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderItem(st styles, item overlayItem, highlighted bool) string {
	label := item.label
	if item.selected {
		label += " ✓"
	}
	if highlighted {
		return st.dropdownSelected.Render(label)
	}
	return st.dropdownItem.Render(label)
}

func (m Model) renderSearchPanel(st styles) string {
	query := m.s.menus.SearchQuery()
	return st.searchPanel.Render(fmt.Sprintf("Search results for %q will appear here...", query))
}

// renderBody renders the page for the active route.
func (m Model) renderBody(st styles) string {
	if m.Path() != HomePath {
		label := m.Path()
		if link, ok := m.LinkFor(m.Path()); ok {
			label = link.Label
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			st.sectionTitle.Render(label),
			st.muted.Render(label+" Page"),
		)
	}

	sections := []string{m.renderCarousel(st)}
	sections = append(sections, st.sectionTitle.Render("Explore categories"))
	for _, slide := range m.s.carousel.Slides() {
		sections = append(sections, st.text.Render(fmt.Sprintf("  %s %-10s %s", iconGlyph(slide.IconRef), slide.Category, slide.Description)))
	}

	sections = append(sections, st.sectionTitle.Render("How it works"))
	for i, step := range []string{
		"Browse listings from trusted sellers",
		"Message the owner directly",
		"Save favorites and compare offers",
		"Close the deal with confidence",
	} {
		sections = append(sections, st.text.Render(fmt.Sprintf("  %d. %s", i+1, step)))
	}

	sections = append(sections, st.sectionTitle.Render("Latest listings"))
	for i := 0; i < 12; i++ {
		sections = append(sections, st.muted.Render("  Listing placeholder"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCarousel renders the hero slide with its dots, counter, and the
// direction of the latest transition.
func (m Model) renderCarousel(st styles) string {
	engine := m.s.carousel
	state := engine.State()
	slide := engine.Current()

	arrow := ""
	switch state.Direction {
	case chrome.Forward:
		arrow = "» "
	case chrome.Backward:
		arrow = "« "
	}

	dots := make([]string, engine.Len())
	for i := range dots {
		if i == state.Index {
			dots[i] = st.dotActive.Render("━━")
		} else {
			dots[i] = st.dot.Render("•")
		}
	}

	width := m.width - 8
	if width < 20 {
		width = 20
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		st.badge.Render(iconGlyph(slide.IconRef)+" "+slide.Category), "  ",
		st.counter.Render(fmt.Sprintf("%s%d / %d", arrow, state.Index+1, engine.Len())),
	)
	ctas := lipgloss.JoinHorizontal(lipgloss.Center,
		st.ctaPrimary.Render("Browse "+slide.Category),
		st.ctaSecondary.Render("Learn More"),
	)

	return slideStyle(slide.ColorGradient, width).Render(lipgloss.JoinVertical(lipgloss.Left,
		top,
		st.slideTitle.Render(slide.Title),
		st.slideDesc.Render(slide.Description),
		ctas,
		"",
		"‹  "+strings.Join(dots, " ")+"  ›",
	))
}

// overlayTop draws panel over the first lines of base, starting at column x.
func overlayTop(base, panel string, x int) string {
	if x < 0 {
		x = 0
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(panel, "\n") {
		if i >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[i] = strings.Repeat(" ", x) + line
	}
	return strings.Join(baseLines, "\n")
}
