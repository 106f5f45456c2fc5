package shell

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
)

// HomePath is the landing route that hosts the hero carousel.
const HomePath = "/"

// ListingsPath is where the hero's call to action leads.
const ListingsPath = "/listings"

// Options configures a shell model.
type Options struct {
	Catalog *catalog.Catalog
	// Theme is the externally owned display-mode cell. Defaults to System.
	Theme chrome.ThemeSelector
	// Language is the initially selected language code. Empty keeps the
	// catalog's first entry.
	Language string
	// DarkBackground resolves the System theme mode.
	DarkBackground bool
	Logger         *logger.Logger
}

// Model is the chrome shell: header, overlays, and page body.
type Model struct {
	s *session

	// Components
	viewport viewport.Model
	search   textinput.Model
	help     help.Model
	keys     keyMap

	// UI state
	cursor         int
	ready          bool
	darkBackground bool

	// Dimensions
	width  int
	height int
}

// session holds the chrome core. It is shared by every copy of Model so that
// observer callbacks registered at mount time keep acting on live state.
type session struct {
	cat *catalog.Catalog

	menus    *chrome.MenuCoordinator
	carousel *chrome.Engine
	scroll   *chrome.ScrollObserver
	routes   *chrome.RouteObserver
	theme    chrome.ThemeSelector

	scrollBus *chrome.Bus[int]
	routeBus  *chrome.Bus[string]

	mounted bool
	cmds    []tea.Cmd

	log *logger.Logger
}

// NewModel creates a shell model. The chrome is mounted by Init.
func NewModel(opts Options) (Model, error) {
	if opts.Catalog == nil {
		return Model{}, errors.New("shell needs a catalog")
	}
	theme := opts.Theme
	if theme == nil {
		theme = chrome.NewThemeCell(chrome.ThemeSystem)
	}

	s := &session{
		cat:       opts.Catalog,
		theme:     theme,
		scrollBus: chrome.NewBus[int](),
		routeBus:  chrome.NewBus[string](),
		log:       opts.Logger.Component("shell"),
	}

	engine, err := chrome.NewEngine(opts.Catalog.Slides, opts.Catalog.AutoplayInterval, opts.Logger)
	if err != nil {
		return Model{}, err
	}
	s.carousel = engine
	s.menus = chrome.NewMenuCoordinator(opts.Catalog.Languages, theme, opts.Logger)
	if opts.Language != "" {
		s.menus.SelectLanguage(opts.Language)
	}
	s.scroll = chrome.NewScrollObserver(opts.Catalog.ScrollThreshold, s.menus.OnScrollSignal)
	s.routes = chrome.NewRouteObserver(HomePath, s.onRoute)

	search := textinput.New()
	search.Placeholder = "Search..."
	search.Prompt = "⌕ "
	search.CharLimit = 80

	return Model{
		s:              s,
		search:         search,
		help:           help.New(),
		keys:           newKeyMap(),
		darkBackground: opts.DarkBackground,
		width:          80,
		height:         24,
	}, nil
}

// Init mounts the chrome and starts carousel autoplay.
func (m Model) Init() tea.Cmd {
	m.s.mount()
	return m.s.drain()
}

func (s *session) mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.scroll.Activate(s.scrollBus)
	s.routes.Activate(s.routeBus)
	if s.routes.Path() == HomePath {
		s.schedule(s.carousel.Activate())
	}
	s.log.Info("chrome mounted")
}

// unmount cancels every pending piece of work: the carousel clock and both
// signal subscriptions.
func (s *session) unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.carousel.Deactivate()
	s.scroll.Deactivate()
	s.routes.Deactivate()
	s.log.Info("chrome unmounted")
}

func (s *session) onRoute(path string) {
	s.menus.OnRouteChanged(path)
	if path == HomePath {
		s.schedule(s.carousel.Activate())
	} else {
		s.carousel.Deactivate()
	}
	s.log.DebugFields("route changed", map[string]any{"path": path})
}

func (s *session) schedule(t chrome.Tick) {
	s.cmds = append(s.cmds, autoplayCmd(t, s.carousel.Interval()))
}

func (s *session) drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Helper Methods

// Path returns the active route.
func (m Model) Path() string {
	return m.s.routes.Path()
}

// Menus exposes the menu coordinator for read access.
func (m Model) Menus() *chrome.MenuCoordinator {
	return m.s.menus
}

// Carousel exposes the carousel engine for read access.
func (m Model) Carousel() *chrome.Engine {
	return m.s.carousel
}

// Mounted reports whether the chrome holds its subscriptions and timer.
func (m Model) Mounted() bool {
	return m.s.mounted
}

// Compact reports whether the header is condensed.
func (m Model) Compact() bool {
	return m.s.menus.Compact()
}

// dark resolves the theme preference against the terminal background.
func (m Model) dark() bool {
	switch m.s.theme.Mode() {
	case chrome.ThemeDark:
		return true
	case chrome.ThemeLight:
		return false
	default:
		return m.darkBackground
	}
}

// LinkFor returns the navigation entry for path.
func (m Model) LinkFor(path string) (catalog.NavLink, bool) {
	for _, link := range m.s.cat.Navigation {
		if link.Path == path {
			return link, true
		}
	}
	return catalog.NavLink{}, false
}
