package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mshamp4/ConnectFourRemote/internal/config"
	"github.com/mshamp4/ConnectFourRemote/internal/core"
	"github.com/mshamp4/ConnectFourRemote/internal/storage"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenResults
)

// SessionModel manages the full flow: menu -> game or results -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	cfg      config.Config
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	settings Settings
	theme    Theme

	screen   screen
	menu     MenuModel
	game     GameModel
	results  ResultsModel
	quitting bool
}

// NewSessionModel creates a session that opens on the setup menu.
// store and logger may be nil.
func NewSessionModel(cfg config.Config, store *storage.Store, logger *log.Logger, rt core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	settings := SettingsFromConfig(&cfg)
	theme := NewTheme(cfg.UI.Colors)

	return SessionModel{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		runtime:  rt,
		settings: settings,
		theme:    theme,
		menu:     NewMenuModel(settings, theme, rt),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Started():
		m.settings = m.menu.Settings()
		m.game = NewGameModel(m.cfg, m.settings, m.store, m.logger, m.runtime)
		m.screen = screenGame
		return m, m.game.Init()

	case m.menu.WantsResults():
		m.settings = m.menu.Settings()
		m.results = NewResultsModel(m.store, m.theme, m.runtime.ScreenW, m.runtime.ScreenH)
		m.screen = screenResults
		return m, m.results.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		// Keep whatever the player switched to in-game.
		m.settings = m.game.Settings()
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.results.Update(msg)
	if resultsModel, ok := newModel.(ResultsModel); ok {
		m.results = resultsModel
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.results.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.menu = NewMenuModel(m.settings, m.theme, m.runtime)
	m.screen = screenMenu
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.Config, store *storage.Store, logger *log.Logger, rt core.RuntimeConfig) error {
	model := NewSessionModel(cfg, store, logger, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
