package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mshamp4/ConnectFourRemote/internal/core"
	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
)

// Menu rows.
const (
	menuOpponent = iota
	menuColor
	menuStart
	menuResults
	menuQuit
	menuRows
)

// MenuModel is the Bubble Tea model for the setup menu.
type MenuModel struct {
	settings    Settings
	cursor      int
	width       int
	height      int
	theme       Theme
	keyMapper   *KeyMapper
	quitting    bool
	started     bool
	openResults bool
}

// NewMenuModel creates a new menu model preset to settings.
func NewMenuModel(settings Settings, theme Theme, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		settings:  settings,
		cursor:    menuStart,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		theme:     theme,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuRows-1 {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		m.toggle()

	case MenuActionSelect:
		switch m.cursor {
		case menuOpponent, menuColor:
			m.toggle()
		case menuStart:
			m.started = true
		case menuResults:
			m.openResults = true
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// toggle flips the option under the cursor.
func (m *MenuModel) toggle() {
	switch m.cursor {
	case menuOpponent:
		m.settings.VersusComputer = !m.settings.VersusComputer
	case menuColor:
		m.settings.StartingPlayer = m.settings.StartingPlayer.Next()
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	opponent := "Human"
	if m.settings.VersusComputer {
		opponent = "Computer"
	}
	start := m.settings.StartingPlayer

	rows := [menuRows]string{
		fmt.Sprintf("Opponent:      < %s >", opponent),
		fmt.Sprintf("First to move: < %s >", m.theme.PlayerStyle(start).Render(start.Color())),
		"Start game",
		"Results",
		"Quit",
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("C O N N E C T   F O U R"), m.width))
	b.WriteString("\n\n")

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.settings.VersusComputer {
		note := fmt.Sprintf("The computer plays %s.", connectfour.AIPlayer.Color())
		b.WriteString(centerText(m.theme.Muted.Render(note), m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(m.theme.Muted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Settings returns the chosen settings.
func (m MenuModel) Settings() Settings {
	return m.settings
}

// Started returns true once the user picked Start game.
func (m MenuModel) Started() bool {
	return m.started
}

// WantsResults returns true if user picked Results.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
