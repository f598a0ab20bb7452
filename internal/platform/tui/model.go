package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mshamp4/ConnectFourRemote/internal/config"
	"github.com/mshamp4/ConnectFourRemote/internal/core"
	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour/advisor"
	"github.com/mshamp4/ConnectFourRemote/internal/storage"
)

// Settings chooses who plays a new game.
type Settings struct {
	StartingPlayer connectfour.Player
	VersusComputer bool
}

// SettingsFromConfig reads the game section of cfg.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		StartingPlayer: cfg.StartingPlayer(),
		VersusComputer: cfg.VersusComputer(),
	}
}

// GameModel is the Bubble Tea model for the board screen. Each model owns
// its game and advisor; nothing is shared between models except the store.
type GameModel struct {
	cfg      config.Config
	settings Settings
	runtime  core.RuntimeConfig
	store    *storage.Store
	logger   *log.Logger

	game    *connectfour.Game
	advisor *advisor.Advisor

	keyMapper *KeyMapper
	help      help.Model
	theme     Theme

	cursor     int
	message    string
	confirm    core.Action // reset awaiting a second press
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a board screen and starts the first game.
// store and logger may be nil.
func NewGameModel(cfg config.Config, settings Settings, store *storage.Store, logger *log.Logger, rt core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = rt.ScreenW

	m := GameModel{
		cfg:       cfg,
		settings:  settings,
		runtime:   rt,
		store:     store,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      h,
		theme:     NewTheme(cfg.UI.Colors),
	}
	m.reset()
	return m
}

// reset starts a new game with the current settings.
func (m *GameModel) reset() {
	start := m.settings.StartingPlayer
	if !start.Valid() {
		start = connectfour.PlayerOne
		m.settings.StartingPlayer = start
	}
	// start is valid so NewGame cannot fail
	g, _ := connectfour.NewGame(start, m.settings.VersusComputer)

	opts := m.cfg.AdvisorOptions()
	if m.runtime.Seed != 0 {
		opts.Seed = m.runtime.Seed
	}
	opts.Logger = m.logger.WithPrefix("advisor")

	m.game = g
	m.advisor = advisor.New(opts)
	m.cursor = connectfour.Center
	m.saved = false
	m.message = ""
	m.confirm = core.ActionNone
	m.logger.Info("new game", "game", g.ID(), "start", start.Color(), "computer", g.IsAIEnabled())
}

// aiDelay is the pause before the computer answers.
func (m GameModel) aiDelay() time.Duration {
	return time.Duration(m.cfg.UI.AIDelayMS) * time.Millisecond
}

// maybeAI schedules the computer's reply when it is its turn.
func (m GameModel) maybeAI() tea.Cmd {
	if !m.game.IsAITurn() {
		return nil
	}
	return aiMoveCmd(m.aiDelay(), m.game.ID())
}

// Init lets the computer open when it moves first.
func (m GameModel) Init() tea.Cmd {
	return m.maybeAI()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case AIMoveMsg:
		return m.handleAIMove(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	pending := m.confirm
	if pending != core.ActionNone {
		m.confirm = core.ActionNone
		m.message = ""
	}

	if col, ok := action.Column(); ok {
		m.cursor = col
		return m.drop(col)
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionRight:
		if m.cursor < connectfour.Cols-1 {
			m.cursor++
		}

	case core.ActionDrop:
		return m.drop(m.cursor)

	case core.ActionNewGame:
		m.reset()
		return m, m.maybeAI()

	case core.ActionSwitchColor:
		if pending != action && m.gameUnderway() {
			m.confirm = action
			m.message = "A new game will be created if players switch colors. Press c again to confirm."
			return m, nil
		}
		m.settings.StartingPlayer = m.settings.StartingPlayer.Next()
		m.reset()
		return m, m.maybeAI()

	case core.ActionToggleOpponent:
		if pending != action && m.gameUnderway() {
			m.confirm = action
			m.message = "Changing the opponent starts a new game. Press o again to confirm."
			return m, nil
		}
		m.settings.VersusComputer = !m.settings.VersusComputer
		m.reset()
		return m, m.maybeAI()
	}

	return m, nil
}

// gameUnderway reports whether a reset would throw away moves.
func (m GameModel) gameUnderway() bool {
	return m.game.MoveCount() > 0 && !m.game.Status().Terminal()
}

// drop plays the human's piece in col.
func (m GameModel) drop(col int) (tea.Model, tea.Cmd) {
	switch {
	case m.game.Status().Terminal():
		m.message = "Game over. Press n for a new game."
		return m, nil
	case m.game.IsAITurn():
		m.message = "Waiting for the computer..."
		return m, nil
	}

	player := m.game.CurrentPlayer()
	res, err := m.game.ApplyMove(col, player)
	if err != nil {
		if errors.Is(err, connectfour.ErrInvalidMove) {
			m.message = fmt.Sprintf("Column %d is full.", col+1)
		} else {
			m.message = err.Error()
		}
		return m, nil
	}

	m.message = ""
	m.afterMove(res)
	return m, m.maybeAI()
}

// handleAIMove lets the advisor play for the computer.
func (m GameModel) handleAIMove(msg AIMoveMsg) (tea.Model, tea.Cmd) {
	if msg.GameID != m.game.ID() || !m.game.IsAITurn() {
		return m, nil
	}

	board := m.game.Snapshot()
	move, ok := m.advisor.ChooseMove(&board, connectfour.AIPlayer)
	if !ok {
		// A full board is already a tie, so this means the engine and the
		// advisor disagree.
		m.logger.Error("advisor found no move", "game", m.game.ID(), "board", board.String())
		m.message = "The computer could not find a move."
		return m, nil
	}

	res, err := m.game.ApplyMove(move.Col, connectfour.AIPlayer)
	if err != nil {
		m.logger.Error("advisor move rejected", "game", m.game.ID(), "col", move.Col, "error", err)
		m.message = err.Error()
		return m, nil
	}
	m.cursor = move.Col
	m.afterMove(res)
	return m, nil
}

// afterMove records a finished game once.
func (m *GameModel) afterMove(res connectfour.MoveResult) {
	m.logger.Debug("move", "game", m.game.ID(), "player", res.Player.Color(), "row", res.Row, "col", res.Col, "status", res.Status)
	if !res.Status.Terminal() || m.saved {
		return
	}
	m.saved = true
	m.logger.Info("game over", "game", m.game.ID(), "status", res.Status, "winner", m.game.Winner().Color(), "moves", m.game.MoveCount())

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveGame(m.game); err != nil {
		m.logger.Warn("could not save result", "game", m.game.ID(), "error", err)
	}
}

// statusLine describes whose turn it is or how the game ended.
func (m GameModel) statusLine() string {
	switch m.game.Status() {
	case connectfour.StatusWon:
		w := m.game.Winner()
		name := w.Color()
		if m.game.IsAIEnabled() && w == connectfour.AIPlayer {
			name = "The computer (" + name + ")"
		}
		return m.theme.PlayerStyle(w).Render(name + " wins!")
	case connectfour.StatusTie:
		return "It's a tie."
	}

	p := m.game.CurrentPlayer()
	turn := p.Color() + " to move"
	if m.game.IsAITurn() {
		turn = "Computer (" + p.Color() + ") is thinking..."
	}
	return m.theme.PlayerStyle(p).Render(turn)
}

// View renders the board screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	view := BoardView{
		Board:  m.game.Snapshot(),
		Cursor: m.cursor,
		Turn:   m.game.CurrentPlayer(),
	}
	if m.game.Status().Terminal() {
		view.Cursor = -1
	}
	view.LastRow, view.LastCol, view.HasLast = m.game.LastMove()

	opponent := "vs human"
	if m.game.IsAIEnabled() {
		opponent = "vs computer"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("C O N N E C T   F O U R"), m.runtime.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Muted.Render(fmt.Sprintf("%s, %s moves first", opponent, m.game.StartingPlayer().Color())), m.runtime.ScreenW))
	b.WriteString("\n\n")

	for _, line := range strings.Split(RenderBoard(view, m.theme), "\n") {
		b.WriteString(centerText(line, m.runtime.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.statusLine(), m.runtime.ScreenW))
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(centerText(m.theme.Muted.Render(m.message), m.runtime.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(m.help.View(m.keyMapper.Game)))

	return b.String()
}

// Game returns the game currently on screen.
func (m GameModel) Game() *connectfour.Game {
	return m.game
}

// Settings returns the settings used for the next new game.
func (m GameModel) Settings() Settings {
	return m.settings
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
