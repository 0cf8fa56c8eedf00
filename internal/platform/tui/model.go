package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/guessgrid/internal/core"
	"github.com/vovakirdan/guessgrid/internal/game"
)

// GameModel is the Bubble Tea model for the board. It owns no game state
// of its own; every change goes through the session.
type GameModel struct {
	session    *game.Session
	state      game.State
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       BoardKeyMap
	help       help.Model
	cursor     int
	quitting   bool
	backToMenu bool
}

// NewGameModel starts a round at difficulty d on an opened session.
func NewGameModel(session *game.Session, d game.Difficulty, cfg core.RuntimeConfig) GameModel {
	state, err := session.Start(d)
	if err != nil {
		state, _ = session.Start(game.Easy)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		session: session,
		state:   state,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultBoardKeyMap(),
		help:    h,
		cursor:  game.MinSquare,
	}
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, 0, -1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 0, 1)

	case key.Matches(msg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, -1, 0)

	case key.Matches(msg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, 1, 0)

	case key.Matches(msg, m.keys.Select):
		m.state = m.session.Dispatch(game.SelectSquare{Square: m.cursor})

	case key.Matches(msg, m.keys.Guess):
		// Enter on an unselected cursor square selects it first.
		if m.state.SelectedSquare != m.cursor && !m.state.Finished() {
			m.session.Dispatch(game.SelectSquare{Square: m.cursor})
		}
		m.state = m.session.Dispatch(game.SubmitGuess{})

	case key.Matches(msg, m.keys.Hint):
		m.state = m.session.Dispatch(game.RequestHint{})

	case key.Matches(msg, m.keys.NewRound):
		m.state = m.session.Dispatch(game.StartRound{Difficulty: m.state.Difficulty})

	case key.Matches(msg, m.keys.Difficulty):
		if d, ok := difficultyForKey(msg); ok {
			m.state = m.session.Dispatch(game.StartRound{Difficulty: d})
		}
	}

	return m, nil
}

// moveCursor steps the cursor square by (dx, dy) cells, stopping at the
// board edges.
func moveCursor(sq, dx, dy int) int {
	row := core.Clamp((sq-1)/10+dy, 0, 9)
	col := core.Clamp((sq-1)%10+dx, 0, 9)
	return row*10 + col + 1
}

// handleMouse selects the clicked square.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if sq, ok := game.SquareAt(m.config.ScreenW, msg.X, msg.Y); ok {
		m.cursor = sq
		m.state = m.session.Dispatch(game.SelectSquare{Square: sq})
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	boardH := max(m.config.ScreenH-lipgloss.Height(helpView)-1, 0)
	m.screen.Resize(m.config.ScreenW, boardH)

	game.Render(m.screen, m.state, m.cursor)
	return RenderScreen(m.screen) + "\n\n" + helpView
}

// State returns the last state the session reported.
func (m GameModel) State() game.State {
	return m.state
}

// Cursor returns the square under the keyboard cursor.
func (m GameModel) Cursor() int {
	return m.cursor
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
