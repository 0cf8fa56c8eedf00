// Package tui provides the Bubble Tea integration for guessgrid.
// It handles the terminal UI loop, input mapping, and screen flow.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guessgrid/internal/core"
	"github.com/vovakirdan/guessgrid/internal/game"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	// Session must already be opened; the caller closes it after the
	// program exits.
	Session *game.Session

	// History backs the history screen. May be nil.
	History HistorySource

	// Player names whose history is shown.
	Player string

	Config core.RuntimeConfig

	// Difficulty is where the menu cursor starts.
	Difficulty game.Difficulty

	// SkipMenu starts a round at Difficulty straight away.
	SkipMenu bool
}

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenHistory
)

// SessionModel manages the full flow for one player: menu -> board -> menu,
// with the history screen reachable from the menu.
type SessionModel struct {
	opts      SessionOptions
	config    core.RuntimeConfig
	active    screenKind
	menu      MenuModel
	gameModel *GameModel
	history   *HistoryModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Difficulty == "" {
		opts.Difficulty = game.Easy
	}

	m := SessionModel{
		opts:   opts,
		config: opts.Config,
	}
	m.menu = m.newMenu()

	if opts.SkipMenu {
		gm := NewGameModel(opts.Session, opts.Difficulty, m.config)
		m.gameModel = &gm
		m.active = screenGame
	}

	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.config, m.opts.Session.State().Winstreak, m.opts.Difficulty)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		h := NewHistoryModel(m.opts.History, m.opts.Player, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		m.active = screenHistory
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		m.opts.Difficulty = selected.Difficulty
		gm := NewGameModel(m.opts.Session, selected.Difficulty, m.config)
		m.gameModel = &gm
		m.active = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when on the board.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.opts.Difficulty = m.gameModel.State().Difficulty
		m.gameModel = nil
		m.menu = m.newMenu()
		m.active = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates on the history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if h, ok := newModel.(HistoryModel); ok {
		m.history = &h
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.history = nil
		m.menu = m.newMenu()
		m.active = screenMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.gameModel.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// IsQuitting returns true once the player has quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local player.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
