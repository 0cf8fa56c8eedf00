package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/guessgrid/internal/core"
	"github.com/vovakirdan/guessgrid/internal/game"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Difficulty game.Difficulty
	Title      string
	Detail     string
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	streak      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem
	openHistory bool
}

// NewMenuModel creates a new menu model with the cursor on initial.
func NewMenuModel(cfg core.RuntimeConfig, streak int, initial game.Difficulty) MenuModel {
	all := game.Difficulties()
	items := make([]MenuItem, 0, len(all))
	cursor := 0

	for i, d := range all {
		if d == initial {
			cursor = i
		}
		items = append(items, MenuItem{
			Difficulty: d,
			Title:      d.Title(),
			Detail:     describe(d),
		})
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		streak:    streak,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func describe(d game.Difficulty) string {
	a, err := game.Lookup(d)
	if err != nil {
		return ""
	}
	guesses := "guesses"
	if a.MaxGuesses == 1 {
		guesses = "guess"
	}
	if a.NumHints == 0 {
		return fmt.Sprintf("%d %s, no hints", a.MaxGuesses, guesses)
	}
	return fmt.Sprintf("%d %s, hints show %d squares", a.MaxGuesses, guesses, a.NumHints)
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if d, ok := difficultyForKey(msg); ok {
		for i, item := range m.items {
			if item.Difficulty == d {
				m.cursor = i
				selected := item
				m.selected = &selected
				return m, tea.Quit
			}
		}
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G U E S S G R I D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Find the hidden number between 1 and 100", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		line := fmt.Sprintf("%s%d. %-7s %s", cursor, i+1, item.Title, mutedStyle.Render(item.Detail))
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Win streak: %d", m.streak), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(mutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the round history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
