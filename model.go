package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tallypad/internal/config"
)

const appName = "Tallypad"

// model is the bubbletea model for the single calculator screen. Calculator
// state lives in calc and only changes through pressKey; the rest is
// presentation (grid cursor, terminal size, theme).
type model struct {
	calc   calcState
	keys   keyMap
	accent lipgloss.Color

	cursorRow int
	cursorCol int
	width     int
	height    int
}

func newModel(cfg config.Config) model {
	return model{
		calc:   initialState(),
		keys:   newKeyMap(),
		accent: accentByName(cfg.UI.Accent),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateMain(msg)
	}
	return m, nil
}

// press runs one button activation through the dispatcher.
func (m model) press(label string) model {
	m.calc = pressKey(m.calc, label)
	return m
}

// focusedLabel returns the label under the grid cursor.
func (m model) focusedLabel() string {
	rows := buttonRows()
	if m.cursorRow < 0 || m.cursorRow >= len(rows) {
		return ""
	}
	row := rows[m.cursorRow]
	if m.cursorCol < 0 || m.cursorCol >= len(row) {
		return ""
	}
	return row[m.cursorCol].label
}

// moveCursor shifts the grid cursor, clamping the column to the target
// row's length (the bottom row is shorter than the rest).
func (m model) moveCursor(dRow, dCol int) model {
	rows := buttonRows()
	row := m.cursorRow + dRow
	if row < 0 {
		row = 0
	}
	if row > len(rows)-1 {
		row = len(rows) - 1
	}
	col := m.cursorCol + dCol
	if col < 0 {
		col = 0
	}
	if col > len(rows[row])-1 {
		col = len(rows[row]) - 1
	}
	m.cursorRow = row
	m.cursorCol = col
	return m
}
