package main

import tea "github.com/charmbracelet/bubbletea"

// updateMain routes a key press. Navigation moves the grid cursor; enter and
// space activate the focused button; anything bound in buttonForKey presses
// its button directly without moving the cursor.
func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		return m.moveCursor(-1, 0), nil
	case "down", "j":
		return m.moveCursor(1, 0), nil
	case "left", "h":
		return m.moveCursor(0, -1), nil
	case "right", "l":
		return m.moveCursor(0, 1), nil
	case "enter", " ":
		return m.press(m.focusedLabel()), nil
	}
	if label, ok := buttonForKey(msg.String()); ok {
		return m.press(label), nil
	}
	return m, nil
}

// updateMouse treats a left click on a button as a tap: move the cursor
// there and press it. Clicks outside the grid do nothing.
func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	row, col, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursorRow = row
	m.cursorCol = col
	return m.press(buttonRows()[row][col].label), nil
}
