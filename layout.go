package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Grid geometry
// ---------------------------------------------------------------------------
//
// The view composes fixed-size blocks so that mouse hit-testing can be done
// arithmetically. Every button renders as a bordered cell of cellWidth x
// cellHeight; the display box spans the grid width. renderScreen (render.go)
// and hitTest below must agree on these numbers.

const (
	cellContentWidth = 7                    // button content width inside the border
	cellWidth        = cellContentWidth + 2 // rendered width including border
	cellHeight       = 3                    // content line + top/bottom border

	gridColumns = 5
	gridWidth   = gridColumns * cellWidth

	// Rows above the grid: header, blank, display box (3), blank.
	gridTop = 6
)

// gridLeft returns the left padding that centers the keypad block.
func (m model) gridLeft() int {
	pad := (m.width - gridWidth) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

// hitTest maps terminal coordinates to a keypad position. ok is false for
// anything outside a button cell, including the short bottom row's gap.
func (m model) hitTest(x, y int) (row, col int, ok bool) {
	relX := x - m.gridLeft()
	relY := y - gridTop
	if relX < 0 || relY < 0 {
		return 0, 0, false
	}
	row = relY / cellHeight
	col = relX / cellWidth
	rows := buttonRows()
	if row >= len(rows) || col >= len(rows[row]) {
		return 0, 0, false
	}
	return row, col, true
}

// indentBlock shifts every line of a block right by pad spaces.
func indentBlock(block string, pad int) string {
	if pad <= 0 {
		return block
	}
	indent := strings.Repeat(" ", pad)
	lines := splitLines(block)
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// placeWithFooter pins the status line and footer to the bottom of the
// terminal, padding the body to full width to prevent ghosting from
// previous frames.
func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
