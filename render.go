package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerSubStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle)

	// Display box
	displayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1).
			Width(gridWidth - 2).
			Align(lipgloss.Right)

	displayTextStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	displayErrStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	// Keypad cells
	buttonBaseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Width(cellContentWidth).
			Align(lipgloss.Center)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Help key styling
	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
)

// buttonFace returns the label color for a keypad button.
func buttonFace(label string) lipgloss.Color {
	switch label {
	case "AC":
		return colorError
	case "=":
		return colorGreen
	case "+", "-", "*", "/", "%", "^":
		return colorPeach
	case "√", "1/x", "π":
		return colorTeal
	}
	return colorText
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	pad := m.gridLeft()
	header := renderHeader(m.width)
	display := indentBlock(m.renderDisplay(), pad)
	grid := indentBlock(m.renderGrid(), pad)

	// Line budget above the grid must match gridTop (layout.go): header,
	// blank, display box, blank.
	body := header + "\n\n" + display + "\n\n" + grid

	statusLine := m.renderStatus()
	footer := m.renderFooter(m.keys.ShortHelp())
	return m.placeWithFooter(body, statusLine, footer)
}

func renderHeader(width int) string {
	content := headerAppStyle.Render(appName) + headerSubStyle.Render("  terminal keypad")
	if width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(width).Render(content)
}

func (m model) renderDisplay() string {
	text := displayTextStyle.Render(m.calc.display)
	if m.calc.display == displayError {
		text = displayErrStyle.Render(m.calc.display)
	}
	return displayBoxStyle.Render(text)
}

func (m model) renderGrid() string {
	var rows []string
	for r, row := range buttonRows() {
		cells := make([]string, 0, len(row))
		for c, b := range row {
			cells = append(cells, m.renderButton(b.label, r == m.cursorRow && c == m.cursorCol))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m model) renderButton(label string, focused bool) string {
	style := buttonBaseStyle.Foreground(buttonFace(label))
	if focused {
		style = style.BorderForeground(m.accent).Bold(true)
	}
	return style.Render(label)
}

// renderStatus shows the pending operation while one is captured, or the
// standing hint otherwise.
func (m model) renderStatus() string {
	text := "Ready. Type keys directly or navigate and press enter."
	if pending := m.calc.pendingText(); pending != "" {
		text = "pending  " + pending
	}
	if m.width == 0 {
		return statusBarStyle.Render(text)
	}
	return statusBarStyle.Width(m.width).Render(text)
}

func (m model) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}
