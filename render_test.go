package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsEveryButton(t *testing.T) {
	m := testModel()
	m.width = 80
	m.height = 30
	view := ansi.Strip(m.View())

	for _, row := range buttonRows() {
		for _, b := range row {
			if !strings.Contains(view, b.label) {
				t.Fatalf("view missing button %q", b.label)
			}
		}
	}
	if !strings.Contains(view, appName) {
		t.Fatalf("view missing app name")
	}
	if !strings.Contains(view, "0") {
		t.Fatalf("view missing initial display value")
	}
}

func TestRenderDisplayGeometry(t *testing.T) {
	m := testModel()
	display := m.renderDisplay()
	if lipgloss.Width(display) != gridWidth {
		t.Fatalf("display width = %d, want %d", lipgloss.Width(display), gridWidth)
	}
	if lipgloss.Height(display) != 3 {
		t.Fatalf("display height = %d, want 3", lipgloss.Height(display))
	}

	// Entry is right-aligned inside the box.
	m.calc.display = "42"
	lines := splitLines(ansi.Strip(m.renderDisplay()))
	content := lines[1]
	if !strings.HasSuffix(strings.TrimRight(content, "│ "), "42") {
		t.Fatalf("display content not right-aligned: %q", content)
	}
	if strings.Index(content, "42") < len(content)/2 {
		t.Fatalf("display content sits on the left: %q", content)
	}
}

func TestRenderGridGeometryMatchesHitTest(t *testing.T) {
	m := testModel()
	grid := m.renderGrid()
	if lipgloss.Height(grid) != 5*cellHeight {
		t.Fatalf("grid height = %d, want %d", lipgloss.Height(grid), 5*cellHeight)
	}
	if lipgloss.Width(grid) != gridWidth {
		t.Fatalf("grid width = %d, want %d", lipgloss.Width(grid), gridWidth)
	}
}

func TestRenderStatusShowsPendingOperation(t *testing.T) {
	m := testModel()
	m.calc = pressKey(pressKey(m.calc, "7"), "+")
	status := ansi.Strip(m.renderStatus())
	if !strings.Contains(status, "7 +") {
		t.Fatalf("status missing pending operation: %q", status)
	}
}

func TestRenderDisplayError(t *testing.T) {
	m := testModel()
	m.calc = pressKey(m.calc, "1/x")
	view := ansi.Strip(m.renderDisplay())
	if !strings.Contains(view, displayError) {
		t.Fatalf("display missing error text: %q", view)
	}
}

func TestButtonFaceClasses(t *testing.T) {
	if buttonFace("AC") != colorError {
		t.Fatalf("AC face = %v", buttonFace("AC"))
	}
	if buttonFace("+") != colorPeach || buttonFace("^") != colorPeach {
		t.Fatalf("operator face wrong")
	}
	if buttonFace("7") != colorText {
		t.Fatalf("digit face = %v", buttonFace("7"))
	}
}
