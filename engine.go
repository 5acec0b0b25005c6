package main

import (
	"math"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Calculator engine: immutable state + pure reducer
// ---------------------------------------------------------------------------
//
// calcState is the whole calculator. Button presses go through pressKey
// (dispatch.go), which returns a new state; nothing in the UI layer mutates
// these fields directly. The same reducer drives the TUI, the -validate
// harness and the tests.

// calcState holds the four values that define the calculator at any moment.
type calcState struct {
	display  string // current entry, or last result; "0" or "Error" are valid
	stored   string // left operand captured when an operator was pressed
	op       string // pending binary operator label, "" when none
	startNew bool   // next digit/decimal starts a fresh entry
}

func initialState() calcState {
	return calcState{display: "0", startNew: true}
}

// pendingText returns the human-readable pending operation ("12 +"), or ""
// when no operator has been pressed yet. Read by the status line.
func (s calcState) pendingText() string {
	if s.op == "" {
		return ""
	}
	return s.stored + " " + s.op
}

// ---------------------------------------------------------------------------
// Per-label handlers
// ---------------------------------------------------------------------------

func pressDigit(s calcState, label string) calcState {
	if s.startNew || s.display == "0" {
		s.display = label
	} else {
		s.display += label
	}
	s.startNew = false
	return s
}

// pressOperator captures the left operand and the operator. Pressing two
// operators in a row just overwrites both; nothing is evaluated until "=".
func pressOperator(s calcState, label string) calcState {
	s.op = label
	s.stored = s.display
	s.startNew = true
	return s
}

// pressClear resets only the entry. The pending operator and stored operand
// survive an AC press.
func pressClear(s calcState, _ string) calcState {
	s.display = "0"
	s.startNew = true
	return s
}

func pressDecimal(s calcState, _ string) calcState {
	work := s.display
	if s.startNew {
		work = ""
	}
	if !strings.Contains(work, ".") {
		work += "."
	}
	s.display = work
	s.startNew = false
	return s
}

// pressSqrt takes the square root of the current entry. Negative input goes
// through math.Sqrt unguarded and displays as NaN.
func pressSqrt(s calcState, _ string) calcState {
	v, err := parseOperand(s.display)
	if err != nil {
		return s
	}
	s.display = formatValue(math.Sqrt(v))
	s.startNew = true
	return s
}

func pressReciprocal(s calcState, _ string) calcState {
	v, err := parseOperand(s.display)
	if err != nil {
		return s
	}
	if v == 0 {
		s.display = displayError
	} else {
		s.display = formatValue(1 / v)
	}
	s.startNew = true
	return s
}

// pressPi replaces the entry with π. The new-entry flag is left alone, so a
// digit typed right after π extends the π digits when the flag was clear.
func pressPi(s calcState, _ string) calcState {
	s.display = formatValue(math.Pi)
	return s
}

// pressEquals applies the pending operator to (stored, display). Either
// operand failing to parse is a silent no-op. An empty or unknown operator
// yields the right-hand operand unchanged.
func pressEquals(s calcState, _ string) calcState {
	a, err := parseOperand(s.stored)
	if err != nil {
		return s
	}
	b, err := parseOperand(s.display)
	if err != nil {
		return s
	}

	var result float64
	switch s.op {
	case "*":
		result = a * b
	case "/":
		result = a / b
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "^":
		result = math.Pow(a, b)
	case "%":
		result = math.Mod(a, b)
	default:
		result = b
	}
	s.display = formatValue(result)
	s.startNew = true
	return s
}

// ---------------------------------------------------------------------------
// Parsing and formatting
// ---------------------------------------------------------------------------

// displayError is the only user-visible error text the engine produces.
const displayError = "Error"

func parseOperand(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// formatValue renders a float64 result for the display: shortest round-trip
// form, with ".0" appended to integral finite values so results read as
// doubles (10.0, 0.5). Very large/small magnitudes come out in exponent
// form; NaN and ±Inf render as text.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
