package main

// ---------------------------------------------------------------------------
// Shared button table: single source of truth for the keypad
// ---------------------------------------------------------------------------
//
// Four consumers read this table:
//   - pressKey (below)        — routes a label to its handler
//   - renderGrid (render.go)  — draws the rows in declared order
//   - hitTest (layout.go)     — maps a mouse click back to a label
//   - buttonForKey (keys.go)  — direct key presses resolve against it
//
// Adding a button: add it to the right row here and give it a handler.
// Everything else stays in sync.

type buttonHandler func(calcState, string) calcState

type button struct {
	label  string
	handle buttonHandler
}

// buttonRows returns the keypad in display order. Row lengths differ; the
// last row has only two buttons.
func buttonRows() [][]button {
	return [][]button{
		{
			{label: "AC", handle: pressClear},
			{label: ".", handle: pressDecimal},
			{label: "%", handle: pressOperator},
			{label: "/", handle: pressOperator},
			{label: "√", handle: pressSqrt},
		},
		{
			{label: "7", handle: pressDigit},
			{label: "8", handle: pressDigit},
			{label: "9", handle: pressDigit},
			{label: "*", handle: pressOperator},
			{label: "^", handle: pressOperator},
		},
		{
			{label: "4", handle: pressDigit},
			{label: "5", handle: pressDigit},
			{label: "6", handle: pressDigit},
			{label: "+", handle: pressOperator},
			{label: "1/x", handle: pressReciprocal},
		},
		{
			{label: "1", handle: pressDigit},
			{label: "2", handle: pressDigit},
			{label: "3", handle: pressDigit},
			{label: "-", handle: pressOperator},
			{label: "π", handle: pressPi},
		},
		{
			{label: "0", handle: pressDigit},
			{label: "=", handle: pressEquals},
		},
	}
}

// buttonByLabel finds a button in the table, or ok=false for labels that
// are not on the keypad.
func buttonByLabel(label string) (button, bool) {
	for _, row := range buttonRows() {
		for _, b := range row {
			if b.label == label {
				return b, true
			}
		}
	}
	return button{}, false
}

// pressKey is the input dispatcher: it maps (label, state) to the next
// state. Labels outside the keypad leave the state unchanged.
func pressKey(s calcState, label string) calcState {
	b, ok := buttonByLabel(label)
	if !ok {
		return s
	}
	return b.handle(s, label)
}
