package main

import "fmt"

// runValidation executes a non-TUI check: scripted press sequences through
// the dispatcher, compared against the displays they must produce.
func runValidation() error {
	checks := []struct {
		name    string
		presses []string
		want    string
	}{
		{name: "addition", presses: []string{"7", "+", "3", "="}, want: "10.0"},
		{name: "subtraction", presses: []string{"7", "-", "3", "="}, want: "4.0"},
		{name: "power", presses: []string{"2", "^", "3", "="}, want: "8.0"},
		{name: "sqrt", presses: []string{"4", "√"}, want: "2.0"},
		{name: "reciprocal", presses: []string{"2", "1/x"}, want: "0.5"},
		{name: "reciprocal of zero", presses: []string{"0", "1/x"}, want: displayError},
		{name: "clear", presses: []string{"9", "9", "AC"}, want: "0"},
	}

	for _, check := range checks {
		s := initialState()
		for _, label := range check.presses {
			s = pressKey(s, label)
		}
		if s.display != check.want {
			return fmt.Errorf("%s: display = %q, want %q", check.name, s.display, check.want)
		}
	}
	return nil
}
