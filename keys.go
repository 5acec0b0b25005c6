package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Navigate key.Binding
	Press    key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", "move")),
		Press:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Press, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Navigate, k.Press, k.Clear, k.Quit}}
}

// buttonForKey maps a raw key press straight to a keypad label, bypassing
// grid navigation. Digits and operators are themselves; the one-shot
// operations get mnemonic letters that don't collide with hjkl navigation.
func buttonForKey(raw string) (string, bool) {
	switch raw {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		".", "+", "-", "*", "/", "%", "^", "=":
		return raw, true
	case "c":
		return "AC", true
	case "s":
		return "√", true
	case "r":
		return "1/x", true
	case "p":
		return "π", true
	}
	return "", false
}
