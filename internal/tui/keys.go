package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	left  key.Binding
	right key.Binding
	tab   key.Binding
	esc   key.Binding
	quit  key.Binding
	copy  key.Binding
	info  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k")),
	down:  key.NewBinding(key.WithKeys("down", "j")),
	left:  key.NewBinding(key.WithKeys("left", "h")),
	right: key.NewBinding(key.WithKeys("right", "l", "enter")),
	tab:   key.NewBinding(key.WithKeys("tab", "shift+tab")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
	copy:  key.NewBinding(key.WithKeys("c")),
	info:  key.NewBinding(key.WithKeys("v")),
}
