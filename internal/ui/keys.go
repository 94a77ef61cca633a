package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tada/internal/config"
)

type keyMap struct {
	Quit    key.Binding
	Add     key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Confirm key.Binding
	Save    key.Binding
	Cancel  key.Binding
	Focus   key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(keyLabel(k.Quit), "quit")),
		Add:     key.NewBinding(key.WithKeys(k.Add), key.WithHelp(keyLabel(k.Add), "add")),
		Up:      key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(keyLabel(k.Up)+"/↑", "up")),
		Down:    key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(keyLabel(k.Down)+"/↓", "down")),
		Toggle:  key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(keyLabel(k.Toggle), "toggle")),
		Delete:  key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(keyLabel(k.Delete), "delete")),
		Edit:    key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(keyLabel(k.Edit), "edit")),
		Confirm: key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(keyLabel(k.Confirm), "confirm")),
		Save:    key.NewBinding(key.WithKeys(k.Save), key.WithHelp(keyLabel(k.Save), "save")),
		Cancel:  key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(keyLabel(k.Cancel), "cancel")),
		Focus:   key.NewBinding(key.WithKeys(k.Focus), key.WithHelp(keyLabel(k.Focus), "switch focus")),
	}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// helpKeys adapts a fixed set of bindings to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) help(f focus) helpKeys {
	switch f {
	case focusInput, focusItem:
		return helpKeys{k.Confirm, k.Save, k.Cancel, k.Focus}
	default:
		return helpKeys{k.Up, k.Down, k.Add, k.Toggle, k.Edit, k.Delete, k.Focus, k.Quit}
	}
}
