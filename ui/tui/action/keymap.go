// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package action

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/lazyprop/lazyprop/internal/i18n"
)

// NormalKeyMap holds the bindings active while no popup is open and no text
// pane is focused.
type NormalKeyMap struct {
	Add        key.Binding
	Edit       key.Binding
	Remove     key.Binding
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Focus      key.Binding
	Save       key.Binding
	Copy       key.Binding
	Fullscreen key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (km NormalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Add, km.Edit, km.Remove, km.Confirm, km.Save}
}

func (km NormalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Focus},
		{km.Add, km.Edit, km.Remove},
		{km.Confirm, km.Copy, km.Save},
		{km.Fullscreen},
	}
}

// Base returns the bindings the footer appends to every normal mode hint.
func (km NormalKeyMap) Base() BaseKeyMap {
	return BaseKeyMap{Help: km.Help, Quit: km.Quit}
}

type BaseKeyMap struct {
	Help key.Binding
	Quit key.Binding
}

func (km BaseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Help, km.Quit}
}

func (km BaseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Help, km.Quit}}
}

// TextKeyMap holds the bindings of a focused text input pane.
type TextKeyMap struct {
	Submit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Focus     key.Binding
	Quit      key.Binding
}

func (km TextKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Focus, km.Submit, km.Cancel}
}

func (km TextKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Focus, km.Submit, km.Cancel}, {km.Backspace, km.Quit}}
}

// PopupKeyMap holds the bindings of an open popup.
type PopupKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

func (km PopupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Up, km.Toggle, km.Submit, km.Cancel}
}

func (km PopupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Prev}, {km.Up, km.Down, km.Toggle}, {km.Submit, km.Cancel, km.Backspace}}
}

// *KeyMap implements help.KeyMap
var (
	_ help.KeyMap = (*NormalKeyMap)(nil)
	_ help.KeyMap = (*BaseKeyMap)(nil)
	_ help.KeyMap = (*TextKeyMap)(nil)
	_ help.KeyMap = (*PopupKeyMap)(nil)
)

// KeyMaps bundles the bindings of every input mode.
type KeyMaps struct {
	Normal NormalKeyMap
	Text   TextKeyMap
	Popup  PopupKeyMap
}

// NewKeyMaps builds the bindings with help texts in the current language.
// Call it after i18n.Init.
func NewKeyMaps() KeyMaps {
	return KeyMaps{
		Normal: NormalKeyMap{
			Add: key.NewBinding(
				key.WithKeys("a"),
				key.WithHelp("a", i18n.T("help.add")),
			),
			Edit: key.NewBinding(
				key.WithKeys("e"),
				key.WithHelp("e", i18n.T("help.edit")),
			),
			Remove: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", i18n.T("help.remove")),
			),
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", i18n.T("help.cycle")),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", i18n.T("help.cycle")),
			),
			Confirm: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.confirm")),
			),
			Focus: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", i18n.T("help.focus")),
			),
			Save: key.NewBinding(
				key.WithKeys("s"),
				key.WithHelp("s", i18n.T("help.save")),
			),
			Copy: key.NewBinding(
				key.WithKeys("y"),
				key.WithHelp("y", i18n.T("help.copy")),
			),
			Fullscreen: key.NewBinding(
				key.WithKeys("f"),
				key.WithHelp("f", i18n.T("help.fullscreen")),
			),
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", i18n.T("help.help")),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", i18n.T("help.quit")),
			),
		},
		Text: TextKeyMap{
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.submit")),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", i18n.T("help.cancel")),
			),
			Backspace: key.NewBinding(
				key.WithKeys("backspace"),
				key.WithHelp("⌫", i18n.T("help.change")),
			),
			Focus: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", i18n.T("help.focus")),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", i18n.T("help.quit")),
			),
		},
		Popup: PopupKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", i18n.T("help.next_field")),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab"),
				key.WithHelp("shift+tab", i18n.T("help.prev_field")),
			),
			Up: key.NewBinding(
				key.WithKeys("up"),
				key.WithHelp("↑/↓", i18n.T("help.change")),
			),
			Down: key.NewBinding(
				key.WithKeys("down"),
				key.WithHelp("↓", i18n.T("help.change")),
			),
			Toggle: key.NewBinding(
				key.WithKeys(" "),
				key.WithHelp("space", i18n.T("help.toggle")),
			),
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.submit")),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", i18n.T("help.cancel")),
			),
			Backspace: key.NewBinding(
				key.WithKeys("backspace"),
				key.WithHelp("⌫", i18n.T("help.change")),
			),
		},
	}
}

// Help returns the key map to show for the given mode.
func (k KeyMaps) Help(mode Mode) help.KeyMap {
	switch mode {
	case Text:
		return k.Text
	case Popup:
		return k.Popup
	default:
		return k.Normal
	}
}
