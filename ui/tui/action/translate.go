// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package action

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyprop/lazyprop/util/slicest"
)

// Mode selects which bindings apply to a key event.
type Mode int

const (
	Normal Mode = iota
	Text
	Popup
)

// Translate maps a key event to an action using freshly built key maps.
func Translate(msg tea.KeyMsg, mode Mode) Action {
	return NewKeyMaps().Translate(msg, mode)
}

// Translate maps a key event to an action. Unrecognised events yield nil.
func (k KeyMaps) Translate(msg tea.KeyMsg, mode Mode) Action {
	switch mode {
	case Text:
		return k.translateText(msg)
	case Popup:
		return k.translatePopup(msg)
	default:
		return k.translateNormal(msg)
	}
}

// TranslateAll is Translate for events carrying several runes at once, such
// as pasted text. Each rune becomes its own Input action in text and popup
// modes.
func (k KeyMaps) TranslateAll(msg tea.KeyMsg, mode Mode) []Action {
	if mode != Normal && msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		return slicest.Map(msg.Runes, func(r rune) Action {
			if r == ' ' && mode == Popup {
				return Toggle{}
			}
			return Input{Rune: r}
		})
	}
	if a := k.Translate(msg, mode); a != nil {
		return []Action{a}
	}
	return nil
}

func (k KeyMaps) translateNormal(msg tea.KeyMsg) Action {
	km := k.Normal
	switch {
	case key.Matches(msg, km.Quit):
		return Quit{}
	case key.Matches(msg, km.Add):
		return Add{}
	case key.Matches(msg, km.Edit):
		return Edit{}
	case key.Matches(msg, km.Remove):
		return Remove{}
	case key.Matches(msg, km.Save):
		return Save{}
	case key.Matches(msg, km.Up):
		return Up{}
	case key.Matches(msg, km.Down):
		return Down{}
	case key.Matches(msg, km.Confirm):
		return Submit{}
	case key.Matches(msg, km.Focus):
		return Tab{}
	case key.Matches(msg, km.Copy):
		return Copy{}
	case key.Matches(msg, km.Fullscreen):
		return Fullscreen{}
	case key.Matches(msg, km.Help):
		return Help{}
	}
	return nil
}

func (k KeyMaps) translateText(msg tea.KeyMsg) Action {
	km := k.Text
	switch {
	case key.Matches(msg, km.Quit):
		return Quit{}
	case key.Matches(msg, km.Focus):
		return Tab{}
	case key.Matches(msg, km.Cancel):
		return Cancel{}
	case key.Matches(msg, km.Submit):
		return Submit{}
	case key.Matches(msg, km.Backspace):
		return Backspace{}
	}
	return runeInput(msg)
}

func (k KeyMaps) translatePopup(msg tea.KeyMsg) Action {
	km := k.Popup
	switch {
	case key.Matches(msg, km.Next):
		return Tab{}
	case key.Matches(msg, km.Prev):
		return BackTab{}
	case key.Matches(msg, km.Up):
		return Up{}
	case key.Matches(msg, km.Down):
		return Down{}
	case key.Matches(msg, km.Toggle):
		return Toggle{}
	case key.Matches(msg, km.Submit):
		return Submit{}
	case key.Matches(msg, km.Cancel):
		return Cancel{}
	case key.Matches(msg, km.Backspace):
		return Backspace{}
	}
	return runeInput(msg)
}

func runeInput(msg tea.KeyMsg) Action {
	switch msg.Type {
	case tea.KeySpace:
		return Input{Rune: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) > 0 && !msg.Alt {
			return Input{Rune: msg.Runes[0]}
		}
	}
	return nil
}
