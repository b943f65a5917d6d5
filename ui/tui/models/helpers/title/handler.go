// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal window title in sync with the
// selected environment.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

// Title is the full window title.
func (t TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

// Handle applies a title message and returns the command that sets the new
// title, or nil when msg changes nothing.
func (t *TitleHandler) Handle(msg tea.Msg) tea.Cmd {
	if title, ok := msg.(titleMsg); ok {
		return t.SetCurrent(string(title))
	}
	return nil
}

// SetCurrent sets the suffix shown after Base.
func (t *TitleHandler) SetCurrent(current string) tea.Cmd {
	if t.current == current {
		return nil
	}
	t.current = current
	return tea.SetWindowTitle(t.Title())
}
