// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	KeyMap   help.KeyMap
	help     help.Model
	Expanded bool
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m *Model) View(width int) string {
	if m.KeyMap == nil {
		return ""
	}
	m.help.Width = width
	if !m.Expanded {
		return ShortHelpView(m.help, m.KeyMap.ShortHelp())
	}
	return FullHelpView(m.help, m.KeyMap.FullHelp())
}

// Height is the number of rows View needs at width.
func (m *Model) Height(width int) int {
	return lipgloss.Height(m.View(width))
}

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
