// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/keyhelp"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
	"github.com/lazyprop/lazyprop/ui/tui/util"
)

type Model struct {
	baseKeyMap help.KeyMap
	help       *keyhelp.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

// SetKeyMap shows keyMap, followed by the base bindings when withBase is set.
func (m *Model) SetKeyMap(keyMap help.KeyMap, withBase bool) {
	if withBase {
		keyMap = util.MergeKeyMaps(keyMap, m.baseKeyMap)
	}
	m.help.KeyMap = keyMap
}

// Constraint reserves the hint rows plus the top border.
func (m *Model) Constraint(width int) stack.SizeConfig {
	return stack.Max(m.help.Height(width) + 1)
}

func (m *Model) View(width, height int) string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			width, max(height-1, 0),
			h_pos, lipgloss.Top,
			m.help.View(width),
		))
}

func (m *Model) Expanded() bool { return m.help.Expanded }

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
