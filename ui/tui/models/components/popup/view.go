// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/internal/env"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
	"github.com/lazyprop/lazyprop/util/slicest"
)

const (
	cursor   = "▌"
	minWidth = 36
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(pane.ColorMuted)
	focusStyle  = lipgloss.NewStyle().Foreground(pane.ColorFocus).Bold(true)
	buttonStyle = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder())
)

// View renders the form, at most width cells wide.
func (m *Model) View(width int) string {
	var title, body string
	switch m.kind {
	case AddEnvironment:
		title, body = i18n.T("popup.add.title"), m.environmentView()
	case EditEnvironment:
		title, body = i18n.T("popup.edit.title"), m.environmentView()
	case EncryptDecrypt:
		title, body = i18n.T("popup.transform.title", m.envName), m.transformView()
	default:
		return ""
	}
	return lipgloss.NewStyle().
		MaxWidth(max(width, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			pane.TitleStyle.Render(title),
			"",
			body,
		))
}

type row struct {
	field Field
	label string
	value string
}

func (m *Model) environmentView() string {
	rows := []row{
		{Name, i18n.T("field.name"), m.textValue(Name, m.name)},
		{Algorithm, i18n.T("field.algorithm"), choice(env.Algorithms[m.algorithm].String(), m.algorithm, len(env.Algorithms))},
		{Mode, i18n.T("field.mode"), choice(env.Modes[m.mode].String(), m.mode, len(env.Modes))},
		{IV, i18n.T("field.random_ivs"), checkbox(m.ivs)},
		{Key, i18n.T("field.key"), m.textValue(Key, m.key)},
	}
	labelWidth := slicest.Reduce(rows, func(r row, w int) int {
		return max(w, lipgloss.Width(r.label))
	})

	lines := make([]string, len(rows))
	for i, r := range rows {
		label := fmt.Sprintf("%-*s", labelWidth, r.label)
		if r.field == m.Field() {
			lines[i] = focusStyle.Render("> "+label) + "  " + r.value
		} else {
			lines[i] = "  " + labelStyle.Render(label) + "  " + r.value
		}
	}
	return lipgloss.NewStyle().Width(minWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) transformView() string {
	label := i18n.T("field.text")
	if m.Field() == TextInput {
		label = focusStyle.Render("> " + label)
	} else {
		label = "  " + labelStyle.Render(label)
	}
	input := label + "  " + m.textValue(TextInput, m.text)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.button(EncryptButton, i18n.T("popup.button.encrypt")),
		" ",
		m.button(DecryptButton, i18n.T("popup.button.decrypt")),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(minWidth).Render(input),
		"",
		buttons,
	)
}

func (m *Model) textValue(field Field, buf []rune) string {
	if field == m.Field() {
		return string(buf) + cursor
	}
	return string(buf)
}

func (m *Model) button(field Field, label string) string {
	style := buttonStyle.BorderForeground(pane.ColorBlur)
	if field == m.Field() {
		style = buttonStyle.BorderForeground(pane.ColorFocus).Bold(true)
	}
	return style.Render(label)
}

func choice(value string, i, n int) string {
	left, right := "‹", "›"
	if i == 0 {
		left = " "
	}
	if i == n-1 {
		right = " "
	}
	return left + " " + value + " " + right
}

func checkbox(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}
