// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package pane

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
)

var (
	ColorFocus = lipgloss.AdaptiveColor{Light: "#0B7A75", Dark: "#5FD7AF"}
	ColorBlur  = lipgloss.AdaptiveColor{Light: "#A0A0A0", Dark: "#5C5C5C"}
	ColorError = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF5F5F"}
	ColorMuted = lipgloss.AdaptiveColor{Light: "#7A7A7A", Dark: "#8A8A8A"}

	TitleStyle    = lipgloss.NewStyle().Bold(true)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError)
)

// Frame draws body inside a rounded border of exactly width x height with
// title on the first content line. Regions smaller than the border get the
// bare body.
func Frame(title string, focused bool, width, height int, body string) string {
	if width < 3 || height < 3 {
		return stack.Region(max(width, 0), max(height, 0)).Render(body)
	}
	color := ColorBlur
	if focused {
		color = ColorFocus
	}
	innerW, innerH := width-2, height-2

	content := body
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Foreground(color).Render(title),
			body,
		)
	}

	return lipgloss.
		NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(stack.Region(innerW, innerH).Render(content))
}
