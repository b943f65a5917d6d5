// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// reservedWidth is taken by the box border, padding and margin.
const reservedWidth int = 6

var (
	boxStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).Margin(0, 1)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
)

// Render draws the open popup over background, which it dims. An inactive
// popup returns background unchanged.
func (m *Model) Render(background string) string {
	if !m.Active() {
		return background
	}
	width, _ := lipgloss.Size(background)
	box := boxStyle.Render(m.View(width - reservedWidth))
	return Overlay(dimStyle.Render(ansi.Strip(background)), box)
}

// Overlay centers fg over bg. fg is cut to the size of bg.
func Overlay(bg, fg string) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	// limit fg dimensions to bg
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, fgHeight := lipgloss.Size(fg)

	offsetLeft := (bgWidth - fgWidth) / 2
	offsetTop := (bgHeight - fgHeight) / 2

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, fgLine := range fgLines {
		line := bgLines[i+offsetTop]
		left := ansi.Truncate(line, offsetLeft, "")
		// short background lines are padded so fg lands on its column
		if pad := offsetLeft - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, offsetLeft+fgWidth, "")
		bgLines[i+offsetTop] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}
