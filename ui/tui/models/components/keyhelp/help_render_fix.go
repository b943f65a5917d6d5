// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders key hints with bubbles/help styles.
package keyhelp

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders enabled bindings on one line. help.Model.ShortHelpView
// drops the ellipsis when the last item overflows, this version does not.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	var items []string
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, items)...)
}

// FullHelpView renders one column per group, skipping groups without an
// enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	var cols []string
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}

		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps the leading parts that fit m.Width and ends with an ellipsis
// when something had to be dropped.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var used int
	var out []string
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+partLen <= m.Width) || (!last && used+partLen+tailLen <= m.Width) {
			used += partLen
			out = append(out, part)
			continue
		}
		if used+tailLen <= m.Width {
			out = append(out, tail)
		}
		break
	}
	return out
}
