// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package envlist is the pane listing the environments that match the
// search query.
package envlist

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
	"github.com/lazyprop/lazyprop/ui/tui/util"
)

const marker = "▶ "

type Model struct {
	focused bool
}

func New() *Model {
	return &Model{}
}

func (m *Model) Focusable() bool              { return true }
func (m *Model) Constraint() stack.SizeConfig { return stack.Fill(2) }

func (m *Model) Update(a action.Action, ctx *app.Context) action.Action {
	switch a.(type) {
	case action.Focus:
		m.focused = true
	case action.UnFocus:
		m.focused = false
	case action.Up:
		m.step(ctx, -1)
	case action.Down:
		m.step(ctx, 1)
	}
	return nil
}

// step moves the current index to the previous or next visible entry,
// wrapping at both ends.
func (m *Model) step(ctx *app.Context, delta int) {
	visible := m.visible(ctx)
	if len(visible) == 0 {
		return
	}
	pos := slices.Index(visible, ctx.Store.Current())
	switch {
	case pos >= 0:
		pos = util.Wrap(pos, delta, len(visible))
	case delta > 0:
		pos = 0
	default:
		pos = len(visible) - 1
	}
	_ = ctx.Store.SetCurrent(visible[pos])
}

func (m *Model) visible(ctx *app.Context) []int {
	return Visible(ctx.Store.Names(), ctx.Query, ctx.FuzzySearch)
}

func (m *Model) View(width, height int, ctx *app.Context) string {
	names := ctx.Store.Names()
	visible := m.visible(ctx)
	current := ctx.Store.Current()

	// title and count line take two of the inner rows
	rows := max(height-4, 0)

	var body string
	switch {
	case len(names) == 0:
		body = pane.MutedStyle.Render(i18n.T("pane.envs.empty"))
	case len(visible) == 0:
		body = pane.MutedStyle.Render(i18n.T("pane.envs.no_match"))
	default:
		body = m.lines(names, visible, current, rows)
	}

	count := pane.MutedStyle.Render(i18n.T("pane.envs.count", min(current+1, len(names)), len(names)))
	inner := max(width-2, 0)
	return pane.Frame(
		i18n.T("pane.envs.title"), m.focused, width, height,
		lipgloss.JoinVertical(lipgloss.Left,
			stack.Region(inner, rows).Render(body),
			lipgloss.PlaceHorizontal(inner, lipgloss.Right, count),
		),
	)
}

// lines renders the visible names, scrolled so the current one is shown.
func (m *Model) lines(names []string, visible []int, current int, rows int) string {
	if rows == 0 {
		return ""
	}
	pos := max(slices.Index(visible, current), 0)
	offset := max(pos-rows+1, 0)
	end := min(offset+rows, len(visible))

	var b strings.Builder
	for n, i := range visible[offset:end] {
		if n > 0 {
			b.WriteByte('\n')
		}
		if i == current {
			b.WriteString(pane.SelectedStyle.Render(marker + names[i]))
		} else {
			b.WriteString(strings.Repeat(" ", lipgloss.Width(marker)) + names[i])
		}
	}
	return b.String()
}

// *Model implements pane.Pane
var _ pane.Pane = (*Model)(nil)
