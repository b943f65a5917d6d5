// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package home

import (
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
)

func (m *Model) View() string {
	if m.size.Empty() {
		return ""
	}
	width, height := m.size.Width, m.size.Height

	mode := m.Mode()
	m.footer.SetKeyMap(m.keys.Help(mode), mode == action.Normal)

	var body stack.Stack
	if m.fullscreen {
		body = stack.New(stack.Vertical,
			stack.WithItem(stack.Fill(1), m.render(m.registry.FocusedPane())),
			stack.WithItem(m.footer.Constraint(width), m.footer.View),
		)
	} else {
		body = m.layout(width)
	}

	return m.popup.Render(body.View(width, height))
}

// layout stacks the header, a two column band and the status row. The left
// column holds search over the environment list, the right one details
// aligned with the list.
func (m *Model) layout(width int) stack.Stack {
	envs := m.registry.Pane(PaneEnvs)
	status := m.registry.Pane(PaneStatus)
	details := m.registry.Pane(PaneDetails)
	search := m.registry.Pane(PaneSearch)
	header := m.registry.Pane(PaneHeader)

	row := func(left, right func(int, int) string) func(int, int) string {
		return stack.New(stack.Horizontal,
			stack.WithItem(stack.Fill(1), left),
			stack.WithItem(stack.Fill(1), right),
		).View
	}
	blank := func(int, int) string { return "" }

	return stack.New(stack.Vertical,
		stack.WithItem(header.Constraint(), m.render(header)),
		stack.WithItem(search.Constraint(), row(m.render(search), blank)),
		stack.WithItem(envs.Constraint(), row(m.render(envs), m.render(details))),
		stack.WithItem(status.Constraint(), m.render(status)),
		stack.WithItem(m.footer.Constraint(width), m.footer.View),
	)
}

func (m *Model) render(p pane.Pane) func(int, int) string {
	return func(width, height int) string {
		return p.View(width, height, m.ctx)
	}
}
