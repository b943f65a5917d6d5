// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package search is the pane holding the query that filters the
// environment list.
package search

import (
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
)

const cursor = "▌"

type Model struct {
	input   []rune
	focused bool
}

func New() *Model {
	return &Model{}
}

func (m *Model) Focusable() bool              { return true }
func (m *Model) Constraint() stack.SizeConfig { return stack.Max(3) }

// TakesText reports insert mode, which lasts while the pane is focused.
func (m *Model) TakesText() bool { return m.focused }

func (m *Model) Update(a action.Action, ctx *app.Context) action.Action {
	switch a := a.(type) {
	case action.Focus:
		m.focused = true
	case action.UnFocus:
		m.focused = false
	case action.Input:
		m.input = append(m.input, a.Rune)
		m.publish(ctx)
	case action.Backspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		m.publish(ctx)
	case action.Cancel:
		m.input = nil
		m.publish(ctx)
	}
	return nil
}

func (m *Model) publish(ctx *app.Context) {
	if ctx != nil {
		ctx.Query = string(m.input)
	}
}

// Query returns the current buffer.
func (m *Model) Query() string { return string(m.input) }

func (m *Model) View(width, height int, _ *app.Context) string {
	var body string
	switch {
	case len(m.input) > 0:
		body = string(m.input)
	case !m.focused:
		body = pane.MutedStyle.Italic(true).Render(i18n.T("pane.search.placeholder"))
	}
	if m.focused {
		body += cursor
	}
	// three rows leave no room for a title line
	if height <= 3 {
		return pane.Frame("", m.focused, width, height, body)
	}
	return pane.Frame(i18n.T("pane.search.title"), m.focused, width, height, body)
}

// *Model implements pane.Pane
var (
	_ pane.Pane   = (*Model)(nil)
	_ pane.Texter = (*Model)(nil)
)
