// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package status is the pane that shows the last message or error.
package status

import (
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/internal/logging"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
)

type Model struct {
	message string
	isError bool
}

func New() *Model {
	return &Model{message: i18n.T("status.ready")}
}

func (m *Model) Focusable() bool              { return false }
func (m *Model) Constraint() stack.SizeConfig { return stack.Fill(1) }

func (m *Model) Update(a action.Action, _ *app.Context) action.Action {
	switch a := a.(type) {
	case action.Message:
		m.message, m.isError = a.Text, false
		logging.Debugf("status: %s", a.Text)
	case action.Error:
		m.message, m.isError = a.Text, true
		logging.Warnf("status: %s", a.Text)
	}
	return nil
}

func (m *Model) View(width, height int, _ *app.Context) string {
	body := m.message
	if m.isError {
		body = pane.ErrorStyle.Render(body)
	}
	return pane.Frame(i18n.T("pane.status.title"), false, width, height, body)
}

// Message reports the text shown and whether it is an error.
func (m *Model) Message() (string, bool) { return m.message, m.isError }

// *Model implements pane.Pane
var _ pane.Pane = (*Model)(nil)
