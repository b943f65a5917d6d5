// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
)

var (
	frameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

type Model struct{}

func New() *Model {
	return &Model{}
}

func (m *Model) Focusable() bool              { return false }
func (m *Model) Constraint() stack.SizeConfig { return stack.Max(1) }

func (m *Model) Update(action.Action, *app.Context) action.Action {
	return nil
}

func (m *Model) View(width, _ int, ctx *app.Context) string {
	version := "dev"
	if ctx != nil && ctx.Version != "" {
		version = ctx.Version
	}
	return lipgloss.PlaceHorizontal(
		width,
		lipgloss.Right,
		frameStyle.Render("[ "+i18n.T("pane.header.title")+" · ")+
			versionStyle.Render(version+" ")+
			frameStyle.Render("]"),
	)
}

// *Model implements pane.Pane
var _ pane.Pane = (*Model)(nil)
