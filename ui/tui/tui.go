// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/views/home"
)

// Run shows the home screen on the alternate screen until the user quits.
func Run(ctx *app.Context, opts ...home.NewOpt) error {
	_, err := tea.NewProgram(
		home.New(ctx, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx.Ctx),
	).Run()
	return err
}
