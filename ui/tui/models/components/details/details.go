// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package details is the pane describing the current environment.
package details

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/internal/env"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
	"github.com/lazyprop/lazyprop/util/slicest"
)

type Model struct{}

func New() *Model {
	return &Model{}
}

func (m *Model) Focusable() bool              { return false }
func (m *Model) Constraint() stack.SizeConfig { return stack.Fill(2) }

func (m *Model) Update(action.Action, *app.Context) action.Action {
	return nil
}

func (m *Model) View(width, height int, ctx *app.Context) string {
	e, err := ctx.Store.CurrentEnvironment()
	if err != nil {
		return pane.Frame(i18n.T("pane.details.title"), false, width, height,
			pane.MutedStyle.Render(i18n.T("pane.details.none")))
	}
	return pane.Frame(e.Name+" "+i18n.T("pane.details.title"), false, width, height, Fields(e))
}

// Fields renders e as aligned label/value rows with the key masked.
func Fields(e env.Environment) string {
	rows := [][2]string{
		{i18n.T("field.name"), e.Name},
		{i18n.T("field.algorithm"), e.Algorithm.String()},
		{i18n.T("field.mode"), e.Mode.String()},
		{i18n.T("field.random_ivs"), yesNo(e.UseRandomIVs)},
		{i18n.T("field.key"), Mask(e.Key)},
	}
	width := slicest.Reduce(rows, func(row [2]string, w int) int {
		return max(w, lipgloss.Width(row[0])+1)
	})
	return strings.Join(slicest.Map(rows, func(row [2]string) string {
		return fmt.Sprintf("%-*s  %s", width, row[0]+":", row[1])
	}), "\n")
}

// Mask hides every character of secret.
func Mask(secret string) string {
	return strings.Repeat("•", len([]rune(secret)))
}

func yesNo(b bool) string {
	if b {
		return i18n.T("common.yes")
	}
	return i18n.T("common.no")
}

// *Model implements pane.Pane
var _ pane.Pane = (*Model)(nil)
