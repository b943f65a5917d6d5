// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package pane defines the capability set of a screen region and the
// registry that owns the panes and tracks which one has focus.
package pane

import (
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
)

// Pane is one region of the home screen.
type Pane interface {
	Focusable() bool
	Constraint() stack.SizeConfig
	// Update handles a and returns at most one follow-up action, or nil.
	Update(a action.Action, ctx *app.Context) action.Action
	View(width, height int, ctx *app.Context) string
}

// Texter is implemented by panes that take free text input while focused.
type Texter interface {
	TakesText() bool
}
