// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the terminal interface of lazyprop. Key presses become
// actions in the action package, the home view routes them to the popup or
// to the panes, and every pane reads and writes the shared app.Context.
package tui
