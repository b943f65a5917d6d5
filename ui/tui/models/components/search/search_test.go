// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package search

import (
	"strings"
	"testing"

	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
)

func TestInputPublishesQuery(t *testing.T) {
	ctx := app.New(nil)
	m := New()
	if m.TakesText() {
		t.Fatalf("unfocused pane must not take text")
	}
	m.Update(action.Focus{}, ctx)
	if !m.TakesText() {
		t.Fatalf("focused pane should be in insert mode")
	}

	for _, r := range "pro d" {
		m.Update(action.Input{Rune: r}, ctx)
	}
	if ctx.Query != "pro d" {
		t.Fatalf("query %q", ctx.Query)
	}
	m.Update(action.Backspace{}, ctx)
	m.Update(action.Backspace{}, ctx)
	if ctx.Query != "pro" || m.Query() != "pro" {
		t.Fatalf("query after backspace %q", ctx.Query)
	}

	m.Update(action.Cancel{}, ctx)
	if ctx.Query != "" {
		t.Fatalf("cancel should clear the query, got %q", ctx.Query)
	}
	// backspace on an empty buffer is a no-op
	m.Update(action.Backspace{}, ctx)
	if ctx.Query != "" {
		t.Fatalf("query %q", ctx.Query)
	}

	m.Update(action.UnFocus{}, ctx)
	if m.TakesText() {
		t.Fatalf("insert mode should end on unfocus")
	}
}

func TestView(t *testing.T) {
	m := New()
	if view := m.View(30, 3, nil); !strings.Contains(view, "Type to search") {
		t.Fatalf("placeholder missing:\n%s", view)
	}
	m.Update(action.Focus{}, nil)
	m.Update(action.Input{Rune: 'q'}, nil)
	if view := m.View(30, 3, nil); !strings.Contains(view, "q"+cursor) {
		t.Fatalf("buffer or cursor missing:\n%s", view)
	}
}
