// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package pane

import (
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
)

// Registry owns the panes in display order and the focus index.
type Registry struct {
	panes   []Pane
	focused int
	status  int
}

// NewRegistry focuses the first focusable pane. status is the index of the
// pane that receives messages, errors and follow-up actions.
func NewRegistry(status int, panes ...Pane) *Registry {
	r := &Registry{panes: panes, status: status}
	for i, p := range panes {
		if p.Focusable() {
			r.focused = i
			p.Update(action.Focus{}, nil)
			break
		}
	}
	return r
}

func (r *Registry) Len() int     { return len(r.panes) }
func (r *Registry) Focused() int { return r.focused }
func (r *Registry) Pane(i int) Pane {
	if i < 0 || i >= len(r.panes) {
		return nil
	}
	return r.panes[i]
}
func (r *Registry) FocusedPane() Pane { return r.Pane(r.focused) }

// TakesText reports whether the focused pane consumes free text.
func (r *Registry) TakesText() bool {
	if !r.hasFocus() {
		return false
	}
	t, ok := r.FocusedPane().(Texter)
	return ok && t.TakesText()
}

// NextFocused advances focus to the next focusable pane, wrapping around.
// At most Len steps are taken; with no focusable pane the index stays put.
func (r *Registry) NextFocused() int {
	n := len(r.panes)
	for step := 1; step <= n; step++ {
		next := (r.focused + step) % n
		if r.panes[next].Focusable() {
			r.focused = next
			break
		}
	}
	return r.focused
}

// Dispatch routes a to the panes that handle it. Follow-up actions go to the
// status pane and are not dispatched again.
func (r *Registry) Dispatch(a action.Action, ctx *app.Context) {
	if len(r.panes) == 0 {
		return
	}
	switch a.(type) {
	case action.Tab:
		if r.hasFocus() {
			r.forward(r.focused, action.UnFocus{}, ctx)
			r.NextFocused()
			r.forward(r.focused, action.Focus{}, ctx)
		}
	case action.Up, action.Down, action.Input, action.Backspace, action.Submit, action.Cancel:
		if r.hasFocus() {
			r.forward(r.focused, a, ctx)
		}
	case action.Message, action.Error:
		r.deliver(a, ctx)
	case action.Tick, action.Resize:
		for i := range r.panes {
			r.forward(i, a, ctx)
		}
	}
}

// hasFocus is false when no pane is focusable; focus-bound actions are then
// dropped.
func (r *Registry) hasFocus() bool {
	p := r.FocusedPane()
	return p != nil && p.Focusable()
}

func (r *Registry) forward(i int, a action.Action, ctx *app.Context) {
	if followUp := r.panes[i].Update(a, ctx); followUp != nil {
		r.deliver(followUp, ctx)
	}
}

func (r *Registry) deliver(a action.Action, ctx *app.Context) {
	if p := r.Pane(r.status); p != nil {
		p.Update(a, ctx)
	}
}
