// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package pane

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/stack"
)

// journal records every action delivered to any fake pane, in order.
type journal struct{ entries []string }

type fakePane struct {
	name      string
	focusable bool
	reply     action.Action
	log       *journal
	got       []action.Action
}

func (p *fakePane) Focusable() bool              { return p.focusable }
func (p *fakePane) Constraint() stack.SizeConfig { return stack.Fill(1) }
func (p *fakePane) View(int, int, *app.Context) string {
	return p.name
}
func (p *fakePane) Update(a action.Action, _ *app.Context) action.Action {
	p.got = append(p.got, a)
	if p.log != nil {
		p.log.entries = append(p.log.entries, fmt.Sprintf("%s:%T", p.name, a))
	}
	return p.reply
}

func panes(log *journal, focusable ...bool) ([]Pane, []*fakePane) {
	var ps []Pane
	var fs []*fakePane
	for i, f := range focusable {
		p := &fakePane{name: fmt.Sprintf("p%d", i), focusable: f, log: log}
		ps = append(ps, p)
		fs = append(fs, p)
	}
	return ps, fs
}

func TestNewRegistryFocusesFirstFocusable(t *testing.T) {
	ps, fs := panes(nil, false, false, true, true)
	r := NewRegistry(0, ps...)
	if r.Focused() != 2 {
		t.Fatalf("focused %d, want 2", r.Focused())
	}
	if len(fs[2].got) != 1 || fs[2].got[0] != (action.Focus{}) {
		t.Fatalf("first focusable pane got %v", fs[2].got)
	}
	if r.FocusedPane() != ps[2] || r.Len() != 4 || r.Pane(9) != nil {
		t.Fatalf("accessors disagree")
	}
}

func TestNextFocusedSkipsNonFocusable(t *testing.T) {
	ps, _ := panes(nil, true, false, false, true, false)
	r := NewRegistry(1, ps...)

	var order []int
	for range 4 {
		order = append(order, r.NextFocused())
	}
	if fmt.Sprint(order) != "[3 0 3 0]" {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestNextFocusedCycleReturnsToOrigin(t *testing.T) {
	ps, _ := panes(nil, true, true, true, true, true)
	r := NewRegistry(0, ps...)
	for range r.Len() {
		r.Dispatch(action.Tab{}, nil)
	}
	if r.Focused() != 0 {
		t.Fatalf("focus %d after a full cycle", r.Focused())
	}

	// with gaps, one advance per focusable pane closes the cycle
	ps, _ = panes(nil, false, true, false, true, true)
	r = NewRegistry(0, ps...)
	origin := r.Focused()
	for range 3 {
		r.NextFocused()
	}
	if r.Focused() != origin {
		t.Fatalf("focus %d, want %d", r.Focused(), origin)
	}
}

func TestNextFocusedSingleFocusableStays(t *testing.T) {
	ps, _ := panes(nil, false, true, false)
	r := NewRegistry(0, ps...)
	for range 5 {
		if got := r.NextFocused(); got != 1 {
			t.Fatalf("focus moved to %d", got)
		}
	}
}

func TestNextFocusedNoFocusablePaneTerminates(t *testing.T) {
	ps, _ := panes(nil, false, false, false)
	r := NewRegistry(0, ps...)
	if got := r.NextFocused(); got != 0 {
		t.Fatalf("focus %d, want 0", got)
	}
	r.Dispatch(action.Tab{}, nil)
	if r.Focused() != 0 {
		t.Fatalf("focus moved to %d", r.Focused())
	}
}

func TestFocusedOnlyActionsDroppedWithoutFocusablePane(t *testing.T) {
	ps, fs := panes(nil, false, false)
	r := NewRegistry(1, ps...)

	r.Dispatch(action.Tab{}, nil)
	r.Dispatch(action.Up{}, nil)
	r.Dispatch(action.Input{Rune: 'x'}, nil)
	r.Dispatch(action.Submit{}, nil)
	if len(fs[0].got) != 0 {
		t.Fatalf("unfocusable pane 0 got %v", fs[0].got)
	}
	if r.TakesText() {
		t.Fatalf("registry without focus takes text")
	}

	r.Dispatch(action.Message{Text: "still routed"}, nil)
	if len(fs[1].got) != 1 {
		t.Fatalf("status pane got %v", fs[1].got)
	}
}

func TestTabSendsUnFocusThenFocus(t *testing.T) {
	log := &journal{}
	ps, _ := panes(log, true, false, true)
	r := NewRegistry(1, ps...)
	log.entries = nil

	r.Dispatch(action.Tab{}, nil)

	want := "p0:action.UnFocus,p2:action.Focus"
	if got := strings.Join(log.entries, ","); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDispatchRouting(t *testing.T) {
	ps, fs := panes(nil, true, false, true)
	r := NewRegistry(1, ps...)
	for _, f := range fs {
		f.got = nil
	}

	r.Dispatch(action.Up{}, nil)
	r.Dispatch(action.Input{Rune: 'x'}, nil)
	if len(fs[0].got) != 2 || len(fs[1].got) != 0 || len(fs[2].got) != 0 {
		t.Fatalf("focused-only actions leaked: %v %v %v", fs[0].got, fs[1].got, fs[2].got)
	}

	r.Dispatch(action.Message{Text: "hi"}, nil)
	r.Dispatch(action.Error{Text: "bad"}, nil)
	if len(fs[1].got) != 2 || fs[1].got[0] != (action.Message{Text: "hi"}) {
		t.Fatalf("status pane got %v", fs[1].got)
	}

	r.Dispatch(action.Tick{}, nil)
	r.Dispatch(action.Resize{Width: 10, Height: 5}, nil)
	for i, f := range fs {
		if last := f.got[len(f.got)-1]; last != (action.Resize{Width: 10, Height: 5}) {
			t.Fatalf("pane %d missed broadcast, last %v", i, last)
		}
	}

	// actions the registry does not route are dropped
	before := len(fs[0].got)
	r.Dispatch(action.Save{}, nil)
	if len(fs[0].got) != before {
		t.Fatalf("unrouted action delivered")
	}
}

func TestFollowUpGoesToStatusPane(t *testing.T) {
	ps, fs := panes(nil, true, false)
	fs[0].reply = action.Error{Text: "nope"}
	fs[1].reply = action.Message{Text: "status must not loop"}
	r := NewRegistry(1, ps...)
	fs[1].got = nil

	r.Dispatch(action.Down{}, nil)

	if len(fs[1].got) != 1 || fs[1].got[0] != (action.Error{Text: "nope"}) {
		t.Fatalf("status pane got %v", fs[1].got)
	}
	// the status pane's own reply is not dispatched again
	if len(fs[0].got) != 2 {
		t.Fatalf("focused pane got %v", fs[0].got)
	}
}

func TestFrameSize(t *testing.T) {
	out := Frame("Title", true, 20, 6, "body")
	if w, h := lipgloss.Size(out); w != 20 || h != 6 {
		t.Fatalf("frame is %dx%d", w, h)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "body") {
		t.Fatalf("frame lost content: %q", out)
	}
	if w, h := lipgloss.Size(Frame("T", false, 2, 1, "xyz")); w != 2 || h != 1 {
		t.Fatalf("tiny frame is %dx%d", w, h)
	}
}
