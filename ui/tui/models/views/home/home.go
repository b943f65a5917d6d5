// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package home is the main screen. It turns terminal events into actions and
// routes each one to the popup or to the pane registry.
package home

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/internal/logging"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/details"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/envlist"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/header"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/popup"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/search"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/status"
	windowtitle "github.com/lazyprop/lazyprop/ui/tui/models/helpers/title"
	"github.com/lazyprop/lazyprop/ui/tui/models/views/footer"
	"github.com/lazyprop/lazyprop/ui/tui/pane"
	"github.com/lazyprop/lazyprop/ui/tui/util"
)

const title string = "Lazyprop"

// Registry order of the panes.
const (
	PaneEnvs = iota
	PaneStatus
	PaneDetails
	PaneSearch
	PaneHeader
)

type tickMsg time.Time

type Model struct {
	ctx      *app.Context
	registry *pane.Registry
	popup    *popup.Model
	footer   *footer.Model
	keys     action.KeyMaps
	size     util.Size

	tickRate     time.Duration
	fullscreen   bool
	titleHandler *windowtitle.TitleHandler
}

type NewOpt = func(m *Model)

// WithTickRate sets how many Tick actions are produced per second. Zero
// disables ticking.
func WithTickRate(perSecond float64) NewOpt {
	return func(m *Model) {
		if perSecond > 0 {
			m.tickRate = time.Duration(float64(time.Second) / perSecond)
		} else {
			m.tickRate = 0
		}
	}
}

func New(ctx *app.Context, opts ...NewOpt) *Model {
	keys := action.NewKeyMaps()
	version := ctx.Version
	if version == "" {
		version = "dev"
	}
	m := &Model{
		ctx: ctx,
		registry: pane.NewRegistry(PaneStatus,
			envlist.New(),
			status.New(),
			details.New(),
			search.New(),
			header.New(),
		),
		popup:        popup.New(),
		footer:       footer.New(keys.Normal.Base()),
		keys:         keys,
		tickRate:     time.Second / 4,
		titleHandler: windowtitle.NewHandler(title+" "+version, " | "),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Context() *app.Context     { return m.ctx }
func (m *Model) Registry() *pane.Registry  { return m.registry }
func (m *Model) Popup() *popup.Model       { return m.popup }
func (m *Model) Fullscreen() bool          { return m.fullscreen }
func (m *Model) HelpExpanded() bool        { return m.footer.Expanded() }
func (m *Model) Title() string             { return m.titleHandler.Title() }
func (m *Model) Status() (string, bool)    { return m.statusPane().Message() }
func (m *Model) statusPane() *status.Model { return m.registry.Pane(PaneStatus).(*status.Model) }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.titleHandler.Init(), m.syncTitle(), m.tick())
}

func (m *Model) tick() tea.Cmd {
	if m.tickRate <= 0 {
		return nil
	}
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Mode reports which key bindings apply.
func (m *Model) Mode() action.Mode {
	switch {
	case m.popup.Active():
		return action.Popup
	case m.registry.TakesText():
		return action.Text
	}
	return action.Normal
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.Dispatch(action.Resize{Width: msg.Width, Height: msg.Height})
		return m, nil
	case tickMsg:
		m.Dispatch(action.Tick{})
		return m, m.tick()
	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, a := range m.keys.TranslateAll(msg, m.Mode()) {
			cmds = append(cmds, m.Dispatch(a))
		}
		cmds = append(cmds, m.syncTitle())
		return m, tea.Batch(cmds...)
	}
	return m, m.titleHandler.Handle(msg)
}

// Dispatch handles one action. It returns tea.Quit for Quit and nil
// otherwise.
func (m *Model) Dispatch(a action.Action) tea.Cmd {
	if _, ok := a.(action.Tick); !ok {
		logging.Debugf("dispatch %T%+v", a, a)
	}
	defer m.selectVisible()

	if m.popup.Active() {
		if followUp := m.popup.Update(a, m.ctx); followUp != nil {
			m.registry.Dispatch(followUp, m.ctx)
		}
		return nil
	}

	switch a.(type) {
	case action.Quit:
		return tea.Quit
	case action.Add:
		m.popup.OpenAdd()
	case action.Edit:
		if m.guardHidden() {
			m.popup.OpenEdit(m.ctx)
		}
	case action.Submit:
		if m.registry.TakesText() {
			m.registry.Dispatch(a, m.ctx)
		} else if m.guardHidden() {
			m.popup.OpenTransform(m.ctx)
		}
	case action.Remove:
		if m.guardHidden() {
			m.report(m.remove())
		}
	case action.Save:
		m.report(m.save())
	case action.Copy:
		m.report(m.copy())
	case action.Fullscreen:
		m.fullscreen = !m.fullscreen
	case action.Help:
		m.footer.ToggleExpanded()
	default:
		m.registry.Dispatch(a, m.ctx)
	}
	return nil
}

func (m *Model) report(a action.Action) {
	if a != nil {
		m.registry.Dispatch(a, m.ctx)
	}
}

// selectVisible moves the current index onto the first entry matching the
// query when the current one is filtered out.
func (m *Model) selectVisible() {
	visible := envlist.Visible(m.ctx.Store.Names(), m.ctx.Query, m.ctx.FuzzySearch)
	if len(visible) == 0 || slices.Contains(visible, m.ctx.Store.Current()) {
		return
	}
	_ = m.ctx.Store.SetCurrent(visible[0])
}

// guardHidden reports whether actions on the current entry may proceed. An
// entry hidden by the query is never acted on; the status pane says so.
// An empty store passes so the action reports its own error.
func (m *Model) guardHidden() bool {
	if m.ctx.Store.IsEmpty() {
		return true
	}
	visible := envlist.Visible(m.ctx.Store.Names(), m.ctx.Query, m.ctx.FuzzySearch)
	if slices.Contains(visible, m.ctx.Store.Current()) {
		return true
	}
	m.report(action.Message{Text: i18n.T("status.no_selection")})
	return false
}

func (m *Model) remove() action.Action {
	if err := m.ctx.Store.Remove(m.ctx.Store.Current()); err != nil {
		return action.Error{Text: i18n.T("status.remove_error", err)}
	}
	return action.Message{Text: i18n.T("status.removed")}
}

func (m *Model) save() action.Action {
	if err := m.ctx.Save(); err != nil {
		logging.Errorf("saving %s: %v", m.ctx.EnvsPath, err)
		return action.Error{Text: i18n.T("status.save_error", err)}
	}
	return action.Message{Text: i18n.T("status.saved")}
}

func (m *Model) copy() action.Action {
	ok, err := m.ctx.Copy()
	switch {
	case err != nil:
		return action.Error{Text: i18n.T("status.copy_error", err)}
	case !ok:
		return action.Message{Text: i18n.T("status.nothing_to_copy")}
	}
	return action.Message{Text: i18n.T("status.copied")}
}

// syncTitle puts the current environment's name in the window title.
func (m *Model) syncTitle() tea.Cmd {
	var name string
	if e, err := m.ctx.Store.CurrentEnvironment(); err == nil {
		name = e.Name
	}
	return m.titleHandler.SetCurrent(name)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
