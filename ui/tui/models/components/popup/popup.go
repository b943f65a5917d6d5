// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup is the modal form used to add or edit an environment and to
// run a transform against the current one.
package popup

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/lazyprop/lazyprop/internal/env"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/internal/logging"
	"github.com/lazyprop/lazyprop/internal/transform"
	"github.com/lazyprop/lazyprop/ui/tui/action"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/util"
)

type Kind int

const (
	Inactive Kind = iota
	AddEnvironment
	EditEnvironment
	EncryptDecrypt
)

type Field int

const (
	Name Field = iota
	Algorithm
	Mode
	IV
	Key
	TextInput
	EncryptButton
	DecryptButton
)

var (
	environmentRing = []Field{Name, Algorithm, Mode, IV, Key}
	transformRing   = []Field{TextInput, EncryptButton, DecryptButton}
)

type Model struct {
	kind   Kind
	target int
	focus  int

	name      []rune
	algorithm int
	mode      int
	ivs       bool
	key       []rune
	text      []rune

	// envName is the environment a transform runs against, for the title.
	envName string
}

func New() *Model {
	return &Model{}
}

func (m *Model) Active() bool { return m.kind != Inactive }
func (m *Model) Kind() Kind   { return m.kind }

// Target is the store index an edit popup writes back to.
func (m *Model) Target() int { return m.target }

// Field is the focused field, or -1 while inactive.
func (m *Model) Field() Field {
	ring := m.ring()
	if len(ring) == 0 {
		return -1
	}
	return ring[m.focus]
}

func (m *Model) ring() []Field {
	switch m.kind {
	case AddEnvironment, EditEnvironment:
		return environmentRing
	case EncryptDecrypt:
		return transformRing
	}
	return nil
}

// OpenAdd opens an empty environment form.
func (m *Model) OpenAdd() {
	*m = Model{kind: AddEnvironment, ivs: true}
}

// OpenEdit opens the form pre-filled with the current environment. It does
// nothing and reports false on an empty store.
func (m *Model) OpenEdit(ctx *app.Context) bool {
	e, err := ctx.Store.CurrentEnvironment()
	if err != nil {
		return false
	}
	*m = Model{
		kind:      EditEnvironment,
		target:    ctx.Store.Current(),
		name:      []rune(e.Name),
		algorithm: max(env.AlgorithmIndex(e.Algorithm), 0),
		mode:      max(env.ModeIndex(e.Mode), 0),
		ivs:       e.UseRandomIVs,
		key:       []rune(e.Key),
	}
	return true
}

// OpenTransform opens the encrypt/decrypt form for the current environment.
// It does nothing and reports false on an empty store.
func (m *Model) OpenTransform(ctx *app.Context) bool {
	e, err := ctx.Store.CurrentEnvironment()
	if err != nil {
		return false
	}
	*m = Model{kind: EncryptDecrypt, target: ctx.Store.Current(), envName: e.Name}
	return true
}

// Close discards the scratch state.
func (m *Model) Close() {
	*m = Model{}
}

// Update applies a to the open popup and returns the status follow-up, if
// any. It ignores every action while inactive.
func (m *Model) Update(a action.Action, ctx *app.Context) action.Action {
	if !m.Active() {
		return nil
	}
	ring := m.ring()

	switch a := a.(type) {
	case action.Tab:
		m.focus = util.Wrap(m.focus, 1, len(ring))
	case action.BackTab:
		m.focus = util.Wrap(m.focus, -1, len(ring))
	case action.Up:
		m.step(-1)
	case action.Down:
		m.step(1)
	case action.Toggle:
		if m.Field() == IV {
			m.ivs = !m.ivs
		} else if buf := m.buffer(); buf != nil {
			*buf = append(*buf, ' ')
		}
	case action.Input:
		if buf := m.buffer(); buf != nil {
			*buf = append(*buf, a.Rune)
		}
	case action.Backspace:
		if buf := m.buffer(); buf != nil && len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
		}
	case action.Cancel:
		m.Close()
	case action.Submit:
		return m.submit(ctx)
	}
	return nil
}

// step moves the Algorithm or Mode selection, stopping at either end.
func (m *Model) step(delta int) {
	switch m.Field() {
	case Algorithm:
		m.algorithm = util.Clamp(0, m.algorithm+delta, len(env.Algorithms)-1)
	case Mode:
		m.mode = util.Clamp(0, m.mode+delta, len(env.Modes)-1)
	}
}

// buffer returns the text buffer of the focused field, or nil.
func (m *Model) buffer() *[]rune {
	switch m.Field() {
	case Name:
		return &m.name
	case Key:
		return &m.key
	case TextInput:
		return &m.text
	}
	return nil
}

func (m *Model) submit(ctx *app.Context) action.Action {
	switch m.Field() {
	case TextInput:
		return nil
	case EncryptButton:
		return m.runTransform(ctx, transform.Encrypt, "status.encrypted")
	case DecryptButton:
		return m.runTransform(ctx, transform.Decrypt, "status.decrypted")
	}

	kind, target := m.kind, m.target
	e, err := m.Environment()
	m.Close()
	if err != nil {
		return action.Error{Text: i18n.T("status.error", err)}
	}

	switch kind {
	case AddEnvironment:
		if err := ctx.Store.Add(e); err != nil {
			return action.Error{Text: i18n.T("status.error", err)}
		}
		logging.Infof("added environment %q", e.Name)
		return action.Message{Text: i18n.T("status.added")}
	case EditEnvironment:
		if err := ctx.Store.Edit(target, e); err != nil {
			return action.Error{Text: i18n.T("status.error", err)}
		}
		logging.Infof("edited environment %d (%q)", target, e.Name)
		return action.Message{Text: i18n.T("status.edited")}
	}
	return nil
}

func (m *Model) runTransform(ctx *app.Context, op transform.Op, status string) action.Action {
	input := string(m.text)
	m.Close()
	out, err := ctx.Transform(op, input)
	if err != nil {
		logging.Warnf("%s failed: %v", op, err)
		return action.Error{Text: i18n.T("status.error", err)}
	}
	return action.Message{Text: i18n.T(status, out)}
}

// Environment decodes the form into an environment.
func (m *Model) Environment() (env.Environment, error) {
	scratch := map[string]any{
		"name":           string(m.name),
		"algorithm":      env.Algorithms[m.algorithm],
		"mode":           env.Modes[m.mode],
		"use_random_ivs": m.ivs,
		"key":            string(m.key),
	}
	var e env.Environment
	err := mapstructure.Decode(scratch, &e)
	return e, err
}
