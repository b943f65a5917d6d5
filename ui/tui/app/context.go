// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package app holds the mutable state shared by the dispatcher, the popup and
// the panes. It is passed explicitly into every handler.
package app

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/lazyprop/lazyprop/internal/env"
	"github.com/lazyprop/lazyprop/internal/transform"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard is backed by github.com/atotto/clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// Context is the application context.
type Context struct {
	Store    *env.Store
	Gateway  transform.Gateway
	EnvsPath string
	Backup   bool

	// Query is the search pane buffer; the environment list filters by it.
	Query       string
	FuzzySearch bool

	// LastResult is the output of the last successful transform.
	LastResult string
	Clipboard  Clipboard

	// Ctx bounds gateway calls.
	Ctx context.Context

	Version string
}

type Opt = func(*Context)

func WithGateway(g transform.Gateway) Opt { return func(c *Context) { c.Gateway = g } }
func WithEnvsPath(path string) Opt        { return func(c *Context) { c.EnvsPath = path } }
func WithBackup(enabled bool) Opt         { return func(c *Context) { c.Backup = enabled } }
func WithFuzzySearch(enabled bool) Opt    { return func(c *Context) { c.FuzzySearch = enabled } }
func WithClipboard(cb Clipboard) Opt      { return func(c *Context) { c.Clipboard = cb } }
func WithVersion(v string) Opt            { return func(c *Context) { c.Version = v } }

// New returns a context over store. Without options it uses the system
// clipboard and context.Background for gateway calls.
func New(store *env.Store, opts ...Opt) *Context {
	if store == nil {
		store, _ = env.NewStore()
	}
	c := &Context{
		Store:     store,
		Clipboard: SystemClipboard,
		Ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Save writes the store to EnvsPath.
func (c *Context) Save() error {
	return c.Store.Save(c.EnvsPath, env.WithBackup(c.Backup))
}

// Transform runs op on input with the current environment.
func (c *Context) Transform(op transform.Op, input string) (string, error) {
	e, err := c.Store.CurrentEnvironment()
	if err != nil {
		return "", err
	}
	out, err := transform.Run(c.Ctx, c.Gateway, op, input, e)
	if err != nil {
		return "", err
	}
	c.LastResult = out
	return out, nil
}

// Copy places LastResult on the clipboard. It reports false when there is
// nothing to copy.
func (c *Context) Copy() (bool, error) {
	if c.LastResult == "" {
		return false, nil
	}
	return true, c.Clipboard.WriteAll(c.LastResult)
}
