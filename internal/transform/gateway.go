// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package transform performs the encrypt and decrypt operations for an
// environment. The default engine shells out to the Mule secure properties
// tool; a native engine covers the common ciphers without a JVM.
package transform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lazyprop/lazyprop/internal/env"
)

type Op string

const (
	Encrypt Op = "encrypt"
	Decrypt Op = "decrypt"
)

// Request is one transform call. Key and Input are already trimmed when the
// request is built with NewRequest.
type Request struct {
	Op           Op
	Input        string
	Algorithm    env.Algorithm
	Mode         env.Mode
	UseRandomIVs bool
	Key          string
}

// NewRequest builds a request for e, trimming the key and the input.
func NewRequest(op Op, input string, e env.Environment) Request {
	return Request{
		Op:           op,
		Input:        strings.TrimSpace(input),
		Algorithm:    e.Algorithm,
		Mode:         e.Mode,
		UseRandomIVs: e.UseRandomIVs,
		Key:          strings.TrimSpace(e.Key),
	}
}

// Gateway turns a request into the transformed text or a diagnostic error.
type Gateway interface {
	Transform(ctx context.Context, req Request) (string, error)
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(ctx context.Context, req Request) (string, error)

func (f GatewayFunc) Transform(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Error carries the diagnostic text produced by a failed transform.
type Error struct {
	Diagnostic string
}

func (e *Error) Error() string { return e.Diagnostic }

const (
	EngineJar    = "jar"
	EngineNative = "native"
)

// Options selects and configures an engine.
type Options struct {
	Engine  string
	Java    string
	JarPath string
	Timeout time.Duration
}

// New returns the gateway named by opts.Engine.
func New(opts Options) (Gateway, error) {
	switch strings.ToLower(opts.Engine) {
	case "", EngineJar:
		return &JarGateway{Java: opts.Java, JarPath: opts.JarPath, Timeout: opts.Timeout}, nil
	case EngineNative:
		return NewNativeGateway(), nil
	}
	return nil, fmt.Errorf("unknown transform engine %q", opts.Engine)
}

// Run is a convenience wrapper used by both front ends.
func Run(ctx context.Context, g Gateway, op Op, input string, e env.Environment) (string, error) {
	return g.Transform(ctx, NewRequest(op, input, e))
}
