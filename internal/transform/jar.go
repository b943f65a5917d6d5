// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package transform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/lazyprop/lazyprop/internal/logging"
)

const toolClass = "com.mulesoft.tools.SecurePropertiesTool"

// JarGateway runs the secure properties tool through a Java runtime.
type JarGateway struct {
	Java    string
	JarPath string
	// Timeout bounds one invocation; zero means no limit.
	Timeout time.Duration
}

// Args returns the command line passed to the Java runtime for req.
// The random IV flag is not forwarded.
func (g *JarGateway) Args(req Request) []string {
	return []string{
		"-cp", g.JarPath,
		toolClass,
		"string",
		string(req.Op),
		string(req.Algorithm),
		string(req.Mode),
		req.Key,
		req.Input,
	}
}

func (g *JarGateway) Transform(ctx context.Context, req Request) (string, error) {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	java := g.Java
	if java == "" {
		java = "java"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, java, g.Args(req)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debugf("running %s %s %s %s via %s", toolClass, req.Op, req.Algorithm, req.Mode, java)
	err := cmd.Run()
	if err == nil {
		return strings.TrimRight(stdout.String(), "\r\n"), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		diag := strings.TrimRight(stderr.String(), "\r\n")
		if diag == "" {
			diag = exitErr.Error()
		}
		logging.Warnf("secure properties tool exited with %d", exitErr.ExitCode())
		return "", &Error{Diagnostic: diag}
	}
	return "", &Error{Diagnostic: fmt.Sprintf("Failed to invoke JAR file: %v", err)}
}

var _ Gateway = (*JarGateway)(nil)
