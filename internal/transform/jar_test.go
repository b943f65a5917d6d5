// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package transform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lazyprop/lazyprop/internal/env"
)

// fakeJava writes an executable shell script standing in for the Java
// runtime and returns its path.
func fakeJava(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "java")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write fake java: %v", err)
	}
	return path
}

var prod = env.Environment{Name: "prod", Algorithm: env.AES, Mode: env.CBC, UseRandomIVs: true, Key: "  secret1234567890 "}

func TestJar_ArgsAreTrimmed(t *testing.T) {
	g := &JarGateway{Java: "java", JarPath: "/opt/tool.jar"}
	args := g.Args(NewRequest(Encrypt, " value\n", prod))
	require.Equal(t, []string{
		"-cp", "/opt/tool.jar",
		"com.mulesoft.tools.SecurePropertiesTool",
		"string", "encrypt", "AES", "CBC",
		"secret1234567890", "value",
	}, args)
}

func TestJar_SuccessReturnsStdout(t *testing.T) {
	java := fakeJava(t, `echo "$5|$6|$7|$8|$9"`)
	g := &JarGateway{Java: java, JarPath: "tool.jar"}

	out, err := Run(context.Background(), g, Decrypt, "cipher", prod)
	require.NoError(t, err)
	require.Equal(t, "decrypt|AES|CBC|secret1234567890|cipher", out)
}

func TestJar_NonZeroExitReturnsStderr(t *testing.T) {
	java := fakeJava(t, `echo "partial"; echo "Invalid key length" 1>&2; exit 3`)
	g := &JarGateway{Java: java, JarPath: "tool.jar"}

	_, err := Run(context.Background(), g, Encrypt, "v", prod)
	var terr *Error
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "Invalid key length", terr.Diagnostic)
}

func TestJar_MissingRuntime(t *testing.T) {
	g := &JarGateway{Java: filepath.Join(t.TempDir(), "no-such-java"), JarPath: "tool.jar"}
	_, err := Run(context.Background(), g, Encrypt, "v", prod)
	require.ErrorContains(t, err, "Failed to invoke JAR file")
}

func TestJar_Timeout(t *testing.T) {
	java := fakeJava(t, `exec sleep 5`)
	g := &JarGateway{Java: java, JarPath: "tool.jar", Timeout: 100 * time.Millisecond}

	start := time.Now()
	_, err := Run(context.Background(), g, Encrypt, "v", prod)
	require.Error(t, err)
	require.Less(t, time.Since(start), 4*time.Second)
}

func TestNew_SelectsEngine(t *testing.T) {
	g, err := New(Options{})
	require.NoError(t, err)
	require.IsType(t, &JarGateway{}, g)

	g, err = New(Options{Engine: "NATIVE"})
	require.NoError(t, err)
	require.IsType(t, &NativeGateway{}, g)

	_, err = New(Options{Engine: "python"})
	require.Error(t, err)
}

func TestGatewayFunc(t *testing.T) {
	var got Request
	g := GatewayFunc(func(_ context.Context, req Request) (string, error) {
		got = req
		return "ok", nil
	})
	out, err := Run(context.Background(), g, Encrypt, " x ", prod)
	require.NoError(t, err)
	require.Equal(t, "ok", out)
	require.Equal(t, "x", got.Input)
	require.True(t, got.UseRandomIVs)
}
