// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := make(map[string]struct{})
	flattenYAML("", map[string]any{
		"status": map[string]any{"saved": "Saved"},
		"common.yes": "yes",
	}, keys)
	for _, want := range []string{"status.saved", "common.yes"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %s in %v", want, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "pane", "a.go"), `package pane
func f() {
	_ = i18n.T("status.saved")
	_ = i18n.T("status.missing")
	g("status.added")
	_ = "envs.yaml"
}`)
	// ignored: tests, tools and underscore dirs
	write(t, filepath.Join(root, "pane", "a_test.go"), `package pane
var _ = i18n.T("test.only")`)
	write(t, filepath.Join(root, "_ref", "b.go"), `package ref
var _ = i18n.T("ref.only")`)
	write(t, filepath.Join(root, "locales", "en.yaml"), "\"status.saved\": Saved\n\"status.added\": Added\n\"status.unused\": Unused\n")
	write(t, filepath.Join(root, "locales", "de.yaml"), "\"status.saved\": Gespeichert\n")

	report, err := lint(root, "locales")
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if !slices.Equal(report.Missing, []string{"status.missing"}) {
		t.Fatalf("missing %v", report.Missing)
	}
	if !slices.Equal(report.Orphaned, []string{"status.unused"}) {
		t.Fatalf("orphaned %v", report.Orphaned)
	}
	if !slices.Equal(report.Partial["de.yaml"], []string{"status.added", "status.unused"}) {
		t.Fatalf("partial %v", report.Partial)
	}
	if !report.Failed() {
		t.Fatalf("missing keys should fail the run")
	}
}
