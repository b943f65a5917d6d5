// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the translation keys used in
// the Go sources. Keys used in code but missing from the English file fail
// the run; keys missing from other locales only warn because lookups fall
// back to English.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Report is the outcome of one lint run. Every slice is sorted.
type Report struct {
	Missing  []string            // used in code, absent from the primary locale
	Orphaned []string            // in the primary locale, never used
	Partial  map[string][]string // locale file -> primary keys it lacks
}

func (r Report) Failed() bool { return len(r.Missing) > 0 }

func main() {
	fmt.Println("Running i18n linter...")
	report, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	printReport(report)
	if report.Failed() {
		os.Exit(1)
	}
}

func printReport(r Report) {
	section := func(title string, keys []string) {
		fmt.Printf("--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Println("  none")
		}
		for _, k := range keys {
			fmt.Printf("  - %s\n", k)
		}
	}
	section("Missing from "+primaryLocale, r.Missing)
	section("Orphaned in "+primaryLocale, r.Orphaned)

	files := make([]string, 0, len(r.Partial))
	for f := range r.Partial {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		section("Falls back to English in "+f, r.Partial[f])
	}
}

func lint(root, locales string) (Report, error) {
	called, mentioned, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(root, locales, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}

	orphaned := slices.DeleteFunc(difference(primary, called), func(k string) bool {
		_, ok := mentioned[k]
		return ok
	})
	report := Report{
		Missing:  difference(called, primary),
		Orphaned: orphaned,
		Partial:  map[string][]string{},
	}

	files, err := filepath.Glob(filepath.Join(root, locales, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		if missing := difference(primary, keys); len(missing) > 0 {
			report.Partial[filepath.Base(file)] = missing
		}
	}
	return report, nil
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// keyRe matches i18n.T("some.key") and bare literals shaped like keys. Bare
// literals only keep a key from being reported as orphaned, since most of
// them are keys passed around before translation.
var keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z][a-z._]*)"`)

// findUsedKeys scans the non-test .go files under root and returns the keys
// passed to i18n.T and the bare key-shaped literals. Hidden directories,
// directories starting with an underscore and tools are skipped.
func findUsedKeys(root string) (called, mentioned map[string]struct{}, err error) {
	called, mentioned = make(map[string]struct{}), make(map[string]struct{})
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyRe.FindAllStringSubmatch(string(content), -1) {
			switch {
			case match[1] != "":
				called[match[1]] = struct{}{}
			case match[2] != "" && !looksLikeFile(match[2]):
				mentioned[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return called, mentioned, err
}

// looksLikeFile filters literals such as "envs.yaml" out of the key set.
func looksLikeFile(s string) bool {
	switch filepath.Ext(s) {
	case ".yaml", ".yml", ".go", ".log", ".jar", ".zst", ".tmp":
		return true
	}
	return false
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys. The locale files
// are flat today; nesting is accepted so either layout lints the same.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
