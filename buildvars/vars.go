// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Set at link time via `-ldflags -X github.com/lazyprop/lazyprop/buildvars.<Name>=...`.
// They stay empty for local or development builds.
var (
	Version   string
	Commit    string
	BuildDate string
)

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
