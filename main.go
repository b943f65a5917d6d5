// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for lazyprop.
//
// Usage:
//
//	go run . [flags]
//	./lazyprop [flags]
//
// Without a subcommand this launches the TUI. See --help for options.
package main

import (
	"os"

	"github.com/lazyprop/lazyprop/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
