// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for lazyprop using Cobra.
// The root command starts the TUI; the subcommands manage environments and
// run transforms without it.
package cli
