// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lazyprop/lazyprop/internal/transform"
)

// newTransformCmd builds the encrypt or decrypt command. The text comes from
// the arguments or, when there are none, from stdin.
func newTransformCmd(op transform.Op) *cobra.Command {
	var envName string
	cmd := &cobra.Command{
		Use:   string(op) + " --env <name> [text]",
		Short: strings.ToUpper(string(op[:1])) + string(op[1:]) + " a value with an environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}
			_, e, err := findEnvironment(store, envName)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			if len(args) == 0 {
				if input, err = readInput(cmd); err != nil {
					return err
				}
			}

			gateway, err := newGateway()
			if err != nil {
				return err
			}
			out, err := transform.Run(cmd.Context(), gateway, op, input, e)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&envName, "env", "", "Environment name")
	_ = cmd.MarkFlagRequired("env")
	return cmd
}

// readInput reads the whole of stdin. On a terminal it reads one line
// without echo so secrets stay off the screen.
func readInput(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Text: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("could not read input: %w", err)
	}
	return string(b), nil
}
