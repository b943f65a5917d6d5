// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/lazyprop/lazyprop/internal/env"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/internal/logging"
	"github.com/lazyprop/lazyprop/ui/tui/models/components/details"
)

func loadStore() (*env.Store, error) {
	return env.Load(appConfig.EnvsPath)
}

func saveStore(s *env.Store) error {
	if err := s.Save(appConfig.EnvsPath, env.WithBackup(appConfig.Backup)); err != nil {
		return fmt.Errorf("could not save environments: %w", err)
	}
	return nil
}

// newListCmd prints every environment with its key masked.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if store.IsEmpty() {
				fmt.Fprintln(out, i18n.T("cli.list.empty"))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALGORITHM\tMODE\tRANDOM IVS\tKEY")
			for _, e := range store.All() {
				ivs := "no"
				if e.UseRandomIVs {
					ivs = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.Algorithm, e.Mode, ivs, details.Mask(e.Key))
			}
			return w.Flush()
		},
	}
}

func newAddCmd() *cobra.Command {
	var (
		name, algorithm, mode, key string
		randomIVs                  bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := env.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			m, err := env.ParseMode(mode)
			if err != nil {
				return err
			}

			store, err := loadStore()
			if err != nil {
				return err
			}
			e := env.Environment{Name: name, Algorithm: alg, Mode: m, UseRandomIVs: randomIVs, Key: key}
			if err := store.Add(e); err != nil {
				return err
			}
			if err := saveStore(store); err != nil {
				return err
			}
			logging.Infof("added environment %q", name)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.added", name))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Environment name")
	cmd.Flags().StringVar(&algorithm, "algorithm", string(env.AES), "Cipher algorithm")
	cmd.Flags().StringVar(&mode, "mode", string(env.CBC), "Cipher mode")
	cmd.Flags().BoolVar(&randomIVs, "random-ivs", true, "Use random IVs")
	cmd.Flags().StringVar(&key, "key", "", "Encryption key")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}
			i, _, err := findEnvironment(store, args[0])
			if err != nil {
				return err
			}
			if err := store.Remove(i); err != nil {
				return err
			}
			if err := saveStore(store); err != nil {
				return err
			}
			logging.Infof("removed environment %q", args[0])
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.removed", args[0]))
			return nil
		},
	}
}

// findEnvironment looks name up and, when it is missing, names the closest
// existing environment in the error.
func findEnvironment(store *env.Store, name string) (int, env.Environment, error) {
	i, e, err := store.Find(name)
	if errors.Is(err, env.ErrNotFound) {
		if s := suggest(name, store.Names()); s != "" {
			return i, e, fmt.Errorf("%s: %w", i18n.T("cli.did_you_mean", err.Error(), s), env.ErrNotFound)
		}
	}
	return i, e, err
}

// suggest returns the candidate closest to name, or "" when none is within
// a third of the name's length (at least two edits).
func suggest(name string, candidates []string) string {
	limit := max(2, len(name)/3)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func newRestoreCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the environments file from its backup",
		Long: `Replaces the environments file with the zstd-compressed copy written by
the last save. The current file is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				answer := promptForConfirmation(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Overwrite %s with its backup? [y/N] ", appConfig.EnvsPath))
				if answer != "y" && answer != "yes" {
					return nil
				}
			}
			store, err := env.RestoreBackup(appConfig.EnvsPath)
			if err != nil {
				return err
			}
			logging.Infof("restored %s from backup", appConfig.EnvsPath)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.restored", store.Len()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func promptForConfirmation(in io.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	answer, _ := reader.ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer))
}
