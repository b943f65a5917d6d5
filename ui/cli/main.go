// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for lazyprop using Cobra. It
// defines the root command, which launches the TUI, its persistent flags and
// the shared startup that loads configuration, translations and logging.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lazyprop/lazyprop/buildvars"
	"github.com/lazyprop/lazyprop/internal/config"
	"github.com/lazyprop/lazyprop/internal/env"
	"github.com/lazyprop/lazyprop/internal/i18n"
	"github.com/lazyprop/lazyprop/internal/logging"
	"github.com/lazyprop/lazyprop/internal/transform"
	"github.com/lazyprop/lazyprop/ui/tui"
	"github.com/lazyprop/lazyprop/ui/tui/app"
	"github.com/lazyprop/lazyprop/ui/tui/models/views/home"
)

const modulePath = "github.com/lazyprop/lazyprop"

var (
	cfgFile         string
	verbose         bool
	showVersionFlag bool

	appConfig config.Config
)

// errVersionShown stops the command chain after --version printed.
var errVersionShown = errors.New("version shown")

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// runTUI is replaced in tests.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A missing file is expected on first run: persist the defaults.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if path, writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to %s", path)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.EnvsPath == "" {
		appConfig.EnvsPath = defaults["envs_path"].(string)
	}

	i18n.Init(appConfig.Language)

	if verbose {
		appConfig.LogLevel = "debug"
	}
	logging.Setup(cmd.ErrOrStderr(), appConfig.LogLevel)
	return nil
}

// Execute runs the CLI entrypoint. main should call this and exit non-zero
// on error.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	if errors.Is(err, errVersionShown) {
		return nil
	}
	if err != nil {
		logging.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only an explicit --config is honoured here.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns a fresh command tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lazyprop",
		Short: i18n.T("cli.short"),
		Long: `Lazyprop keeps named encryption profiles for Mule secure properties
and encrypts or decrypts values with them.

Running without a subcommand will launch the interactive TUI.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				return errVersionShown
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return errors.New(i18n.T("cli.not_a_terminal"))
			}
			return runInteractive(cmd)
		},
	}

	defaults := config.Defaults()
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	flags.StringVar(&cfgFile, "config", "", "config file")
	flags.String("envs-path", defaults["envs_path"].(string), "Environments file")
	flags.String("jar-path", defaults["jar_path"].(string), "Secure properties tool jar")
	flags.String("engine", defaults["engine"].(string), `Transform engine ("jar", "native")`)
	flags.String("language", defaults["language"].(string), `UI language ("en", "de")`)

	cmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newTransformCmd(transform.Encrypt),
		newTransformCmd(transform.Decrypt),
		newRestoreCmd(),
		newVersionCmd(),
	)
	return cmd
}

// runInteractive hands the terminal to the TUI. The logger is redirected to
// the log file for as long as the TUI runs.
func runInteractive(cmd *cobra.Command) error {
	store, err := env.Load(appConfig.EnvsPath)
	if err != nil {
		return err
	}
	gateway, err := newGateway()
	if err != nil {
		return err
	}

	logPath := appConfig.LogFile
	if logPath == "" {
		logPath = logging.DefaultFile()
	}
	if f, err := logging.OpenFile(logPath); err != nil {
		logging.Warnf("could not open log file %s: %v", logPath, err)
	} else {
		logging.Setup(f, appConfig.LogLevel)
		defer func() {
			logging.Setup(cmd.ErrOrStderr(), appConfig.LogLevel)
			_ = f.Close()
		}()
	}
	logging.Infof("starting TUI with %d environments from %s", store.Len(), appConfig.EnvsPath)

	ctx := app.New(store,
		app.WithGateway(gateway),
		app.WithEnvsPath(appConfig.EnvsPath),
		app.WithBackup(appConfig.Backup),
		app.WithFuzzySearch(appConfig.FuzzySearch),
		app.WithVersion(buildvars.VersionOrDefault(resolvedVersion())),
	)
	if c := cmd.Context(); c != nil {
		ctx.Ctx = c
	}
	return runTUI(ctx, home.WithTickRate(appConfig.TickRate))
}

func newGateway() (transform.Gateway, error) {
	return transform.New(transform.Options{
		Engine:  appConfig.Engine,
		Java:    appConfig.JavaBin,
		JarPath: appConfig.JarPath,
		Timeout: appConfig.TransformTimeout,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func resolvedVersion() string {
	v, _, _ := resolveBuildVersion(nil)
	return v
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := nonEmpty(buildvars.Version, "dev")
	resolvedCommit := nonEmpty(buildvars.Commit, "dev")
	resolvedDate := buildvars.BuildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record the module as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && resolvedCommit != "dev" && resolvedCommit != "" {
		resolvedVersion = resolvedCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
