// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, loads the application config and
// provides the shared session used by the settings subcommands.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/trainer/buildvars"
	"github.com/toeirei/trainer/config"
	"github.com/toeirei/trainer/core/features"
	"github.com/toeirei/trainer/core/settings"
	"github.com/toeirei/trainer/internal/i18n"
	"github.com/toeirei/trainer/internal/logging"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var verbose bool
var showVersionFlag bool

var appConfig config.Config

// isTerminal decides whether the bare root command launches the editor.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// session bundles what every settings command works on.
type session struct {
	store    *settings.Store
	path     string
	warn     bool
	features []settings.Feature
}

func newSession() *session {
	return &session{
		store:    settings.NewStore(settings.WithSink(settings.LogSink(logging.L))),
		path:     appConfig.Settings.File,
		warn:     appConfig.Settings.WarnMissing,
		features: features.Defaults(),
	}
}

func (s *session) load(warn bool) error {
	return s.store.Load(s.path, s.features, warn)
}

func (s *session) save() error {
	return s.store.Save(s.path, s.features)
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A "file not found" error is expected on first run.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		writeDefaultConfig()
	} else if err != nil {
		return errors.New(i18n.T("config.error_loading", err))
	}

	i18n.Init(appConfig.Language)

	if verbose {
		logging.SetDebug(true)
	} else if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	return nil
}

// writeDefaultConfig persists the built-in defaults only. Flags and TRAINER_*
// variables apply to this run and must not stick.
func writeDefaultConfig() {
	defaults, err := config.FromDefaults[config.Config](config.Defaults())
	if err == nil {
		var path string
		if path, err = config.WriteConfigFile(&defaults, false); err == nil {
			logging.Debugf("%s", i18n.T("config.wrote_default", path))
			return
		}
	}
	// the app runs fine on defaults
	logging.Warnf("could not write default config file: %v", err)
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
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

// NewRootCmd creates and configures a new root cobra command.
// Tests call it for a fresh command tree per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "Trainer manages the settings of the trainer features.",
		Long: `Trainer reads and writes the feature settings file: one
"<Feature>.<Property>=<json>" line per setting, colors as [r,g,b,a]
arrays and key bindings by name.

Running without a subcommand on a terminal launches the settings editor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return cmd.Help()
			}
			return runEditor(cmd, args)
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().String("config", "", "application config file (trainer.yaml)")
	cmd.PersistentFlags().String("settings", "", "feature settings file (default trainer.ini)")
	cmd.PersistentFlags().String("language", "en", `message language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = config.BindFlag(cmd.PersistentFlags(), "settings", "settings.file")
	_ = config.BindFlag(cmd.PersistentFlags(), "log-level", "log.level")

	versionCmd := &cobra.Command{
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

	cmd.AddCommand(
		newSaveCmd(),
		newShowCmd(),
		newGetCmd(),
		newSetCmd(),
		newKeysCmd(),
		newWatchCmd(),
		newEditCmd(),
		versionCmd,
	)
	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" {
		composite += " (" + c + ")"
	}
	if d != "" {
		composite += " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
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

	// fall back to the ldflags commit so support can identify the build
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
