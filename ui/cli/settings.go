// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/trainer/core/settings"
	"github.com/toeirei/trainer/internal/i18n"
	"github.com/toeirei/trainer/internal/logging"
	"github.com/toeirei/trainer/ui/tui"
)

func newSaveCmd() *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write the settings file",
		Long: `Loads the existing settings file (if any) and writes it back in
canonical form. With --defaults the file is rewritten from the built-in
defaults, discarding its current content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if !defaults {
				if err := s.load(false); err != nil {
					return err
				}
			}
			return s.save()
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Ignore the current file and write built-in defaults")
	return cmd
}

func newShowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := s.load(s.warn); err != nil {
				return err
			}
			switch output {
			case "text":
				return writeText(cmd.OutOrStdout(), s.features)
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), s.features)
			default:
				return fmt.Errorf("unknown output format %q (want text or yaml)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or yaml")
	return cmd
}

func writeText(w io.Writer, list []settings.Feature) error {
	for _, e := range settings.Entries(list) {
		value, err := settings.FormatValue(e.Property)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", e.Key, value); err != nil {
			return err
		}
	}
	return nil
}

// writeYAML groups settings per feature, keeping file order.
func writeYAML(w io.Writer, list []settings.Feature) error {
	var doc yaml.MapSlice
	index := map[string]int{}
	for _, e := range settings.Entries(list) {
		text, err := settings.FormatValue(e.Property)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}
		var value any
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}

		name := e.Feature.FeatureName()
		i, ok := index[name]
		if !ok {
			i = len(doc)
			index[name] = i
			doc = append(doc, yaml.MapItem{Key: name, Value: yaml.MapSlice{}})
		}
		props := doc[i].Value.(yaml.MapSlice)
		doc[i].Value = append(props, yaml.MapItem{Key: e.Property.Name(), Value: value})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <Feature.Property>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := s.load(s.warn); err != nil {
				return err
			}
			e, err := settings.Lookup(s.features, args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("settings.unknown_key", args[0]), err)
			}
			value, err := settings.FormatValue(e.Property)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <Feature.Property> <json>",
		Short: "Change one setting and save the file",
		Example: `  trainer set Trainer.Features.Crosshair.Enabled true
  trainer set Trainer.Features.Crosshair.Color '[0.0,1.0,0.0,1.0]'
  trainer set Trainer.Features.Hud.Key '"F3"'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := s.load(false); err != nil {
				return err
			}
			e, err := settings.Lookup(s.features, args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("settings.unknown_key", args[0]), err)
			}
			if err := settings.SetJSON(e.Property, args[1]); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			value, err := settings.FormatValue(e.Property)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("settings.updated", e.Key, value))
			return nil
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List key names accepted for key bindings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, k := range settings.KeyCodes() {
				if t := k.TerminalKey(); t != "" {
					fmt.Fprintf(out, "%s\t%q\n", k, t)
				} else {
					fmt.Fprintln(out, k.String())
				}
			}
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the settings file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch(ctx, newSession(), nil)
		},
	}
}

// watch keeps s.features in sync with the settings file until ctx is done.
// onReload, if set, runs after every reload attempt.
func watch(ctx context.Context, s *session, onReload func(error)) error {
	if err := s.load(s.warn); err != nil {
		return err
	}
	w, err := settings.Watch(ctx, s.store, s.path, s.features, settings.WatchOptions{
		OnReload: func(err error) {
			if err == nil {
				logging.Debugf("%s", i18n.T("settings.reloaded", s.path))
			}
			if onReload != nil {
				onReload(err)
			}
		},
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	logging.Infof("%s", i18n.T("settings.watching", s.path))
	<-ctx.Done()
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive settings editor",
		Args:  cobra.NoArgs,
		RunE:  runEditor,
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	s := newSession()
	return tui.Run(tui.Options{
		Path:          s.path,
		Features:      s.features,
		WarnIfMissing: s.warn,
	})
}
