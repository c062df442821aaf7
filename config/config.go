// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagKeyAnnotation maps a command-line flag onto a differently named config
// key, e.g. --settings onto settings.file.
const FlagKeyAnnotation = "trainer_config_key"

const configFileName = "trainer.yaml"

// Config is the application configuration.
type Config struct {
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings"`
	Language string         `mapstructure:"language" yaml:"language"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// SettingsConfig locates the feature settings file.
type SettingsConfig struct {
	File        string `mapstructure:"file" yaml:"file"`
	WarnMissing bool   `mapstructure:"warn_missing" yaml:"warn_missing"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the default values keyed by their dotted config path.
func Defaults() map[string]any {
	return map[string]any{
		"settings.file":         "trainer.ini",
		"settings.warn_missing": true,
		"language":              "en",
		"log.level":             "info",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Trainer")
		default:
			configDir = "/etc/trainer"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, "trainer")
	}

	return filepath.Join(configDir, configFileName), nil
}

// BindFlag marks flag name as the source for config key.
func BindFlag(flags *pflag.FlagSet, name, key string) error {
	return flags.SetAnnotation(name, FlagKeyAnnotation, []string{key})
}

// LoadConfig merges defaults, the config file, TRAINER_* environment
// variables and the flags of cmd into T.
//
// When no config file is found the populated T is returned together with a
// viper.ConfigFileNotFoundError so callers can write a default file.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	path := findConfigFile()
	if configFile != nil {
		path = *configFile
	}

	var notFound error
	if path == "" {
		notFound = viper.ConfigFileNotFoundError{}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}

	v.SetEnvPrefix("trainer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// FromDefaults builds T from defaults alone, ignoring the environment and
// flags. This is what gets written as the initial config file.
func FromDefaults[T any](defaults map[string]any) (T, error) {
	var c T
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	err := v.Unmarshal(&c)
	return c, err
}

// findConfigFile returns the first existing trainer.yaml in the user config
// dir, the system config dir or the working directory. Viper's own name
// search is not used: it would also match the settings file trainer.ini.
func findConfigFile() string {
	var candidates []string
	if p, err := GetConfigPath(false); err == nil {
		candidates = append(candidates, p)
	}
	if p, err := GetConfigPath(true); err == nil {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, configFileName)
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	known := v.AllKeys()
	flags.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if keys := f.Annotations[FlagKeyAnnotation]; len(keys) > 0 {
			key = keys[0]
		}
		if !slices.Contains(known, key) {
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return bindErr
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
