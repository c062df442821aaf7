// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides application configuration loading and persistence
// for Trainer. It uses Viper for file/env/flag parsing and goccy/go-yaml to
// write configuration files. The feature settings file itself is handled by
// core/settings; this package only records where it lives.
package config
