// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Trainer using Cobra.
// It wires the application config, logging and i18n, then delegates to
// core/settings for every read or write of the feature settings file.
package cli
