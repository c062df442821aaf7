// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive settings editor. Presentation and
// input handling live here; reading and writing the settings file is left to
// core/settings.
package tui
