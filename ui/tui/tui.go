// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/trainer/internal/logging"
)

// Run opens the editor on the alternate screen and blocks until it exits.
// A malformed settings file is reported in the status line instead of
// aborting, so it can be fixed and saved from the editor.
func Run(opts Options) error {
	// log lines would corrupt the alt screen
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	m := New(opts)
	_ = m.Load(opts.WarnIfMissing)

	_, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	).Run()
	return err
}
