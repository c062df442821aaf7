// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color("#5f5fd7")).
	Padding(0, 1)

var (
	fileStyle     = lipgloss.NewStyle().Faint(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#87afd7"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaf00"))
	valueStyle    = lipgloss.NewStyle()
	statusStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#87d787"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
)

// swatch renders a small block filled with c.
func swatch(c lipgloss.Color) string {
	return lipgloss.NewStyle().Background(c).Render("  ")
}
