// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/trainer/internal/i18n"
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Save   key.Binding
	Reload key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Next, km.Save, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.Next, km.Prev},
		{km.Save, km.Reload, km.Copy},
		{km.Help, km.Quit},
	}
}

// Bindings lists every editor binding; feature toggles may not reuse their keys.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Next, km.Prev, km.Save, km.Reload, km.Copy, km.Help, km.Quit}
}

// KeyMap implements help.KeyMap
var _ help.KeyMap = KeyMap{}

// DefaultKeyMap builds the editor bindings in the current language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("tui.help_up")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("tui.help_down")),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "right", " "),
			key.WithHelp("→/enter", i18n.T("tui.help_toggle")),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", i18n.T("tui.help_prev")),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", i18n.T("tui.help_save")),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T("tui.help_reload")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("tui.help_copy")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("tui.help_help")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("tui.help_quit")),
		),
	}
}
