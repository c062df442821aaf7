// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package features

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/trainer/core/settings"
	"github.com/toeirei/trainer/internal/i18n"
)

// ToggleBinding pairs a feature with the binding built from its key.
type ToggleBinding struct {
	Feature Toggleable
	Binding key.Binding
}

// KeyMap holds the toggle bindings of a feature set.
type KeyMap struct {
	Toggles []ToggleBinding
}

// NewKeyMap builds toggle bindings for every Toggleable feature whose key can
// be reported by a terminal. Features bound to a key of any reserved binding
// are left out, the reserved binding always wins.
func NewKeyMap(list []settings.Feature, reserved ...key.Binding) KeyMap {
	taken := map[string]bool{}
	for _, b := range reserved {
		for _, k := range b.Keys() {
			taken[k] = true
		}
	}

	var km KeyMap
	for _, f := range list {
		t, ok := f.(Toggleable)
		if !ok {
			continue
		}
		b := t.ToggleKey().Binding(i18n.T("tui.toggle_feature", map[string]any{"Feature": ShortName(f)}))
		if !b.Enabled() || slices.ContainsFunc(b.Keys(), func(k string) bool { return taken[k] }) {
			continue
		}
		km.Toggles = append(km.Toggles, ToggleBinding{Feature: t, Binding: b})
	}
	return km
}

// Match returns the feature whose binding matches msg.
func (km KeyMap) Match(msg fmt.Stringer) (Toggleable, bool) {
	for _, tb := range km.Toggles {
		if key.Matches(msg, tb.Binding) {
			return tb.Feature, true
		}
	}
	return nil, false
}

func (km KeyMap) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(km.Toggles))
	for _, tb := range km.Toggles {
		bindings = append(bindings, tb.Binding)
	}
	return bindings
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// KeyMap implements help.KeyMap
var _ help.KeyMap = KeyMap{}
