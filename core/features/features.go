// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package features

import (
	"strings"

	"github.com/toeirei/trainer/core/settings"
)

// Namespace prefixes every built-in feature name.
const Namespace = "Trainer.Features."

// Toggleable is implemented by features that can be switched on and off
// with a bound key.
type Toggleable interface {
	settings.Feature
	ToggleKey() settings.KeyCode
	Toggle()
}

// Crosshair draws a reticle in the middle of the screen.
type Crosshair struct {
	Enabled   bool
	Key       settings.KeyCode
	Color     settings.Color
	Size      float32
	Thickness float32
}

func NewCrosshair() *Crosshair {
	return &Crosshair{
		Key:       settings.KeyNone,
		Color:     settings.Red,
		Size:      10,
		Thickness: 2,
	}
}

func (c *Crosshair) FeatureName() string { return Namespace + "Crosshair" }

func (c *Crosshair) Properties() []settings.Property {
	return []settings.Property{
		settings.Bool("Enabled", &c.Enabled),
		settings.KeyVar("Key", &c.Key),
		settings.ColorVar("Color", &c.Color),
		settings.Float32("Size", &c.Size),
		settings.Float32("Thickness", &c.Thickness),
	}
}

func (c *Crosshair) ToggleKey() settings.KeyCode { return c.Key }
func (c *Crosshair) Toggle()                     { c.Enabled = !c.Enabled }

// Hud shows ammunition, fire mode and an optional compass.
type Hud struct {
	Enabled     bool
	Key         settings.KeyCode
	Color       settings.Color
	ShowCompass bool
}

func NewHud() *Hud {
	return &Hud{
		Key:         settings.KeyNone,
		Color:       settings.White,
		ShowCompass: true,
	}
}

func (h *Hud) FeatureName() string { return Namespace + "Hud" }

func (h *Hud) Properties() []settings.Property {
	return []settings.Property{
		settings.Bool("Enabled", &h.Enabled),
		settings.KeyVar("Key", &h.Key),
		settings.ColorVar("Color", &h.Color),
		settings.Bool("ShowCompass", &h.ShowCompass),
	}
}

func (h *Hud) ToggleKey() settings.KeyCode { return h.Key }
func (h *Hud) Toggle()                     { h.Enabled = !h.Enabled }

// Overlay labels other players within MaxDistance.
type Overlay struct {
	Enabled     bool
	Key         settings.KeyCode
	FriendColor settings.Color
	EnemyColor  settings.Color
	MaxDistance float32
	Labels      []string
}

func NewOverlay() *Overlay {
	return &Overlay{
		Key:         settings.KeyNone,
		FriendColor: settings.Green,
		EnemyColor:  settings.Red,
		MaxDistance: 200,
		Labels:      []string{"name", "distance"},
	}
}

func (o *Overlay) FeatureName() string { return Namespace + "Overlay" }

func (o *Overlay) Properties() []settings.Property {
	return []settings.Property{
		settings.Bool("Enabled", &o.Enabled),
		settings.KeyVar("Key", &o.Key),
		settings.ColorVar("FriendColor", &o.FriendColor),
		settings.ColorVar("EnemyColor", &o.EnemyColor),
		settings.Float32("MaxDistance", &o.MaxDistance),
		settings.JSON("Labels", &o.Labels),
	}
}

func (o *Overlay) ToggleKey() settings.KeyCode { return o.Key }
func (o *Overlay) Toggle()                     { o.Enabled = !o.Enabled }

// Commands is the in-game command console. Its position is persisted, its
// visibility is not.
type Commands struct {
	Key     settings.KeyCode
	X       float32
	Y       float32
	Visible bool
}

func NewCommands() *Commands {
	return &Commands{
		Key: settings.KeyRightAlt,
		X:   40,
		Y:   20,
	}
}

func (c *Commands) FeatureName() string { return Namespace + "Commands" }

func (c *Commands) Properties() []settings.Property {
	return []settings.Property{
		settings.KeyVar("Key", &c.Key),
		settings.Float32("X", &c.X),
		settings.Float32("Y", &c.Y),
		settings.Bool("Visible", &c.Visible, settings.Skip()),
	}
}

func (c *Commands) ToggleKey() settings.KeyCode { return c.Key }
func (c *Commands) Toggle()                     { c.Visible = !c.Visible }

// Defaults returns freshly defaulted instances of every built-in feature.
func Defaults() []settings.Feature {
	return []settings.Feature{
		NewCommands(),
		NewCrosshair(),
		NewHud(),
		NewOverlay(),
	}
}

// Find returns the feature called name, or nil.
func Find(list []settings.Feature, name string) settings.Feature {
	for _, f := range list {
		if f.FeatureName() == name {
			return f
		}
	}
	return nil
}

// ShortName strips Namespace from a feature name.
func ShortName(f settings.Feature) string {
	return strings.TrimPrefix(f.FeatureName(), Namespace)
}
