// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ErrColorArity is returned when a stored color is not a 4 element array.
var ErrColorArity = errors.New("settings: color must be an array of 4 floats")

// Color is an RGBA color with channels in the 0..1 range.
type Color struct {
	R, G, B, A float32
}

// RGBA builds a Color from its four channels.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors used as feature defaults.
var (
	White  = RGBA(1, 1, 1, 1)
	Black  = RGBA(0, 0, 0, 1)
	Red    = RGBA(1, 0, 0, 1)
	Green  = RGBA(0, 1, 0, 1)
	Blue   = RGBA(0, 0, 1, 1)
	Yellow = RGBA(1, 0.92, 0.016, 1)
	Clear  = RGBA(0, 0, 0, 0)
)

// MarshalJSON writes the color as [r,g,b,a].
func (c Color) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 32)
	buf = append(buf, '[')
	for i, ch := range [4]float32{c.R, c.G, c.B, c.A} {
		if i > 0 {
			buf = append(buf, ',')
		}
		var err error
		if buf, err = appendFloat(buf, float64(ch), 32); err != nil {
			return nil, err
		}
	}
	return append(buf, ']'), nil
}

// UnmarshalJSON reads a [r,g,b,a] array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var channels []float32
	if err := json.Unmarshal(data, &channels); err != nil {
		return err
	}
	if len(channels) != 4 {
		return fmt.Errorf("%w, got %d", ErrColorArity, len(channels))
	}
	*c = Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}
	return nil
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// Lipgloss converts the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func channelByte(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}

// ColorCodec stores a Color as a 4 element float array.
type ColorCodec struct{}

func (ColorCodec) Name() string { return "color" }

func (ColorCodec) Encode(c Color) ([]byte, error) {
	return c.MarshalJSON()
}

func (ColorCodec) Decode(data []byte) (Color, error) {
	var c Color
	err := c.UnmarshalJSON(data)
	return c, err
}
