// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/toeirei/trainer/core/settings"
)

func TestColorCodec_Encode(t *testing.T) {
	cases := []struct {
		in   settings.Color
		want string
	}{
		{settings.RGBA(1, 0, 0, 1), "[1.0,0.0,0.0,1.0]"},
		{settings.RGBA(0.5, 0.25, 0.125, 0), "[0.5,0.25,0.125,0.0]"},
		{settings.RGBA(0.1, 0.92, 0.016, 1), "[0.1,0.92,0.016,1.0]"},
		{settings.RGBA(0.00001, 2, 0, 1), "[0.00001,2.0,0.0,1.0]"},
	}
	for _, tc := range cases {
		got, err := settings.ColorCodec{}.Encode(tc.in)
		if err != nil {
			t.Fatalf("Encode(%v): %v", tc.in, err)
		}
		if string(got) != tc.want {
			t.Fatalf("Encode(%v) = %s, want %s", tc.in, got, tc.want)
		}
		back, err := settings.ColorCodec{}.Decode(got)
		if err != nil {
			t.Fatalf("Decode(%s): %v", got, err)
		}
		if back != tc.in {
			t.Fatalf("round trip %v -> %s -> %v", tc.in, got, back)
		}
	}
}

func TestColorCodec_DecodeErrors(t *testing.T) {
	for _, in := range []string{"[1,0,0]", "[1,0,0,1,1]", "null", "[]"} {
		_, err := settings.ColorCodec{}.Decode([]byte(in))
		if !errors.Is(err, settings.ErrColorArity) {
			t.Fatalf("Decode(%s): expected ErrColorArity, got %v", in, err)
		}
	}
	if _, err := (settings.ColorCodec{}).Decode([]byte(`"red"`)); err == nil {
		t.Fatalf("expected error decoding a string as color")
	}
}

func TestColor_NestedJSON(t *testing.T) {
	type palette struct {
		Main settings.Color     `json:"main"`
		Keys []settings.KeyCode `json:"keys"`
	}
	in := palette{Main: settings.Green, Keys: []settings.KeyCode{settings.KeyA, settings.KeyF12}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"main":[0.0,1.0,0.0,1.0],"keys":["A","F12"]}`
	if string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}
	var out palette
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Main != in.Main || len(out.Keys) != 2 || out.Keys[1] != settings.KeyF12 {
		t.Fatalf("unexpected palette: %+v", out)
	}
}

func TestColor_Hex(t *testing.T) {
	if got := settings.RGBA(1, 0.5, 0, 1).Hex(); got != "#ff8000" {
		t.Fatalf("Hex = %s", got)
	}
	if got := settings.RGBA(-1, 2, 0, 1).Lipgloss(); string(got) != "#00ff00" {
		t.Fatalf("Lipgloss = %s", got)
	}
}

func TestFloatCodecs(t *testing.T) {
	got, err := settings.Float32Codec{}.Encode(3)
	if err != nil || string(got) != "3.0" {
		t.Fatalf("Float32 Encode(3) = %s, %v", got, err)
	}
	got, err = settings.Float64Codec{}.Encode(-0.75)
	if err != nil || string(got) != "-0.75" {
		t.Fatalf("Float64 Encode(-0.75) = %s, %v", got, err)
	}
	v, err := settings.Float32Codec{}.Decode([]byte("12"))
	if err != nil || v != 12 {
		t.Fatalf("Float32 Decode(12) = %v, %v", v, err)
	}
	if _, err := (settings.Float64Codec{}).Encode(inf()); !errors.Is(err, settings.ErrUnsupportedFloat) {
		t.Fatalf("expected ErrUnsupportedFloat, got %v", err)
	}
}

func inf() float64 {
	zero := 0.0
	return 1 / zero
}

func TestJSONCodec(t *testing.T) {
	c := settings.JSONCodec[map[string]int]{}
	data, err := c.Encode(map[string]int{"b": 2, "a": 1})
	if err != nil || string(data) != `{"a":1,"b":2}` {
		t.Fatalf("Encode = %s, %v", data, err)
	}
	m, err := c.Decode([]byte(`{"x":3}`))
	if err != nil || m["x"] != 3 {
		t.Fatalf("Decode = %v, %v", m, err)
	}
	if c.Name() != "json" {
		t.Fatalf("Name = %s", c.Name())
	}
}

func TestPropertySetAndFormat(t *testing.T) {
	var speed float32 = 1
	p := settings.Float32("Speed", &speed)

	if err := p.Set(float32(4)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if speed != 4 || p.Get().(float32) != 4 {
		t.Fatalf("Set did not update the variable: %v", speed)
	}
	if err := p.Set("fast"); !errors.Is(err, settings.ErrPropertyType) {
		t.Fatalf("expected ErrPropertyType, got %v", err)
	}

	text, err := settings.FormatValue(p)
	if err != nil || text != "4.0" {
		t.Fatalf("FormatValue = %q, %v", text, err)
	}
	if err := settings.SetJSON(p, "2.5"); err != nil || speed != 2.5 {
		t.Fatalf("SetJSON: %v (speed=%v)", err, speed)
	}
	if err := settings.SetJSON(p, "fast"); err == nil {
		t.Fatalf("expected SetJSON error for invalid JSON")
	}
	if p.Codec() != "float32" || p.Skip() {
		t.Fatalf("unexpected descriptor: codec=%s skip=%v", p.Codec(), p.Skip())
	}
}
