// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedFloat is returned when a NaN or infinite value is encoded.
var ErrUnsupportedFloat = errors.New("settings: NaN and infinite values cannot be stored")

// Codec encodes and decodes values of one type to and from their JSON text.
type Codec[T any] interface {
	// Name identifies the codec in diagnostics and listings.
	Name() string
	// Encode returns the compact JSON representation of v.
	Encode(v T) ([]byte, error)
	// Decode parses data into a value of T.
	Decode(data []byte) (T, error)
}

// JSONCodec is the structural fallback used for every type without a
// dedicated codec.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Name() string { return "json" }

func (JSONCodec[T]) Encode(v T) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// Float32Codec writes float32 values with at least one decimal place so
// that whole numbers stay recognisable as floats in the file (1.0, not 1).
type Float32Codec struct{}

func (Float32Codec) Name() string { return "float32" }

func (Float32Codec) Encode(v float32) ([]byte, error) {
	return appendFloat(nil, float64(v), 32)
}

func (Float32Codec) Decode(data []byte) (float32, error) {
	var v float32
	err := json.Unmarshal(data, &v)
	return v, err
}

// Float64Codec is the float64 counterpart of Float32Codec.
type Float64Codec struct{}

func (Float64Codec) Name() string { return "float64" }

func (Float64Codec) Encode(v float64) ([]byte, error) {
	return appendFloat(nil, v, 64)
}

func (Float64Codec) Decode(data []byte) (float64, error) {
	var v float64
	err := json.Unmarshal(data, &v)
	return v, err
}

func appendFloat(dst []byte, f float64, bitSize int) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrUnsupportedFloat
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if strings.ContainsAny(s, "e") {
		// exponent form is valid JSON but unreadable for hand edits
		s = strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return append(dst, s...), nil
}

// FormatValue returns the encoded JSON text of p's current value.
func FormatValue(p Property) (string, error) {
	data, err := p.encode()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetJSON decodes text with p's codec and assigns the result.
func SetJSON(p Property, text string) error {
	if err := p.decode([]byte(text)); err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}
	return nil
}
