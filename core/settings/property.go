// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"errors"
	"fmt"
)

// ErrPropertyType is returned by Property.Set when the value has the wrong type.
var ErrPropertyType = errors.New("settings: value has the wrong type for property")

// Feature is implemented by every component whose settings are persisted.
type Feature interface {
	// FeatureName is the fully-qualified type name used as key prefix.
	FeatureName() string
	// Properties lists the configurable properties of the feature. The
	// returned descriptors access the live feature, so decoding a value
	// through them updates the feature in place.
	Properties() []Property
}

// Property describes one configurable value of a Feature.
type Property interface {
	Name() string
	// Codec names the codec used for the value ("json", "color", ...).
	Codec() string
	// Skip reports whether the property is excluded from the settings file.
	Skip() bool
	Get() any
	Set(v any) error

	encode() ([]byte, error)
	decode(data []byte) error
}

// PropertyOption adjusts a property descriptor.
type PropertyOption func(*propertyOptions)

type propertyOptions struct {
	skip bool
}

// Skip excludes the property from both Save and Load.
func Skip() PropertyOption {
	return func(o *propertyOptions) { o.skip = true }
}

type property[T any] struct {
	name  string
	get   func() T
	set   func(T)
	codec Codec[T]
	opts  propertyOptions
}

// Accessor declares a property backed by a getter/setter pair.
func Accessor[T any](name string, get func() T, set func(T), codec Codec[T], opts ...PropertyOption) Property {
	p := &property[T]{name: name, get: get, set: set, codec: codec}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Var declares a property stored directly in *ptr.
func Var[T any](name string, ptr *T, codec Codec[T], opts ...PropertyOption) Property {
	return Accessor(name,
		func() T { return *ptr },
		func(v T) { *ptr = v },
		codec, opts...)
}

func Bool(name string, ptr *bool, opts ...PropertyOption) Property {
	return Var(name, ptr, JSONCodec[bool]{}, opts...)
}

func Int(name string, ptr *int, opts ...PropertyOption) Property {
	return Var(name, ptr, JSONCodec[int]{}, opts...)
}

func String(name string, ptr *string, opts ...PropertyOption) Property {
	return Var(name, ptr, JSONCodec[string]{}, opts...)
}

func Float32(name string, ptr *float32, opts ...PropertyOption) Property {
	return Var(name, ptr, Float32Codec{}, opts...)
}

func Float64(name string, ptr *float64, opts ...PropertyOption) Property {
	return Var(name, ptr, Float64Codec{}, opts...)
}

func ColorVar(name string, ptr *Color, opts ...PropertyOption) Property {
	return Var(name, ptr, ColorCodec{}, opts...)
}

func KeyVar(name string, ptr *KeyCode, opts ...PropertyOption) Property {
	return Var(name, ptr, KeyCodeCodec{}, opts...)
}

// JSON declares a property of any JSON-encodable type.
func JSON[T any](name string, ptr *T, opts ...PropertyOption) Property {
	return Var(name, ptr, JSONCodec[T]{}, opts...)
}

func (p *property[T]) Name() string  { return p.name }
func (p *property[T]) Codec() string { return p.codec.Name() }
func (p *property[T]) Skip() bool    { return p.opts.skip }
func (p *property[T]) Get() any      { return p.get() }

func (p *property[T]) Set(v any) error {
	t, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: %s wants %T, got %T", ErrPropertyType, p.name, *new(T), v)
	}
	p.set(t)
	return nil
}

func (p *property[T]) encode() ([]byte, error) {
	return p.codec.Encode(p.get())
}

func (p *property[T]) decode(data []byte) error {
	v, err := p.codec.Decode(data)
	if err != nil {
		return err
	}
	p.set(v)
	return nil
}
