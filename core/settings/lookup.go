// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by Lookup when no feature declares the key.
var ErrUnknownKey = errors.New("settings: unknown key")

// Entry pairs a settings key with the property it addresses.
type Entry struct {
	Key      string
	Feature  Feature
	Property Property
}

// Entries lists every non-skipped property of features in file order.
func Entries(features []Feature) []Entry {
	var entries []Entry
	for _, f := range sortedFeatures(features) {
		for _, p := range sortedProperties(f.Properties()) {
			if p.Skip() {
				continue
			}
			entries = append(entries, Entry{
				Key:      f.FeatureName() + "." + p.Name(),
				Feature:  f,
				Property: p,
			})
		}
	}
	return entries
}

// Lookup resolves "<FeatureName>.<PropertyName>" to its entry.
func Lookup(features []Feature, key string) (Entry, error) {
	for _, f := range features {
		for _, p := range f.Properties() {
			if !p.Skip() && f.FeatureName()+"."+p.Name() == key {
				return Entry{Key: key, Feature: f, Property: p}, nil
			}
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}
