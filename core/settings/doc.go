// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package settings persists feature properties to a flat key/value text file.
//
// Every line of a settings file is either a comment (leading ';'), blank, or
// a directive of the form
//
//	<FeatureName>.<PropertyName>=<json>
//
// Features describe their configurable properties statically through the
// Feature interface; each property carries the Codec used for its value so
// no runtime type inspection is needed. Colors are written as an [r,g,b,a]
// float array and key bindings as their KeyCode name.
package settings
