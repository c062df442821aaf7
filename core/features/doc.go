// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package features declares the built-in trainer features and the settings
// each of them persists. Only the settings surface lives here; drawing and
// game interaction belong to the host plugin.
package features
