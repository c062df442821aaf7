// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"github.com/charmbracelet/log"
)

// Source is the tag attached to every diagnostic the store emits.
const Source = "config"

// Sink receives user-facing diagnostics such as "Loaded <file>".
type Sink interface {
	Log(message, source string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(message, source string)

func (f SinkFunc) Log(message, source string) { f(message, source) }

// LogSink forwards diagnostics to l at info level.
func LogSink(l *log.Logger) Sink {
	return SinkFunc(func(message, source string) {
		l.Info(message, "source", source)
	})
}
