// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Trainer.
//
// Usage:
//
//	go run . [flags]
//	./trainer [command] [flags]
//
// Without a command on a terminal it opens the settings editor. See --help
// for the available commands.
package main

import (
	"os"

	"github.com/toeirei/trainer/internal/logging"
	"github.com/toeirei/trainer/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
