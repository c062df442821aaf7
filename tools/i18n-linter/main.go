// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the message ids used in the
// source tree. Ids missing from a locale fail the run; ids no code uses are
// reported as orphaned.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// usedKeyRe matches i18n.T("id", ...) calls.
var usedKeyRe = regexp.MustCompile(`i18n\.T\(\s*"([^"]+)"`)

// Report is the result of a lint run.
type Report struct {
	Orphaned []string
	// Missing maps a locale file to the ids it lacks.
	Missing map[string][]string
}

// OK reports whether every locale carries every used id.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

func main() {
	report, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	report.Print(os.Stdout)
	if !report.OK() {
		os.Exit(1)
	}
}

func lint(root, locales string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return Report{}, err
	}

	report := Report{Missing: map[string][]string{}}
	for key := range primary {
		if _, ok := used[key]; !ok {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	slices.Sort(report.Orphaned)

	// every used id must exist in every locale, the primary one included
	for _, file := range files {
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for key := range used {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if filepath.Base(file) != primaryLocale {
			for key := range primary {
				if _, ok := keys[key]; !ok && !slices.Contains(missing, key) {
					missing = append(missing, key)
				}
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			report.Missing[filepath.Base(file)] = missing
		}
	}
	return report, nil
}

// Print writes a human readable summary of r.
func (r Report) Print(w io.Writer) {
	locales := make([]string, 0, len(r.Missing))
	for l := range r.Missing {
		locales = append(locales, l)
	}
	slices.Sort(locales)
	for _, l := range locales {
		for _, key := range r.Missing[l] {
			fmt.Fprintf(w, "missing  %s: %s\n", l, key)
		}
	}
	for _, key := range r.Orphaned {
		fmt.Fprintf(w, "orphaned %s\n", key)
	}
	if r.OK() && len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "all translation files are consistent")
	}
}

// findUsedKeys scans non-test .go files below root for i18n.T calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (d.Name() == "tools" || strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML joins nested map keys with dots.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, v, keys)
	}
}
