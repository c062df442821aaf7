// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/toeirei/trainer/internal/i18n"
)

// Header is written at the top of every saved settings file.
var Header = []string{
	"; Be careful when updating this file :)",
	"; For keys, use the key names listed by `trainer keys`",
	"; Colors are stored as an array of 'RGBA' floats",
}

const (
	commentPrefix = ";"
	maxLineSize   = 1 << 20
	fileMode      = 0o644
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeError reports a settings line whose value could not be decoded.
type DecodeError struct {
	Key  string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("settings: line %d: decoding %s: %v", e.Line, e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store loads and saves feature settings files.
// The zero value is usable and emits no diagnostics.
type Store struct {
	sink Sink
}

// Option configures a Store.
type Option func(*Store)

// WithSink routes load/save diagnostics to s.
func WithSink(s Sink) Option {
	return func(st *Store) { st.sink = s }
}

func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) report(message string) {
	if s == nil || s.sink == nil {
		return
	}
	s.sink.Log(message, Source)
}

// Load reads path and assigns every matching property of features.
//
// A missing file is not an error; it is reported to the sink when
// warnIfMissing is set and the features are left untouched. Properties
// without a line in the file keep their current value.
func (s *Store) Load(path string, features []Feature, warnIfMissing bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if warnIfMissing {
				s.report(i18n.T("settings.not_found", path))
			}
			return nil
		}
		return fmt.Errorf("settings: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := s.Decode(f, features); err != nil {
		return err
	}
	s.report(i18n.T("settings.loaded", path))
	return nil
}

// Decode reads settings lines from r and assigns matching properties.
// Decoding stops at the first malformed value; properties assigned before
// it keep their new values.
func (s *Store) Decode(r io.Reader, features []Feature) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}

	for _, feature := range features {
		prefix := feature.FeatureName() + "."
		for _, p := range feature.Properties() {
			if p.Skip() {
				continue
			}
			key := prefix + p.Name() + "="
			n, value, ok := findLine(lines, key)
			if !ok {
				continue
			}
			if err := p.decode([]byte(value)); err != nil {
				return &DecodeError{Key: strings.TrimSuffix(key, "="), Line: n, Err: err}
			}
		}
	}
	return nil
}

type line struct {
	n    int
	text string
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; sc.Scan(); n++ {
		text := sc.Bytes()
		if n == 1 {
			text = bytes.TrimPrefix(text, utf8BOM)
		}
		text = bytes.TrimSuffix(text, []byte("\r"))
		if len(text) == 0 || bytes.HasPrefix(text, []byte(commentPrefix)) {
			continue
		}
		lines = append(lines, line{n: n, text: string(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("settings: read: %w", err)
	}
	return lines, nil
}

func findLine(lines []line, key string) (int, string, bool) {
	for _, l := range lines {
		if value, ok := strings.CutPrefix(l.text, key); ok {
			return l.n, value, true
		}
	}
	return 0, "", false
}

// Save writes every non-skipped property of features to path, replacing
// any existing file.
func (s *Store) Save(path string, features []Feature) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf, features); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	s.report(i18n.T("settings.saved", path))
	return nil
}

// Encode writes the settings file representation of features to w.
// Output is deterministic: features are ordered by name, properties by
// property name.
func (s *Store) Encode(w io.Writer, features []Feature) error {
	bw := bufio.NewWriter(w)
	for _, h := range Header {
		bw.WriteString(h)
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	for _, feature := range sortedFeatures(features) {
		name := feature.FeatureName()
		wrote := false
		for _, p := range sortedProperties(feature.Properties()) {
			if p.Skip() {
				continue
			}
			value, err := p.encode()
			if err != nil {
				return fmt.Errorf("settings: encoding %s.%s: %w", name, p.Name(), err)
			}
			bw.WriteString(name)
			bw.WriteByte('.')
			bw.WriteString(p.Name())
			bw.WriteByte('=')
			bw.Write(value)
			bw.WriteByte('\n')
			wrote = true
		}
		if wrote {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func sortedFeatures(features []Feature) []Feature {
	sorted := slices.Clone(features)
	slices.SortStableFunc(sorted, func(a, b Feature) int {
		return strings.Compare(a.FeatureName(), b.FeatureName())
	})
	return sorted
}

func sortedProperties(props []Property) []Property {
	sorted := slices.Clone(props)
	slices.SortStableFunc(sorted, func(a, b Property) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return sorted
}
