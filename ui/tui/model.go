// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/trainer/core/features"
	"github.com/toeirei/trainer/core/settings"
	"github.com/toeirei/trainer/internal/i18n"
)

// palette is the set of colors cycled through by the editor.
var palette = []settings.Color{
	settings.White,
	settings.Black,
	settings.Red,
	settings.Green,
	settings.Blue,
	settings.Yellow,
	settings.Clear,
}

// Options configures the editor.
type Options struct {
	Path          string
	Features      []settings.Feature
	WarnIfMissing bool
	// Clipboard receives copied lines; defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the settings editor. It edits Features in place.
type Model struct {
	store    *settings.Store
	path     string
	features []settings.Feature
	entries  []settings.Entry
	cursor   int

	status  string
	failed  bool
	keys    KeyMap
	toggles features.KeyMap
	help    help.Model
	width   int
	height  int
	copy    func(string) error
}

func New(opts Options) *Model {
	m := &Model{
		path:     opts.Path,
		features: opts.Features,
		entries:  settings.Entries(opts.Features),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		copy:     opts.Clipboard,
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	m.rebuildToggles()
	// store messages end up in the status line
	m.store = settings.NewStore(settings.WithSink(settings.SinkFunc(func(message, _ string) {
		m.setStatus(message)
	})))
	return m
}

// Load reads the settings file into the edited features.
func (m *Model) Load(warnIfMissing bool) error {
	err := m.store.Load(m.path, m.features, warnIfMissing)
	if err != nil {
		m.setError(err)
	}
	// key bindings may have changed
	m.rebuildToggles()
	return err
}

func (m *Model) rebuildToggles() {
	m.toggles = features.NewKeyMap(m.features, m.keys.Bindings()...)
}

// Status returns the current status line text.
func (m *Model) Status() string {
	return m.status
}

// Selected returns the entry under the cursor, or the zero Entry when there
// is nothing to edit.
func (m *Model) Selected() settings.Entry {
	if len(m.entries) == 0 {
		return settings.Entry{}
	}
	return m.entries[m.cursor]
}

func (m *Model) setStatus(s string) {
	m.status, m.failed = s, false
}

func (m *Model) setError(err error) {
	m.status, m.failed = i18n.T("tui.status_error", map[string]any{"Error": err.Error()}), true
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = max(min(m.cursor+1, len(m.entries)-1), 0)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Save):
		if err := m.store.Save(m.path, m.features); err != nil {
			m.setError(err)
		}
	case key.Matches(msg, m.keys.Reload):
		_ = m.Load(true)
	case key.Matches(msg, m.keys.Copy):
		m.copyLine()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		if f, ok := m.toggles.Match(msg); ok {
			f.Toggle()
			m.setStatus(i18n.T("tui.status_toggled", map[string]any{"Feature": features.ShortName(f)}))
		}
	}
	return nil
}

// step moves the selected value forward or back by delta.
func (m *Model) step(delta int) {
	if len(m.entries) == 0 {
		return
	}
	e := m.entries[m.cursor]
	var next any
	switch v := e.Property.Get().(type) {
	case bool:
		next = !v
	case settings.KeyCode:
		next = cycle(settings.KeyCodes(), v, delta)
	case settings.Color:
		next = cycle(palette, v, delta)
	case float32:
		next = v + float32(delta)
	case float64:
		next = v + float64(delta)
	case int:
		next = v + delta
	default:
		m.setStatus(i18n.T("tui.status_unsupported", map[string]any{"Key": e.Key}))
		return
	}
	if err := e.Property.Set(next); err != nil {
		m.setError(err)
		return
	}
	if _, ok := next.(settings.KeyCode); ok {
		m.rebuildToggles()
	}
}

// cycle returns the element delta positions away from cur, wrapping around.
// A value not in list starts from the first element.
func cycle[T comparable](list []T, cur T, delta int) T {
	i := slices.Index(list, cur)
	if i < 0 {
		return list[0]
	}
	n := len(list)
	return list[((i+delta)%n+n)%n]
}

func (m *Model) copyLine() {
	if len(m.entries) == 0 {
		return
	}
	e := m.entries[m.cursor]
	value, err := settings.FormatValue(e.Property)
	if err != nil {
		m.setError(err)
		return
	}
	if err := m.copy(e.Key + "=" + value); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(i18n.T("tui.status_copied", map[string]any{"Key": e.Key}))
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(fileStyle.Render(i18n.T("tui.file", map[string]any{"File": m.path})))
	b.WriteString("\n\n")

	labels := make([]string, len(m.entries))
	width := 0
	for i, e := range m.entries {
		labels[i] = features.ShortName(e.Feature) + "." + e.Property.Name()
		width = max(width, lipgloss.Width(labels[i]))
	}

	first, last := m.visibleRange()
	for i := first; i < last; i++ {
		e := m.entries[i]
		label := fmt.Sprintf("%-*s", width, labels[i])
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			label = selectedStyle.Render(label)
		} else {
			label = keyStyle.Render(label)
		}
		b.WriteString(cursor + label + "  " + renderValue(e.Property) + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	if len(m.toggles.Toggles) > 0 {
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.toggles.ShortHelp()))
	}
	return b.String()
}

// reserved counts the lines around the entry list.
const reserved = 8

// visibleRange returns the slice of entries that fits the window, keeping
// the cursor in view.
func (m *Model) visibleRange() (int, int) {
	n := len(m.entries)
	rows := m.height - reserved
	if m.height == 0 || rows >= n {
		return 0, n
	}
	rows = max(rows, 1)
	first := min(max(m.cursor-rows/2, 0), n-rows)
	return first, first + rows
}

func renderValue(p settings.Property) string {
	value, err := settings.FormatValue(p)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	if c, ok := p.Get().(settings.Color); ok {
		return swatch(c.Lipgloss()) + " " + valueStyle.Render(value)
	}
	return valueStyle.Render(value)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
