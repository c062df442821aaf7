// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// isolate runs the test in a fresh directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })
	return tmp
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_SaveWritesDefaults(t *testing.T) {
	tmp := isolate(t)

	if _, err := execute(t, "save"); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(tmp, "trainer.ini"))
	if err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "; Be careful when updating this file :)\n") {
		t.Fatalf("missing header:\n%s", text)
	}
	for _, want := range []string{
		"Trainer.Features.Commands.Key=\"RightAlt\"\n",
		"Trainer.Features.Crosshair.Color=[1.0,0.0,0.0,1.0]\n",
		"Trainer.Features.Overlay.Labels=[\"name\",\"distance\"]\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Visible") {
		t.Errorf("skipped property written:\n%s", text)
	}

	// first run also writes the application config
	if _, err := os.Stat(filepath.Join(tmp, "trainer", "trainer.yaml")); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestRootCmd_SetThenGet(t *testing.T) {
	isolate(t)

	out, err := execute(t, "set", "Trainer.Features.Crosshair.Enabled", "true")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if strings.TrimSpace(out) != "Trainer.Features.Crosshair.Enabled = true" {
		t.Fatalf("set output = %q", out)
	}

	out, err = execute(t, "get", "Trainer.Features.Crosshair.Enabled")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("get output = %q", out)
	}

	if _, err := execute(t, "set", "Trainer.Features.Hud.Key", `"F3"`); err != nil {
		t.Fatalf("set key: %v", err)
	}
	out, _ = execute(t, "get", "Trainer.Features.Hud.Key")
	if strings.TrimSpace(out) != `"F3"` {
		t.Fatalf("get key = %q", out)
	}
}

func TestRootCmd_SetRejectsBadValues(t *testing.T) {
	isolate(t)

	if _, err := execute(t, "set", "Trainer.Features.Hud.Key", `"Banana"`); err == nil {
		t.Fatal("expected error for unknown key name")
	}
	if _, err := execute(t, "set", "Trainer.Features.Hud.Color", `[1.0,0.0]`); err == nil {
		t.Fatal("expected error for short color")
	}
	_, err := execute(t, "get", "Trainer.Features.Nope.Enabled")
	if err == nil || !strings.Contains(err.Error(), "Unknown setting") {
		t.Fatalf("expected unknown setting error, got %v", err)
	}
	if _, err := os.Stat("trainer.ini"); err == nil {
		t.Fatal("failed set must not write the settings file")
	}
}

func TestRootCmd_SettingsFlagOverridesPath(t *testing.T) {
	tmp := isolate(t)
	custom := filepath.Join(tmp, "custom.ini")

	if _, err := execute(t, "--settings", custom, "save"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(custom); err != nil {
		t.Fatalf("custom settings file not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "trainer.ini")); err == nil {
		t.Fatal("default settings file should not be written")
	}
}

func TestRootCmd_FirstRunConfigHoldsDefaultsOnly(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("TRAINER_LOG_LEVEL", "debug")

	if _, err := execute(t, "--settings", "scratch.ini", "save", "--defaults"); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(tmp, "trainer", "trainer.yaml"))
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "scratch.ini") || !strings.Contains(text, "file: trainer.ini") {
		t.Fatalf("--settings leaked into the config file:\n%s", text)
	}
	if !strings.Contains(text, "level: info") {
		t.Fatalf("TRAINER_LOG_LEVEL leaked into the config file:\n%s", text)
	}

	// a later run without the flag goes back to the default settings file
	if _, err := execute(t, "save", "--defaults"); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "trainer.ini")); err != nil {
		t.Fatalf("default settings file not used on the next run: %v", err)
	}
}

func TestRootCmd_ShowText(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("trainer.ini", []byte("Trainer.Features.Commands.X=12.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != `Trainer.Features.Commands.Key="RightAlt"` {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(out, "Trainer.Features.Commands.X=12.5\n") {
		t.Fatalf("loaded value not shown:\n%s", out)
	}
}

func TestRootCmd_ShowYAML(t *testing.T) {
	isolate(t)

	out, err := execute(t, "show", "-o", "yaml")
	if err != nil {
		t.Fatalf("show yaml: %v", err)
	}
	for _, want := range []string{"Trainer.Features.Commands:", "Key: RightAlt", "Trainer.Features.Overlay:"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Trainer.Features.Commands:") > strings.Index(out, "Trainer.Features.Overlay:") {
		t.Errorf("features out of order:\n%s", out)
	}

	if _, err := execute(t, "show", "-o", "xml"); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestRootCmd_Keys(t *testing.T) {
	isolate(t)

	out, err := execute(t, "keys")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if !strings.HasPrefix(out, "None\n") {
		t.Fatalf("keys should start with None:\n%s", out)
	}
	for _, want := range []string{"H\t\"h\"\n", "RightAlt\n", "F3\t\"f3\"\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("keys output missing %q", want)
		}
	}
}

func TestRootCmd_NoTerminalPrintsHelp(t *testing.T) {
	isolate(t)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if !strings.Contains(out, "Available Commands") {
		t.Fatalf("expected help output, got:\n%s", out)
	}
}

func TestGetConfigPathFromCli(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "trainer.yaml")
	if err := os.WriteFile(file, []byte("language: en\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	newCmd := func(args ...string) *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().String("config", "", "")
		if err := cmd.Flags().Parse(args); err != nil {
			t.Fatal(err)
		}
		return cmd
	}

	if p, err := getConfigPathFromCli(newCmd()); err != nil || p != nil {
		t.Fatalf("unset flag: got %v, %v", p, err)
	}
	if p, err := getConfigPathFromCli(newCmd("--config", file)); err != nil || p == nil || *p != file {
		t.Fatalf("existing file: got %v, %v", p, err)
	}
	if _, err := getConfigPathFromCli(newCmd("--config", filepath.Join(tmp, "missing.yaml"))); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestResolveBuildVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, gitCommit, buildDate
	t.Cleanup(func() { version, gitCommit, buildDate = origVersion, origCommit, origDate })

	version, gitCommit, buildDate = "dev", "dev", ""
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" || c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("got %q %q %q", v, c, d)
	}

	// (devel) builds fall back to the ldflags commit
	gitCommit = "deadbee"
	v, c, _ = resolveBuildVersion(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if v != "deadbee" || c != "deadbee" {
		t.Fatalf("got %q %q", v, c)
	}
}
