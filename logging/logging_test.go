package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    logrus.Level
		wantErr bool
	}{
		{"empty defaults to debug", "", logrus.DebugLevel, false},
		{"debug", "debug", logrus.DebugLevel, false},
		{"info", "info", logrus.InfoLevel, false},
		{"warning", "warning", logrus.WarnLevel, false},
		{"warn alias", "warn", logrus.WarnLevel, false},
		{"error", "error", logrus.ErrorLevel, false},
		{"critical", "critical", logrus.FatalLevel, false},
		{"mixed case", "WARNING", logrus.WarnLevel, false},
		{"unknown", "loud", logrus.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuiltinSchemes(t *testing.T) {
	schemes := BuiltinSchemes()
	if len(schemes) == 0 {
		t.Fatal("expected at least one builtin scheme")
	}

	levels := []logrus.Level{
		logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel,
		logrus.ErrorLevel, logrus.FatalLevel,
	}
	names := map[string]bool{}
	for _, s := range schemes {
		if s.Name == "" {
			t.Error("scheme has empty name")
		}
		for _, level := range levels {
			if _, ok := s.Levels[level]; !ok {
				t.Errorf("scheme %q missing attributes for level %v", s.Name, level)
			}
		}
		names[s.Name] = true
	}

	expected := []string{"default", "cyan-info", "mono-info", "bright"}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("missing expected scheme: %s", name)
		}
	}
}

func TestGetScheme(t *testing.T) {
	if GetScheme("default") == nil {
		t.Fatal("expected to find 'default' scheme")
	}
	if GetScheme("CYAN-INFO") == nil {
		t.Fatal("expected case-insensitive match")
	}

	mono := GetScheme("mono-info")
	if mono == nil {
		t.Fatal("expected to find 'mono-info' scheme")
	}
	if got := mono.Levels[logrus.InfoLevel].Foreground; got != "white" {
		t.Errorf("mono-info info foreground = %q, want %q", got, "white")
	}
	if GetScheme("nonexistent") != nil {
		t.Error("expected nil for nonexistent scheme")
	}
}

func TestColorize(t *testing.T) {
	tests := []struct {
		name string
		a    attrs
		want string
	}{
		{"foreground only", attrs{Foreground: "green"}, "\x1b[32mmsg\x1b[0m"},
		{"bold foreground", attrs{Foreground: "red", Bold: true}, "\x1b[31;1mmsg\x1b[0m"},
		{"background and foreground", attrs{Background: "red", Foreground: "white", Bold: true}, "\x1b[41;37;1mmsg\x1b[0m"},
		{"no attributes", attrs{}, "msg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorize("msg", tt.a); got != tt.want {
				t.Errorf("colorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterPlain(t *testing.T) {
	off := false
	f := &consoleFormatter{scheme: *GetScheme("default"), showLevel: true, color: &off}

	entry := &logrus.Entry{Level: logrus.InfoLevel, Message: "hello"}
	b, err := f.Format(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != "INFO:     hello\n" {
		t.Errorf("Format() = %q, want %q", got, "INFO:     hello\n")
	}

	entry = &logrus.Entry{Level: logrus.FatalLevel, Message: "boom"}
	b, err = f.Format(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != "CRITICAL: boom\n" {
		t.Errorf("Format() = %q, want %q", got, "CRITICAL: boom\n")
	}
}

func TestFormatterColorsFirstLineOnly(t *testing.T) {
	on := true
	f := &consoleFormatter{scheme: *GetScheme("default"), showLevel: true, color: &on}

	entry := &logrus.Entry{Level: logrus.InfoLevel, Message: "first\nsecond"}
	b, err := f.Format(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(b))
	}
	if lines[0] != "\x1b[32mINFO:     first\x1b[0m" {
		t.Errorf("first line = %q, want colored", lines[0])
	}
	if strings.Contains(lines[1], "\x1b[") {
		t.Errorf("continuation line should be uncolored, got %q", lines[1])
	}
	if lines[1] != "          second" {
		t.Errorf("continuation line = %q, want indented under the message", lines[1])
	}
}

func TestFormatterHideLevel(t *testing.T) {
	off := false
	f := &consoleFormatter{scheme: *GetScheme("default"), showLevel: false, color: &off}

	entry := &logrus.Entry{Level: logrus.WarnLevel, Message: "quiet"}
	b, err := f.Format(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != "    quiet\n" {
		t.Errorf("Format() = %q, want %q", got, "    quiet\n")
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOutput(&buf, Options{Level: "warning"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Debug("dropped")
	l.Info("also dropped")
	l.Warn("kept")
	l.Error("kept too")
	l.Critical("and this")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	for _, want := range []string{"WARNING:", "kept", "ERROR:", "kept too", "CRITICAL:", "and this"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestNewUnknownScheme(t *testing.T) {
	if _, err := NewWithOutput(&bytes.Buffer{}, Options{Scheme: "neon"}); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestNewUnknownLevel(t *testing.T) {
	if _, err := NewWithOutput(&bytes.Buffer{}, Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestShowLevelToggle(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOutput(&buf, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Info("with prefix")
	l.ShowLevel(false)
	l.Info("without prefix")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "INFO:") {
		t.Errorf("first line = %q, want INFO: prefix", lines[0])
	}
	if strings.Contains(lines[1], "INFO:") {
		t.Errorf("second line = %q, want no level prefix", lines[1])
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctlkit.log")

	var buf bytes.Buffer
	l, err := NewWithOutput(&buf, Options{File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Info("to both sinks")
	l.Error("an error line")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"INFO:     to both sinks", "ERROR:    an error line"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q: %q", want, content)
		}
	}
	if strings.Contains(content, "\x1b[") {
		t.Errorf("log file should be uncolored, got %q", content)
	}
}

func TestSetScheme(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOutput(&buf, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.SetScheme("cyan-info"); err != nil {
		t.Errorf("SetScheme(cyan-info): %v", err)
	}
	if err := l.SetScheme("nonexistent"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	config := "file: /tmp/out.log\nlevel: warning\nscheme: cyan-info\nhide_level: true\n"
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.File != "/tmp/out.log" {
		t.Errorf("File = %q, want %q", opts.File, "/tmp/out.log")
	}
	if opts.Level != "warning" {
		t.Errorf("Level = %q, want %q", opts.Level, "warning")
	}
	if opts.Scheme != "cyan-info" {
		t.Errorf("Scheme = %q, want %q", opts.Scheme, "cyan-info")
	}
	if !opts.HideLevel {
		t.Error("HideLevel = false, want true")
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadOptionsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("level: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
