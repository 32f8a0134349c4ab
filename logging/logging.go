// Package logging provides the leveled console logger used across ctlkit
// front-ends: level-dependent colors on interactive terminals, selectable
// color schemes, and an optional plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configures a Logger. The zero value logs everything to stderr
// with the default scheme and no file sink.
type Options struct {
	// File, when non-empty, receives an uncolored copy of every emitted
	// entry. The file is created if missing and appended to otherwise.
	File string `yaml:"file"`

	// Level is the minimum severity to emit: debug, info, warning, error,
	// or critical. Empty means debug.
	Level string `yaml:"level"`

	// Scheme names the color palette. Empty means "default".
	Scheme string `yaml:"scheme"`

	// HideLevel drops the level prefix from console output.
	HideLevel bool `yaml:"hide_level"`
}

// Logger is a leveled console logger with colored output. It embeds a
// logrus.Logger, so the usual Debug/Info/Warn/Error family is available
// directly; Critical logs at the highest severity without terminating the
// process.
type Logger struct {
	*logrus.Logger

	formatter *consoleFormatter
	file      *os.File
}

// New builds a Logger from opts, writing console output to stderr.
func New(opts Options) (*Logger, error) {
	return NewWithOutput(os.Stderr, opts)
}

// NewWithOutput is New with an explicit console destination.
func NewWithOutput(out io.Writer, opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	schemeName := opts.Scheme
	if schemeName == "" {
		schemeName = "default"
	}
	scheme := GetScheme(schemeName)
	if scheme == nil {
		return nil, fmt.Errorf("unknown color scheme: %s", schemeName)
	}

	formatter := &consoleFormatter{
		scheme:    *scheme,
		showLevel: !opts.HideLevel,
	}

	inner := logrus.New()
	inner.SetOutput(out)
	inner.SetLevel(level)
	inner.SetFormatter(formatter)

	l := &Logger{Logger: inner, formatter: formatter}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		inner.AddHook(&fileHook{
			out:       f,
			formatter: &plainFormatter{showLevel: !opts.HideLevel},
		})
	}

	return l, nil
}

// ParseLevel converts a verbosity name to a logrus level. Recognized names
// are debug, info, warning, error, and critical; empty means debug.
func ParseLevel(name string) (logrus.Level, error) {
	switch strings.ToLower(name) {
	case "", "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	case "critical":
		return logrus.FatalLevel, nil
	}
	return logrus.DebugLevel, fmt.Errorf("unknown log level: %s", name)
}

// Critical logs at the highest severity. Unlike logrus.Fatal it does not
// exit the process.
func (l *Logger) Critical(args ...any) {
	l.Log(logrus.FatalLevel, args...)
}

// Criticalf logs a formatted message at the highest severity.
func (l *Logger) Criticalf(format string, args ...any) {
	l.Logf(logrus.FatalLevel, format, args...)
}

// SetScheme switches the active color scheme.
func (l *Logger) SetScheme(name string) error {
	s := GetScheme(name)
	if s == nil {
		return fmt.Errorf("unknown color scheme: %s", name)
	}
	l.formatter.scheme = *s
	return nil
}

// ShowLevel toggles the level prefix on console output.
func (l *Logger) ShowLevel(show bool) {
	l.formatter.showLevel = show
}

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// fileHook copies every emitted entry to a secondary sink, formatted
// without color.
type fileHook struct {
	out       io.Writer
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(b)
	return err
}
