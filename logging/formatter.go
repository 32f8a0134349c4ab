package logging

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const (
	csi   = "\x1b["
	reset = "\x1b[0m"
)

// consoleFormatter renders entries as "LEVEL:    message", coloring the
// first line per the active scheme when the destination is an interactive
// terminal. Continuation lines of a multi-line message are left uncolored
// and indented under the first.
type consoleFormatter struct {
	scheme    Scheme
	showLevel bool
	// color forces coloring on or off; nil means autodetect from the
	// logger output.
	color *bool
}

func (f *consoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	msg := entry.Message
	var prefix string
	if f.showLevel {
		prefix = fmt.Sprintf("%-10s", levelLabel(entry.Level)+":")
	} else {
		prefix = strings.Repeat(" ", 4)
	}

	lines := strings.Split(msg, "\n")
	first := prefix + lines[0]
	if f.colorized(entry) {
		if a, ok := f.scheme.Levels[entry.Level]; ok {
			first = colorize(first, a)
		}
	}

	var b bytes.Buffer
	b.WriteString(first)
	indent := strings.Repeat(" ", len(prefix))
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(line)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *consoleFormatter) colorized(entry *logrus.Entry) bool {
	if f.color != nil {
		return *f.color
	}
	if entry.Logger == nil {
		return false
	}
	return isTerminal(entry.Logger.Out)
}

func isTerminal(w io.Writer) bool {
	type fder interface{ Fd() uintptr }
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// colorize wraps s in the SGR sequence for the given attributes.
func colorize(s string, a attrs) string {
	var params []string
	if idx, ok := colorIndex[a.Background]; ok {
		params = append(params, strconv.Itoa(idx+40))
	}
	if idx, ok := colorIndex[a.Foreground]; ok {
		params = append(params, strconv.Itoa(idx+30))
	}
	if a.Bold {
		params = append(params, "1")
	}
	if len(params) == 0 {
		return s
	}
	return csi + strings.Join(params, ";") + "m" + s + reset
}

// plainFormatter is the uncolored console layout, used for file sinks.
type plainFormatter struct {
	showLevel bool
}

func (f *plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	cf := consoleFormatter{showLevel: f.showLevel, color: new(bool)}
	return cf.Format(entry)
}

func levelLabel(level logrus.Level) string {
	if level == logrus.FatalLevel {
		return "CRITICAL"
	}
	return strings.ToUpper(level.String())
}
