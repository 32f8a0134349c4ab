package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// attrs describes how one log level is rendered on a color terminal.
type attrs struct {
	Background string
	Foreground string
	Bold       bool
}

// Scheme is a named palette mapping log levels to display attributes.
type Scheme struct {
	Name        string
	Description string
	Levels      map[logrus.Level]attrs
}

// ANSI color indices, offset by 30 for foreground and 40 for background.
var colorIndex = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// BuiltinSchemes returns all built-in color schemes.
func BuiltinSchemes() []Scheme {
	return []Scheme{
		{
			Name:        "default",
			Description: "Green info, yellow warnings, red errors",
			Levels: map[logrus.Level]attrs{
				logrus.DebugLevel: {Foreground: "magenta"},
				logrus.InfoLevel:  {Foreground: "green"},
				logrus.WarnLevel:  {Foreground: "yellow"},
				logrus.ErrorLevel: {Foreground: "red"},
				logrus.FatalLevel: {Background: "red", Foreground: "white", Bold: true},
			},
		},
		{
			Name:        "cyan-info",
			Description: "Like default, with cyan info lines",
			Levels: map[logrus.Level]attrs{
				logrus.DebugLevel: {Foreground: "magenta"},
				logrus.InfoLevel:  {Foreground: "cyan"},
				logrus.WarnLevel:  {Foreground: "yellow"},
				logrus.ErrorLevel: {Foreground: "red"},
				logrus.FatalLevel: {Background: "red", Foreground: "white", Bold: true},
			},
		},
		{
			Name:        "mono-info",
			Description: "White info lines for washed-out green terminals",
			Levels: map[logrus.Level]attrs{
				logrus.DebugLevel: {Foreground: "magenta"},
				logrus.InfoLevel:  {Foreground: "white"},
				logrus.WarnLevel:  {Foreground: "yellow"},
				logrus.ErrorLevel: {Foreground: "red"},
				logrus.FatalLevel: {Background: "red", Foreground: "white", Bold: true},
			},
		},
		{
			Name:        "bright",
			Description: "Bold variant for washed-out terminals",
			Levels: map[logrus.Level]attrs{
				logrus.DebugLevel: {Foreground: "magenta", Bold: true},
				logrus.InfoLevel:  {Foreground: "green"},
				logrus.WarnLevel:  {Foreground: "yellow", Bold: true},
				logrus.ErrorLevel: {Foreground: "red", Bold: true},
				logrus.FatalLevel: {Background: "red", Foreground: "white", Bold: true},
			},
		},
	}
}

// GetScheme returns a built-in scheme by name, or nil if not found. Lookup
// is case-insensitive.
func GetScheme(name string) *Scheme {
	for _, s := range BuiltinSchemes() {
		if strings.EqualFold(s.Name, name) {
			return &s
		}
	}
	return nil
}
