// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package flog is a minimal leveled logger, passed explicitly between
// collaborators rather than reached for as a global singleton — the same
// discipline the teacher applies to PackageContext/SingletonContext:
// nothing in this codebase calls a package-level logging function.
package flog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Level is a logging threshold, ordered low to high.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
)

// ParseLevel parses one of §6's --log-level values, defaulting to Info
// for anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "trace":
		return Trace
	case "debug":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

var levelStyle = map[Level]lipgloss.Style{
	Trace: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Debug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	Error: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// Logger is a leveled logger value: constructing one with New and
// passing it to collaborators by value (it is cheap: an io.Writer plus
// two small fields) is the whole interface. There is no package-level
// default logger.
type Logger struct {
	out      io.Writer
	level    Level
	noColor  bool
}

// New returns a Logger writing to w, filtering below level. When
// noColor is set (cmd/finch sets it from --no-color or the config
// file's no_color), level labels are rendered plain rather than
// lipgloss-styled.
func New(w io.Writer, level Level, noColor bool) Logger {
	return Logger{out: w, level: level, noColor: noColor}
}

// Default returns a Logger at Info level writing to stderr, with colored
// level labels.
func Default() Logger {
	return New(os.Stderr, Info, false)
}

func (l Logger) label(lvl Level) string {
	if l.noColor {
		return lvl.String()
	}
	return levelStyle[lvl].Render(lvl.String())
}

func (l Logger) log(lvl Level, format string, args ...interface{}) {
	if lvl < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s %-5s %s\n", time.Now().Format("15:04:05"), l.label(lvl), fmt.Sprintf(format, args...))
}

func (l Logger) Tracef(format string, args ...interface{}) { l.log(Trace, format, args...) }
func (l Logger) Debugf(format string, args ...interface{}) { l.log(Debug, format, args...) }
func (l Logger) Infof(format string, args ...interface{})  { l.log(Info, format, args...) }
func (l Logger) Warnf(format string, args ...interface{})  { l.log(Warn, format, args...) }
func (l Logger) Errorf(format string, args ...interface{}) { l.log(Error, format, args...) }

// WithLevel returns a copy of l filtering at a different threshold.
func (l Logger) WithLevel(level Level) Logger {
	l.level = level
	return l
}
