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

package flog

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace": Trace,
		"debug": Debug,
		"info":  Info,
		"warn":  Warn,
		"error": Error,
		"bogus": Info,
		"":      Info,
	}
	for s, want := range tests {
		if got := ParseLevel(s); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Warn, true)
	l.Infof("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("Infof below Warn threshold wrote output: %q", buf.String())
	}
	l.Warnf("something happened")
	if !strings.Contains(buf.String(), "something happened") {
		t.Errorf("Warnf at threshold did not appear: %q", buf.String())
	}
}

func TestLoggerNoColorIsPlainLabel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Trace, true)
	l.Errorf("boom")
	out := buf.String()
	if !strings.Contains(out, "ERROR") {
		t.Errorf("output missing plain ERROR label: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("noColor logger emitted ANSI escapes: %q", out)
	}
}

func TestWithLevelReturnsIndependentCopy(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, Error, true)
	verbose := base.WithLevel(Trace)

	verbose.Debugf("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("WithLevel(Trace) logger suppressed a Debugf it should show")
	}
	buf.Reset()

	base.Debugf("hidden")
	if buf.Len() != 0 {
		t.Errorf("original logger's level threshold was mutated by WithLevel: %q", buf.String())
	}
}
