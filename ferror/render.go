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

package ferror

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// WrapWidth is the column width RenderHuman wraps help/note lines to. It
// is a fixed default; nothing in finch changes it from the terminal width.
var WrapWidth uint = 100

// RenderHuman renders e as `<file>:<line>:<col>: error: <msg>` followed by
// indented `note:` lines (one per context entry) and an optional `help:`
// line, per §7.
func RenderHuman(e *Error) string {
	var b strings.Builder
	if e.Location != nil && e.Location.Valid() {
		fmt.Fprintf(&b, "%s: error: %s", e.Location.String(), e.Message)
	} else {
		fmt.Fprintf(&b, "error: %s", e.Message)
	}
	for _, note := range e.Context {
		b.WriteString("\n    note: ")
		b.WriteString(wordwrap.WrapString(note, WrapWidth))
	}
	if e.Help != "" {
		b.WriteString("\n    help: ")
		b.WriteString(wordwrap.WrapString(e.Help, WrapWidth))
	}
	return b.String()
}

// RenderStructured renders e in the machine-readable form consumed by
// tooling: `ERROR:<file>:<line>:<col>:<kind>:<msg>` followed by one
// `NOTE:::<ctx>` line per context entry and an optional `HELP:::<help>`
// line.
func RenderStructured(e *Error) string {
	var b strings.Builder
	file, line, col := "", 0, 0
	if e.Location != nil {
		file, line, col = e.Location.File, e.Location.Line, e.Location.Column
	}
	fmt.Fprintf(&b, "ERROR:%s:%d:%d:%s:%s", file, line, col, categoryName(e), e.Message)
	for _, note := range e.Context {
		fmt.Fprintf(&b, "\nNOTE:::%s", note)
	}
	if e.Help != "" {
		fmt.Fprintf(&b, "\nHELP:::%s", e.Help)
	}
	return b.String()
}
