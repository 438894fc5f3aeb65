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

package progress

import (
	"fmt"
	"io"
)

// Line is the quiet/CI-friendly Reporter: one line per event, no cursor
// control, no animation. This is the default when -i/--interactive is
// not set (§1's "quiet/CI-friendly line-printer").
type Line struct {
	Out io.Writer
}

// NewLine returns a Line reporter writing to w.
func NewLine(w io.Writer) *Line { return &Line{Out: w} }

func (l *Line) Phase(name string) {
	fmt.Fprintf(l.Out, "==> %s\n", name)
}

func (l *Line) FileDone(path string) {
	fmt.Fprintf(l.Out, "  ok  %s\n", path)
}

func (l *Line) Warn(message string) {
	fmt.Fprintf(l.Out, "warning: %s\n", message)
}

func (l *Line) Error(message string) {
	fmt.Fprintf(l.Out, "error: %s\n", message)
}

func (l *Line) Finish(s Summary) {
	fmt.Fprintf(l.Out, "%d files, %d targets, %d errors, %d warnings (%dms)\n",
		s.FilesProcessed, s.TargetsGenerated, s.ErrorsEncountered, len(s.Warnings), s.DurationMS)
}
