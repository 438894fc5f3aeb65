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

// Package emit writes the Starlark BUCK files and the single root
// .buckconfig, translating []*target.MappedTarget into the structured,
// section-ordered output §4.6 describes.
package emit

import (
	"sort"
	"strings"

	"github.com/finchbuild/finch/target"
)

// buckWriter buffers the three ordered sections §4.6 specifies
// (loads, variables, rules) and joins them in String, mirroring the
// teacher's ninjaWriter's "accumulate then flush with blank-line
// bookkeeping" shape rather than streaming writes interleaved with
// section decisions that haven't been made yet.
type buckWriter struct {
	loads []string
	vars  []string
	rules []string
}

func newBuckWriter() *buckWriter { return &buckWriter{} }

// Load records one `load("target", "symbol", ...)` statement, deduped by
// exact text so multiple rules needing the same prelude symbol don't
// each emit their own copy.
func (w *buckWriter) Load(stmt string) {
	for _, l := range w.loads {
		if l == stmt {
			return
		}
	}
	w.loads = append(w.loads, stmt)
}

// Var records one top-level `name = value` variable definition.
func (w *buckWriter) Var(name, value string) {
	w.vars = append(w.vars, name+" = "+value)
}

// Rule records one fully-rendered rule call block.
func (w *buckWriter) Rule(body string) {
	w.rules = append(w.rules, body)
}

// String joins the three sections: all loads, a blank line, all
// variables, a blank line, all rules with a blank line between adjacent
// rules, per §4.6's "Output composition".
func (w *buckWriter) String() string {
	var sections []string
	if len(w.loads) > 0 {
		sort.Strings(w.loads)
		sections = append(sections, strings.Join(w.loads, "\n"))
	}
	if len(w.vars) > 0 {
		sections = append(sections, strings.Join(w.vars, "\n"))
	}
	if len(w.rules) > 0 {
		sections = append(sections, strings.Join(w.rules, "\n\n"))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// loadFor returns the `load(...)` statement the prelude exposes
// rule.String() for the four cxx rule kinds below, or "" for every other
// rule kind (such as HttpArchive), for which no load is emitted.
func loadFor(kind target.RuleKind) string {
	switch kind {
	case target.CxxLibrary:
		return `load("@prelude//cxx:cxx.bzl", "cxx_library")`
	case target.CxxBinary:
		return `load("@prelude//cxx:cxx.bzl", "cxx_binary")`
	case target.CxxTest:
		return `load("@prelude//cxx:cxx.bzl", "cxx_test")`
	case target.PrebuiltCxxLibrary:
		return `load("@prelude//cxx:cxx.bzl", "prebuilt_cxx_library")`
	default:
		return ""
	}
}
