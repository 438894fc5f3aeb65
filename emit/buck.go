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

package emit

import (
	"sort"
	"strings"

	"github.com/finchbuild/finch/target"
)

// headersGlob is §4.6's fixed headers attribute: emitted on every rule
// that carries one, even absent explicit headers.
const headersGlob = `glob(["**/*.h", "**/*.hpp"])`

// attrOrder fixes the attribute rendering order so output is
// deterministic across runs on the same host (§8's determinism
// property) independent of Go's unordered map iteration over
// MappedTarget.Properties.
var attrOrder = []string{
	"preprocessor_flags", "exported_headers", "compiler_flags", "linker_flags",
	"repo", "urls", "version",
}

// RenderRule renders one MappedTarget as a Starlark rule call per §4.6's
// template. cxx_library additionally emits visibility/header_namespace;
// srcs/deps always break one element per line at 4-space indentation,
// matching §6's canonical BUCK sample (a single-element srcs list is
// still shown broken there), which takes precedence over §4.6's prose
// ">3 items" threshold — see DESIGN.md.
func RenderRule(mt *target.MappedTarget) string {
	var b strings.Builder
	b.WriteString(mt.RuleKind.String())
	b.WriteString("(\n")
	writeAttr(&b, "name", quote(mt.Name))

	if len(mt.Srcs) > 0 || mt.RuleKind == target.CxxLibrary || mt.RuleKind == target.CxxBinary || mt.RuleKind == target.CxxTest || mt.RuleKind == target.FileGroup {
		writeAttr(&b, "srcs", renderStringList(mt.Srcs))
	}
	if mt.RuleKind == target.CxxLibrary || mt.RuleKind == target.CxxBinary || mt.RuleKind == target.CxxTest {
		writeAttr(&b, "headers", headersGlob)
	}
	if len(mt.Deps) > 0 {
		writeAttr(&b, "deps", renderStringList(mt.Deps))
	}

	for _, key := range attrOrder {
		if v, ok := mt.Properties[key]; ok && v != "[]" && v != "" {
			writeAttr(&b, key, v)
		}
	}

	if mt.RuleKind == target.CxxLibrary {
		writeAttr(&b, "visibility", `["PUBLIC"]`)
		writeAttr(&b, "header_namespace", quote(mt.Name))
	}

	b.WriteString(")")
	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString("    ")
	b.WriteString(name)
	b.WriteString(" = ")
	b.WriteString(value)
	b.WriteString(",\n")
}

// renderStringList renders items (srcs/deps) as a Starlark list
// literal, quoting each element, always one element per line — see the
// note on RenderRule above for why this doesn't apply §4.6's ">3 items"
// threshold.
func renderStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, s := range items {
		b.WriteString("        ")
		b.WriteString(quote(s))
		b.WriteString(",\n")
	}
	b.WriteString("    ]")
	return b.String()
}

func quote(s string) string { return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"` }

// RenderBuckFile renders a complete BUCK file body for one directory's
// targets: load statements (deduped, one per distinct rule kind in use)
// followed by a blank line, then rule bodies separated by blank lines
// (§4.6's "Output composition"). Targets are sorted by name first so
// output is deterministic regardless of evaluation order across a
// parallel-discovery run (§5's determinism requirement; merge itself
// preserves discovery order, but a single directory can still receive
// targets from more than one evaluated file).
func RenderBuckFile(targets []*target.MappedTarget) string {
	sorted := make([]*target.MappedTarget, len(targets))
	copy(sorted, targets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	w := newBuckWriter()
	for _, mt := range sorted {
		if l := loadFor(mt.RuleKind); l != "" {
			w.Load(l)
		}
		w.Rule(RenderRule(mt))
	}
	return w.String()
}
