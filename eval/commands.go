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

package eval

import (
	"strings"

	"github.com/finchbuild/finch/ast"
)

// commandHandler implements one recognized command's evaluation-time
// effect: it may read/mutate ctx (variables, cache, targets) but returns
// nothing, since no caller of a top-level CommandCall statement uses its
// "return value" (§4.4 only specifies commands' side effects, not a
// command-call expression value).
type commandHandler func(e *Evaluator, ctx *EvaluationContext, args []ast.Expr)

// commandHandlers maps a lower-cased command name to its handler. §4.4:
// "unrecognized commands evaluate to an empty string with Unknown
// confidence (no error — preservation is preferred)" — a name absent from
// this table falls through to evalCommand's default case.
var commandHandlers map[string]commandHandler

func init() {
	commandHandlers = map[string]commandHandler{
		"set":                        evalSet,
		"cmake_minimum_required":     evalCMakeMinimumRequired,
		"project":                    evalProject,
		"option":                     evalOption,
		"add_library":                evalAddLibrary,
		"add_executable":             evalAddExecutable,
		"target_include_directories": evalTargetIncludeDirectories,
		"target_link_libraries":      evalTargetLinkLibraries,
		"target_compile_definitions": evalTargetCompileDefinitions,
		"target_compile_options":     evalTargetCompileOptions,
		"message":                    evalMessage,
	}
}

// evalCommand dispatches n by lower-cased name. An unrecognized command
// is a deliberate no-op: finch prefers preserving an unknown build
// description over failing on it.
func (e *Evaluator) evalCommand(ctx *EvaluationContext, n *ast.CommandCall) {
	h, ok := commandHandlers[strings.ToLower(n.Name)]
	if !ok {
		return
	}
	h(e, ctx, n.Args)
}

// argText evaluates args[i] and renders it to text, or "" if i is out of
// range. Used throughout for keyword/name positions.
func (e *Evaluator) argText(ctx *EvaluationContext, args []ast.Expr, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return Text(e.evalExpr(ctx, args[i]))
}

func evalSet(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	if len(args) == 0 {
		return
	}
	name := e.argText(ctx, args, 0)
	rest := args[1:]

	// set(name value... CACHE TYPE "docstring" [FORCE]): store into the
	// cache-variable table instead of the regular scope chain, mirroring
	// option()'s cache semantics (§4.4 describes only option()'s case,
	// but CACHE is the same underlying mechanism set() also exposes).
	if idx := findKeywordIndex(e, ctx, rest, "CACHE"); idx >= 0 {
		values := rest[:idx]
		v := evalValueList(e, ctx, values)
		ctx.SetCache(name, EvaluatedValue{Value: v.Value, Confidence: Uncertain})
		return
	}

	// set(name value... PARENT_SCOPE): scope semantics left as an
	// explicit Open Question per SPEC_FULL.md/DESIGN.md — stored in the
	// local scope only, with a warning, rather than guessed at.
	if len(rest) > 0 && strings.EqualFold(e.argText(ctx, rest, len(rest)-1), "PARENT_SCOPE") {
		rest = rest[:len(rest)-1]
		e.warnf("set(%s ... PARENT_SCOPE) at %s: PARENT_SCOPE is not implemented; value stored in the local scope only", name, argsLoc(args))
	}

	ctx.Set(name, evalValueList(e, ctx, rest))
}

// findKeywordIndex returns the index of the first argument (from i=0)
// whose evaluated text case-insensitively equals kw, or -1.
func findKeywordIndex(e *Evaluator, ctx *EvaluationContext, args []ast.Expr, kw string) int {
	for i, a := range args {
		if strings.EqualFold(Text(e.evalExpr(ctx, a)), kw) {
			return i
		}
	}
	return -1
}

// evalValueList implements §4.4's set() value-count rule: zero values is
// an empty Certain string; one value stores that value's own confidence;
// more than one stores a list whose confidence is the minimum across
// elements.
func evalValueList(e *Evaluator, ctx *EvaluationContext, values []ast.Expr) EvaluatedValue {
	switch len(values) {
	case 0:
		return StringValue("", Certain)
	case 1:
		return e.evalExpr(ctx, values[0])
	default:
		conf := Certain
		items := make([]string, len(values))
		for i, v := range values {
			ev := e.evalExpr(ctx, v)
			conf = conf.Min(ev.Confidence)
			items[i] = Text(ev)
		}
		return ListValue(items, conf)
	}
}

func evalCMakeMinimumRequired(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	for i, a := range args {
		if strings.EqualFold(e.argText(ctx, args, i), "VERSION") && i+1 < len(args) {
			ctx.Set("CMAKE_MINIMUM_REQUIRED_VERSION", StringValue(e.argText(ctx, args, i+1), Certain))
			return
		}
		_ = a
	}
}

func evalProject(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	if len(args) == 0 {
		return
	}
	name := e.argText(ctx, args, 0)
	ctx.Set("PROJECT_NAME", StringValue(name, Certain))
	ctx.Set("CMAKE_PROJECT_NAME", StringValue(name, Certain))
	for i := 1; i < len(args); i++ {
		if strings.EqualFold(e.argText(ctx, args, i), "VERSION") && i+1 < len(args) {
			ctx.Set("PROJECT_VERSION", StringValue(e.argText(ctx, args, i+1), Certain))
			return
		}
	}
}

func evalOption(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	if len(args) == 0 {
		return
	}
	name := e.argText(ctx, args, 0)
	if _, already := ctx.LookupCache(name); already {
		// Real CMake never overwrites an existing cache entry on a
		// repeat option() call; neither does finch's partial evaluator.
		return
	}
	def := "OFF"
	if len(args) >= 3 {
		def = strings.ToUpper(e.argText(ctx, args, 2))
	}
	ctx.SetCache(name, StringValue(def, Uncertain))
}

// libraryVisibilityKeywords is skipped when accumulating target property
// lists (§4.4's target_* commands: "skipping visibility keywords").
var libraryVisibilityKeywords = map[string]bool{
	"PUBLIC": true, "PRIVATE": true, "INTERFACE": true,
}

var libraryTypeKeywords = map[string]bool{
	"STATIC": true, "SHARED": true, "INTERFACE": true, "MODULE": true, "OBJECT": true,
}

func evalAddLibrary(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	if len(args) == 0 {
		return
	}
	name := e.argText(ctx, args, 0)
	conf := Certain
	kind := libraryKind("STATIC")
	srcsStart := 1
	if len(args) > 1 {
		kw := strings.ToUpper(e.argText(ctx, args, 1))
		if libraryTypeKeywords[kw] {
			kind = libraryKind(kw)
			srcsStart = 2
		}
	}
	t := &Target{Name: name, Kind: kind, Confidence: conf}
	for i := srcsStart; i < len(args); i++ {
		v := e.evalExpr(ctx, args[i])
		conf = conf.Min(v.Confidence)
		t.Sources = append(t.Sources, TextList(v)...)
	}
	t.Confidence = conf
	ctx.AddTarget(t)
}

func evalAddExecutable(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	if len(args) == 0 {
		return
	}
	name := e.argText(ctx, args, 0)
	srcsStart := 1
	// add_executable(name [WIN32] [MACOSX_BUNDLE] [EXCLUDE_FROM_ALL] srcs...)
	for srcsStart < len(args) {
		kw := strings.ToUpper(e.argText(ctx, args, srcsStart))
		if kw == "WIN32" || kw == "MACOSX_BUNDLE" || kw == "EXCLUDE_FROM_ALL" {
			srcsStart++
			continue
		}
		break
	}
	conf := Certain
	t := &Target{Name: name, Kind: KindExecutable}
	for i := srcsStart; i < len(args); i++ {
		v := e.evalExpr(ctx, args[i])
		conf = conf.Min(v.Confidence)
		t.Sources = append(t.Sources, TextList(v)...)
	}
	t.Confidence = conf
	ctx.AddTarget(t)
}

// evalTargetProperty applies one target_* command's remaining
// (post-name, post-visibility-keyword) values onto the named target's
// corresponding field.
func evalTargetProperty(e *Evaluator, ctx *EvaluationContext, args []ast.Expr, apply func(t *Target, values []string)) {
	if len(args) == 0 {
		return
	}
	name := e.argText(ctx, args, 0)
	t, ok := ctx.FindTarget(name)
	if !ok {
		e.warnf("%s(%s ...) refers to an unknown target", "target property command", name)
		return
	}
	var values []string
	for i := 1; i < len(args); i++ {
		kw := strings.ToUpper(e.argText(ctx, args, i))
		if libraryVisibilityKeywords[kw] {
			continue
		}
		v := e.evalExpr(ctx, args[i])
		values = append(values, TextList(v)...)
	}
	apply(t, values)
}

func evalTargetIncludeDirectories(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	evalTargetProperty(e, ctx, args, func(t *Target, values []string) {
		t.IncludeDirs = append(t.IncludeDirs, values...)
	})
}

func evalTargetLinkLibraries(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	evalTargetProperty(e, ctx, args, func(t *Target, values []string) {
		t.LinkLibs = append(t.LinkLibs, values...)
	})
}

func evalTargetCompileDefinitions(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	evalTargetProperty(e, ctx, args, func(t *Target, values []string) {
		t.CompileDefs = append(t.CompileDefs, values...)
	})
}

func evalTargetCompileOptions(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	evalTargetProperty(e, ctx, args, func(t *Target, values []string) {
		t.CompileOpts = append(t.CompileOpts, values...)
	})
}

func evalMessage(e *Evaluator, ctx *EvaluationContext, args []ast.Expr) {
	// §4.4: message(...) is a no-op as far as analysis/target state goes.
}

func argsLoc(args []ast.Expr) string {
	if len(args) == 0 {
		return "<unknown>"
	}
	return args[0].Pos().String()
}
