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

// Package eval implements the partial-evaluation visitor over package ast:
// an EvaluationContext-driven walk that produces confidence-tagged values
// and, ultimately, a ProjectAnalysis of discovered targets and variables.
package eval

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Confidence tags how much an EvaluatedValue can be trusted: Certain
// values came from a literal or a fully-resolved reference; Unknown
// values are placeholders (an unresolved ${name}, an unevaluated
// generator expression, a loop bound that couldn't be resolved). Order
// matters: Unknown < Uncertain < Likely < Certain, so "the minimum of
// element confidences" (§4.4's set() multi-value rule) is a plain min.
type Confidence int

const (
	Unknown Confidence = iota
	Uncertain
	Likely
	Certain
)

func (c Confidence) String() string {
	switch c {
	case Certain:
		return "Certain"
	case Likely:
		return "Likely"
	case Uncertain:
		return "Uncertain"
	default:
		return "Unknown"
	}
}

// Min returns the lower-ranked of c and other.
func (c Confidence) Min(other Confidence) Confidence {
	if other < c {
		return other
	}
	return c
}

// EvaluatedValue is a (value, confidence) pair: value is one of go-cty's
// String/Bool/Number/List(String) types, standing in for CMake's
// string/bool/number/list-of-string value universe. Unknown confidence is
// represented with cty.UnknownVal(ty) so the value still carries a type —
// exactly go-cty's own model of "a value that is well-typed but not yet
// concrete" (see SPEC_FULL.md's domain-stack rationale for go-cty).
type EvaluatedValue struct {
	Value      cty.Value
	Confidence Confidence
}

// Known reports whether v carries a usable value (confidence != Unknown).
func (v EvaluatedValue) Known() bool { return v.Confidence != Unknown }

// StringValue builds a Certain-or-lower string EvaluatedValue.
func StringValue(s string, conf Confidence) EvaluatedValue {
	if conf == Unknown {
		return EvaluatedValue{Value: cty.UnknownVal(cty.String), Confidence: Unknown}
	}
	return EvaluatedValue{Value: cty.StringVal(s), Confidence: conf}
}

// BoolValue builds a bool EvaluatedValue.
func BoolValue(b bool, conf Confidence) EvaluatedValue {
	if conf == Unknown {
		return EvaluatedValue{Value: cty.UnknownVal(cty.Bool), Confidence: Unknown}
	}
	return EvaluatedValue{Value: cty.BoolVal(b), Confidence: conf}
}

// NumberValue builds a number EvaluatedValue.
func NumberValue(f float64, conf Confidence) EvaluatedValue {
	if conf == Unknown {
		return EvaluatedValue{Value: cty.UnknownVal(cty.Number), Confidence: Unknown}
	}
	return EvaluatedValue{Value: cty.NumberFloatVal(f), Confidence: conf}
}

// ListValue builds a list-of-string EvaluatedValue from already-rendered
// text elements. An empty list is represented as an empty, known
// cty.List(cty.String); CMake's own semantics treat "no elements" as a
// perfectly ordinary (falsy) list, not an unknown one.
func ListValue(items []string, conf Confidence) EvaluatedValue {
	if conf == Unknown {
		return EvaluatedValue{Value: cty.UnknownVal(cty.List(cty.String)), Confidence: Unknown}
	}
	if len(items) == 0 {
		return EvaluatedValue{Value: cty.ListValEmpty(cty.String), Confidence: conf}
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return EvaluatedValue{Value: cty.ListVal(vals), Confidence: conf}
}

// UnknownOf returns an Unknown-confidence placeholder of the given type.
func UnknownOf(ty cty.Type) EvaluatedValue {
	return EvaluatedValue{Value: cty.UnknownVal(ty), Confidence: Unknown}
}

// falsyStrings is the fixed set of case-sensitive-upper string spellings
// §4.4's truthiness rule treats as false.
var falsyStrings = map[string]bool{
	"0": true, "OFF": true, "NO": true, "FALSE": true, "N": true, "IGNORE": true, "NOTFOUND": true, "": true,
}

// Truthy implements §4.4's CMake truthiness rule. Values that are not
// Known are treated as falsy: a condition whose operand could not be
// resolved cannot be trusted to steer a branch, so this conservatively
// skips it, the same principle evalWhile and evalForEach apply to loops
// whose bound cannot be resolved.
func Truthy(v EvaluatedValue) bool {
	if !v.Known() {
		return false
	}
	switch v.Value.Type() {
	case cty.String:
		s := v.Value.AsString()
		upper := strings.ToUpper(s)
		if falsyStrings[upper] {
			return false
		}
		return !strings.HasSuffix(upper, "-NOTFOUND")
	case cty.Bool:
		return v.Value.True()
	case cty.Number:
		f, _ := v.Value.AsBigFloat().Float64()
		return f != 0
	default:
		if v.Value.Type().IsListType() {
			return v.Value.LengthInt() > 0
		}
		return false
	}
}

// Text renders v back to a CMake-style string, the form commands like
// set()/target_link_libraries() actually store and compare. Unknown
// values render as the empty string; callers that need to preserve an
// unresolved "${name}" form keep the raw text alongside, not through Text.
func Text(v EvaluatedValue) string {
	if !v.Known() {
		return ""
	}
	switch v.Value.Type() {
	case cty.String:
		return v.Value.AsString()
	case cty.Bool:
		if v.Value.True() {
			return "TRUE"
		}
		return "FALSE"
	case cty.Number:
		f, _ := v.Value.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		if v.Value.Type().IsListType() {
			var parts []string
			for _, e := range v.Value.AsValueSlice() {
				parts = append(parts, e.AsString())
			}
			return strings.Join(parts, ";")
		}
		return ""
	}
}

// toFloat renders v as a float64 for numeric condition comparisons
// (EQUAL/LESS/GREATER, RANGE bounds). Non-numeric known values parse
// their text form; an unparseable result is 0.
func toFloat(v EvaluatedValue) float64 {
	if !v.Known() {
		return 0
	}
	if v.Value.Type() == cty.Number {
		f, _ := v.Value.AsBigFloat().Float64()
		return f
	}
	f, _ := strconv.ParseFloat(Text(v), 64)
	return f
}

// TextList renders v as a list of strings: a list value's elements
// verbatim, or a single-element list holding Text(v) for any other known
// scalar. Used by commands that accumulate into a Target's string-slice
// fields (sources, include dirs, link libs, ...).
func TextList(v EvaluatedValue) []string {
	if !v.Known() {
		return nil
	}
	if v.Value.Type().IsListType() {
		var out []string
		for _, e := range v.Value.AsValueSlice() {
			out = append(out, e.AsString())
		}
		return out
	}
	return []string{Text(v)}
}
