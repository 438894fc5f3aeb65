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

// Package ferror is the tagged error model shared by every pipeline stage:
// parse, analysis, generation, io, and config errors, each carrying an
// optional source location, an ordered chain of context notes, and an
// optional help string.
package ferror

import "github.com/finchbuild/finch/source"

// Kind tags which of the five error families an Error belongs to.
type Kind int

const (
	Parse Kind = iota
	Analysis
	Generation
	IO
	Config
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse"
	case Analysis:
		return "analysis"
	case Generation:
		return "generation"
	case IO:
		return "io"
	case Config:
		return "config"
	default:
		return "unknown"
	}
}

// Error is the single concrete type behind all five error kinds; Category
// is interpreted according to Kind (see kinds.go for the per-kind
// category enums and validity).
type Error struct {
	Kind     Kind
	Category int
	Message  string
	Location *source.Location // optional
	Context  []string         // ordered chain of "note:" lines
	Help     string           // optional "help:" line

	// Path is set for GenerationError/IOError when the error concerns a
	// specific filesystem path.
	Path string
	// Target is set for GenerationError when the error concerns a
	// specific named build target.
	Target string
	// Option is set for ConfigError when the error concerns a specific
	// config option.
	Option string
}

func (e *Error) Error() string {
	return RenderHuman(e)
}

// WithContext appends a context note and returns e, for chaining at the
// construction site: ferror.NewParseError(...).WithContext("while parsing if()")
func (e *Error) WithContext(note string) *Error {
	e.Context = append(e.Context, note)
	return e
}

// WithHelp sets the help text and returns e.
func (e *Error) WithHelp(help string) *Error {
	e.Help = help
	return e
}

// NewParseError constructs a Parse-kind Error at loc.
func NewParseError(loc source.Location, category ParseCategory, message string) *Error {
	return &Error{Kind: Parse, Category: int(category), Message: message, Location: &loc}
}

// NewAnalysisError constructs an Analysis-kind Error at loc.
func NewAnalysisError(loc source.Location, category AnalysisCategory, message string) *Error {
	return &Error{Kind: Analysis, Category: int(category), Message: message, Location: &loc}
}

// NewGenerationError constructs a Generation-kind Error, optionally tied
// to a target name.
func NewGenerationError(target string, category GenerationCategory, message string) *Error {
	return &Error{Kind: Generation, Category: int(category), Message: message, Target: target}
}

// NewIOError constructs an IO-kind Error, optionally tied to a path.
func NewIOError(path string, category IOCategory, message string) *Error {
	return &Error{Kind: IO, Category: int(category), Message: message, Path: path}
}

// NewConfigError constructs a Config-kind Error, optionally tied to an
// option name.
func NewConfigError(option string, category ConfigCategory, message string) *Error {
	return &Error{Kind: Config, Category: int(category), Message: message, Option: option}
}

// ParseCategoryOf returns e.Category as a ParseCategory; only meaningful
// when e.Kind == Parse.
func (e *Error) ParseCategoryOf() ParseCategory { return ParseCategory(e.Category) }

// AnalysisCategoryOf returns e.Category as an AnalysisCategory; only
// meaningful when e.Kind == Analysis.
func (e *Error) AnalysisCategoryOf() AnalysisCategory { return AnalysisCategory(e.Category) }

// GenerationCategoryOf returns e.Category as a GenerationCategory; only
// meaningful when e.Kind == Generation.
func (e *Error) GenerationCategoryOf() GenerationCategory { return GenerationCategory(e.Category) }

// IOCategoryOf returns e.Category as an IOCategory; only meaningful when
// e.Kind == IO.
func (e *Error) IOCategoryOf() IOCategory { return IOCategory(e.Category) }

// ConfigCategoryOf returns e.Category as a ConfigCategory; only
// meaningful when e.Kind == Config.
func (e *Error) ConfigCategoryOf() ConfigCategory { return ConfigCategory(e.Category) }
