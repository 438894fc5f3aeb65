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

// ParseCategory enumerates §7's ParseError categories.
type ParseCategory int

const (
	UnexpectedToken ParseCategory = iota
	UnterminatedString
	InvalidSyntax
	UnknownCommand
	TooManyArguments
	TooFewArguments
	InvalidEscape
	UnbalancedParens
	UnexpectedEOF
)

func (c ParseCategory) String() string {
	names := [...]string{
		"UnexpectedToken", "UnterminatedString", "InvalidSyntax", "UnknownCommand",
		"TooManyArguments", "TooFewArguments", "InvalidEscape", "UnbalancedParens", "UnexpectedEOF",
	}
	return nameOrUnknown(int(c), names[:])
}

// AnalysisCategory enumerates §7's AnalysisError categories.
type AnalysisCategory int

const (
	UnknownTarget AnalysisCategory = iota
	CircularDependency
	MissingDependency
	InvalidProperty
	UnsupportedFeature
	PlatformSpecific
	TypeMismatch
	UndefinedVariable
	InvalidConfiguration
)

func (c AnalysisCategory) String() string {
	names := [...]string{
		"UnknownTarget", "CircularDependency", "MissingDependency", "InvalidProperty",
		"UnsupportedFeature", "PlatformSpecific", "TypeMismatch", "UndefinedVariable", "InvalidConfiguration",
	}
	return nameOrUnknown(int(c), names[:])
}

// GenerationCategory enumerates §7's GenerationError categories.
type GenerationCategory int

const (
	UnsupportedTarget GenerationCategory = iota
	InvalidRule
	MissingTemplate
	FileWriteError
	FormattingError
	InvalidAttribute
	GenerationMissingDependency
)

func (c GenerationCategory) String() string {
	names := [...]string{
		"UnsupportedTarget", "InvalidRule", "MissingTemplate", "FileWriteError",
		"FormattingError", "InvalidAttribute", "MissingDependency",
	}
	return nameOrUnknown(int(c), names[:])
}

// IOCategory enumerates §7's IOError categories.
type IOCategory int

const (
	FileNotFound IOCategory = iota
	PermissionDenied
	NetworkError
	DiskFull
	InvalidPath
	TimeoutError
)

func (c IOCategory) String() string {
	names := [...]string{
		"FileNotFound", "PermissionDenied", "NetworkError", "DiskFull", "InvalidPath", "TimeoutError",
	}
	return nameOrUnknown(int(c), names[:])
}

// ConfigCategory enumerates §7's ConfigError categories.
type ConfigCategory int

const (
	InvalidFormat ConfigCategory = iota
	MissingRequired
	InvalidValue
	UnknownOption
	ConflictingOptions
	ConfigParseError
)

func (c ConfigCategory) String() string {
	names := [...]string{
		"InvalidFormat", "MissingRequired", "InvalidValue", "UnknownOption", "ConflictingOptions", "ParseError",
	}
	return nameOrUnknown(int(c), names[:])
}

func nameOrUnknown(i int, names []string) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

// categoryName renders e.Category using the enum that matches e.Kind.
func categoryName(e *Error) string {
	switch e.Kind {
	case Parse:
		return e.ParseCategoryOf().String()
	case Analysis:
		return e.AnalysisCategoryOf().String()
	case Generation:
		return e.GenerationCategoryOf().String()
	case IO:
		return e.IOCategoryOf().String()
	case Config:
		return e.ConfigCategoryOf().String()
	default:
		return "Unknown"
	}
}
