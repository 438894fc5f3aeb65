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

package ast

// StringLiteral is a quoted ("...") or bracket ([[...]]) or bare unquoted
// string argument.
type StringLiteral struct {
	base
	Value  string
	Quoted bool
}

func (*StringLiteral) exprTag() {}

// NumberLiteral is a numeric argument. Text preserves the original form
// (e.g. "3.20") since Buck2 emission and re-printing must not reformat it.
type NumberLiteral struct {
	base
	Text       string
	IntOrFloat float64
}

func (*NumberLiteral) exprTag() {}

// BooleanLiteral is one of CMake's boolean keyword spellings
// (TRUE/ON/YES/Y or FALSE/OFF/NO/N). OriginalText preserves which spelling
// was used, since round-tripping/formatting should not normalize it away.
type BooleanLiteral struct {
	base
	Value        bool
	OriginalText string
}

func (*BooleanLiteral) exprTag() {}
