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

// CommandCall is a generic top-level or nested command invocation:
// `name(args...)`. Control-flow keywords (if/foreach/while/function/macro)
// are parsed into their own dedicated node types instead of a CommandCall.
type CommandCall struct {
	base
	Name string
	Args []Expr
}

func (*CommandCall) stmtTag() {}

// FunctionDef records a `function(name args...) ... endfunction()` block.
// The body is stored unexpanded: this spec does not inline call sites.
type FunctionDef struct {
	base
	Name   string
	Params []string
	Body   []Stmt
}

func (*FunctionDef) stmtTag() {}

// MacroDef records a `macro(name args...) ... endmacro()` block, stored
// unexpanded for the same reason as FunctionDef.
type MacroDef struct {
	base
	Name   string
	Params []string
	Body   []Stmt
}

func (*MacroDef) stmtTag() {}
