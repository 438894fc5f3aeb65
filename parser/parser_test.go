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

package parser

import (
	"testing"

	"github.com/finchbuild/finch/ast"
	"github.com/finchbuild/finch/ferror"
	"github.com/finchbuild/finch/source"
)

func parse(t *testing.T, content string) (*ast.File, []*ferror.Error) {
	t.Helper()
	buf := source.New("CMakeLists.txt", []byte(content))
	file, errs := ParseFile(buf)
	if file == nil {
		t.Fatal("ParseFile returned a nil file")
	}
	return file, errs
}

func TestParseSimpleLibrary(t *testing.T) {
	src := `
cmake_minimum_required(VERSION 3.20)
project(calculator)

add_library(calc_core STATIC
    src/calculator.cpp
    src/operations.cpp
)
target_include_directories(calc_core PUBLIC include)
`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(file.Stmts) != 4 {
		t.Fatalf("len(Stmts) = %d, want 4", len(file.Stmts))
	}
	lib, ok := file.Stmts[2].(*ast.CommandCall)
	if !ok {
		t.Fatalf("Stmts[2] = %T, want *ast.CommandCall", file.Stmts[2])
	}
	if lib.Name != "add_library" {
		t.Errorf("Name = %q, want add_library", lib.Name)
	}
	if len(lib.Args) != 4 {
		t.Errorf("len(Args) = %d, want 4 (calc_core, STATIC, 2 sources)", len(lib.Args))
	}
}

func TestParsePlatformBranch(t *testing.T) {
	src := `
if(WIN32)
    add_compile_definitions(PLATFORM_WINDOWS)
elseif(APPLE)
    add_compile_definitions(PLATFORM_MAC)
else()
    add_compile_definitions(PLATFORM_LINUX)
endif()
`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(file.Stmts) != 1 {
		t.Fatalf("len(Stmts) = %d, want 1", len(file.Stmts))
	}
	ifStmt, ok := file.Stmts[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("Stmts[0] = %T, want *ast.IfStatement", file.Stmts[0])
	}
	if _, ok := ifStmt.Condition.(*ast.StringLiteral); !ok {
		t.Errorf("Condition = %T, want a bare-word reference to WIN32", ifStmt.Condition)
	}
	if len(ifStmt.ElseIfs) != 1 {
		t.Fatalf("len(ElseIfs) = %d, want 1", len(ifStmt.ElseIfs))
	}
	if len(ifStmt.Else) != 1 {
		t.Fatalf("len(Else) = %d, want 1", len(ifStmt.Else))
	}
}

func TestParseOptionDefault(t *testing.T) {
	src := `option(BUILD_TESTS "Build the test suite" ON)`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	call := file.Stmts[0].(*ast.CommandCall)
	if call.Name != "option" {
		t.Fatalf("Name = %q", call.Name)
	}
	if len(call.Args) != 3 {
		t.Fatalf("len(Args) = %d, want 3", len(call.Args))
	}
	b, ok := call.Args[2].(*ast.BooleanLiteral)
	if !ok {
		t.Fatalf("Args[2] = %T, want *ast.BooleanLiteral", call.Args[2])
	}
	if !b.Value {
		t.Errorf("Value = false, want true for ON")
	}
}

func TestParseStringInterpolationAdjacency(t *testing.T) {
	src := `set(FULL_PATH ${CMAKE_SOURCE_DIR}/src)`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	call := file.Stmts[0].(*ast.CommandCall)
	if len(call.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2 (FULL_PATH, merged value)", len(call.Args))
	}
	list, ok := call.Args[1].(*ast.ListExpression)
	if !ok {
		t.Fatalf("Args[1] = %T, want *ast.ListExpression (variable merged with adjacent /src)", call.Args[1])
	}
	if len(list.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(list.Elements))
	}
	if _, ok := list.Elements[0].(*ast.Variable); !ok {
		t.Errorf("Elements[0] = %T, want *ast.Variable", list.Elements[0])
	}
	if sl, ok := list.Elements[1].(*ast.StringLiteral); !ok || sl.Value != "/src" {
		t.Errorf("Elements[1] = %#v, want StringLiteral(\"/src\")", list.Elements[1])
	}
}

func TestParseCPMShorthand(t *testing.T) {
	src := `CPMAddPackage("gh:fmtlib/fmt@10.1.1")`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pkg, ok := file.Stmts[0].(*ast.CPMAddPackage)
	if !ok {
		t.Fatalf("Stmts[0] = %T, want *ast.CPMAddPackage", file.Stmts[0])
	}
	if pkg.Name != "fmt" {
		t.Errorf("Name = %q, want fmt", pkg.Name)
	}
	if pkg.SourceKind != ast.CPMSourceGitHub {
		t.Errorf("SourceKind = %v, want CPMSourceGitHub", pkg.SourceKind)
	}
	if pkg.Version == nil || pkg.Version.Version != "10.1.1" || !pkg.Version.Exact {
		t.Errorf("Version = %#v, want exact 10.1.1", pkg.Version)
	}
}

func TestParseCPMKeywordForm(t *testing.T) {
	src := `CPMAddPackage(
    NAME fmt
    GITHUB_REPOSITORY fmtlib/fmt
    VERSION 10.1.1
    OPTIONS
        "FMT_INSTALL ON"
)`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	pkg := file.Stmts[0].(*ast.CPMAddPackage)
	if pkg.Name != "fmt" || pkg.Source != "fmtlib/fmt" {
		t.Errorf("Name/Source = %q/%q", pkg.Name, pkg.Source)
	}
	if pkg.Options["FMT_INSTALL"] != "ON" {
		t.Errorf("Options[FMT_INSTALL] = %q, want ON", pkg.Options["FMT_INSTALL"])
	}
}

func TestParseErrorRecoveryContinuesAfterMalformedCommand(t *testing.T) {
	src := `
add_library(
project(calculator)
`
	file, errs := parse(t, src)
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error for the unterminated add_library(")
	}
	if ast.CountErrorNodes(file) == 0 {
		t.Error("expected at least one ErrorNode in the tree")
	}
}

func TestParseForEachBareForm(t *testing.T) {
	src := `
foreach(item a b c)
    message(${item})
endforeach()
`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	loop := file.Stmts[0].(*ast.ForEachStatement)
	if loop.LoopKind != ast.LoopBare {
		t.Errorf("LoopKind = %v, want LoopBare", loop.LoopKind)
	}
	if len(loop.Vars) != 1 || loop.Vars[0] != "item" {
		t.Errorf("Vars = %v, want [item]", loop.Vars)
	}
	if len(loop.Items) != 3 {
		t.Errorf("len(Items) = %d, want 3", len(loop.Items))
	}
}

func TestParseForEachInLists(t *testing.T) {
	src := `foreach(src IN LISTS SOURCES) message(${src}) endforeach()`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	loop := file.Stmts[0].(*ast.ForEachStatement)
	if loop.LoopKind != ast.LoopInLists {
		t.Errorf("LoopKind = %v, want LoopInLists", loop.LoopKind)
	}
	if len(loop.Items) != 1 {
		t.Errorf("len(Items) = %d, want 1 (SOURCES)", len(loop.Items))
	}
}

func TestParseConditionPrecedence(t *testing.T) {
	src := `if(A AND B OR NOT C) endif()`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	ifStmt := file.Stmts[0].(*ast.IfStatement)
	top, ok := ifStmt.Condition.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("Condition = %T, want top-level OR *ast.BinaryOp", ifStmt.Condition)
	}
	if top.Op != "OR" {
		t.Errorf("top.Op = %q, want OR", top.Op)
	}
	left, ok := top.Left.(*ast.BinaryOp)
	if !ok || left.Op != "AND" {
		t.Errorf("top.Left = %#v, want AND", top.Left)
	}
	right, ok := top.Right.(*ast.UnaryOp)
	if !ok || right.Op != "NOT" {
		t.Errorf("top.Right = %#v, want NOT", top.Right)
	}
}

func TestParseFunctionDef(t *testing.T) {
	src := `
function(my_add_library name)
    add_library(${name} STATIC ${ARGN})
endfunction()
`
	file, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	fn := file.Stmts[0].(*ast.FunctionDef)
	if fn.Name != "my_add_library" {
		t.Errorf("Name = %q", fn.Name)
	}
	if len(fn.Params) != 1 || fn.Params[0] != "name" {
		t.Errorf("Params = %v, want [name]", fn.Params)
	}
	if len(fn.Body) != 1 {
		t.Errorf("len(Body) = %d, want 1", len(fn.Body))
	}
}
