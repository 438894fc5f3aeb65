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
	"testing"

	"github.com/finchbuild/finch/parser"
	"github.com/finchbuild/finch/source"
)

func evaluate(t *testing.T, content string) *ProjectAnalysis {
	t.Helper()
	buf := source.New("CMakeLists.txt", []byte(content))
	file, perrs := parser.ParseFile(buf)
	if len(perrs) != 0 {
		t.Fatalf("parse errors: %v", perrs)
	}
	pa, everrs := EvaluateFile(file)
	if len(everrs) != 0 {
		t.Fatalf("analysis errors: %v", everrs)
	}
	return pa
}

func TestEvaluateSimpleLibrary(t *testing.T) {
	pa := evaluate(t, `
cmake_minimum_required(VERSION 3.20)
project(calculator VERSION 1.0.0)

add_library(calc_core STATIC src/calculator.cpp src/operations.cpp)
target_include_directories(calc_core PUBLIC include)
target_compile_definitions(calc_core PRIVATE CALC_VERSION="1.0.0")
`)
	if pa.ProjectName != "calculator" {
		t.Errorf("ProjectName = %q, want calculator", pa.ProjectName)
	}
	if len(pa.Targets) != 1 {
		t.Fatalf("len(Targets) = %d, want 1", len(pa.Targets))
	}
	tg := pa.Targets[0]
	if tg.Name != "calc_core" || tg.Kind != KindStaticLib {
		t.Errorf("target = %+v", tg)
	}
	if len(tg.Sources) != 2 {
		t.Errorf("Sources = %v", tg.Sources)
	}
	if len(tg.IncludeDirs) != 1 || tg.IncludeDirs[0] != "include" {
		t.Errorf("IncludeDirs = %v", tg.IncludeDirs)
	}
}

func TestEvaluatePlatformBranch(t *testing.T) {
	pa := evaluate(t, `
if(WIN32)
    set(LIB_TYPE SHARED)
else()
    set(LIB_TYPE STATIC)
endif()
add_library(mylib ${LIB_TYPE} a.cpp)
`)
	if len(pa.Targets) != 1 {
		t.Fatalf("len(Targets) = %d, want 1", len(pa.Targets))
	}
	// A non-Windows host (every CI/dev box this runs on) takes the else
	// branch, so the library is static.
	if pa.Targets[0].Kind != KindStaticLib {
		t.Errorf("Kind = %v, want KindStaticLib", pa.Targets[0].Kind)
	}
}

func TestEvaluateForEachInLists(t *testing.T) {
	pa := evaluate(t, `
set(MODULES core io net)
foreach(mod IN LISTS MODULES)
    add_library(${mod} STATIC ${mod}.cpp)
endforeach()
`)
	if len(pa.Targets) != 3 {
		t.Fatalf("len(Targets) = %d, want 3", len(pa.Targets))
	}
	names := map[string]bool{}
	for _, tg := range pa.Targets {
		names[tg.Name] = true
	}
	for _, want := range []string{"core", "io", "net"} {
		if !names[want] {
			t.Errorf("missing target %q among %v", want, names)
		}
	}
}

func TestEvaluateForEachRange(t *testing.T) {
	pa := evaluate(t, `
foreach(i RANGE 1 3)
    add_library(gen_${i} STATIC a.cpp)
endforeach()
`)
	if len(pa.Targets) != 3 {
		t.Fatalf("len(Targets) = %d, want 3", len(pa.Targets))
	}
}

func TestEvaluateCPMAddPackageGitHub(t *testing.T) {
	pa := evaluate(t, `CPMAddPackage("gh:fmtlib/fmt@10.1.1")`)
	if len(pa.Targets) != 1 {
		t.Fatalf("len(Targets) = %d, want 1", len(pa.Targets))
	}
	tg := pa.Targets[0]
	if tg.Kind != KindExternalPackage {
		t.Errorf("Kind = %v, want KindExternalPackage", tg.Kind)
	}
	if tg.CPMSource != "fmtlib/fmt" {
		t.Errorf("CPMSource = %q, want fmtlib/fmt", tg.CPMSource)
	}
}

func TestEvaluateWhileDoesNotExecuteBody(t *testing.T) {
	pa := evaluate(t, `
set(I 0)
while(I LESS 5)
    add_library(should_not_exist STATIC a.cpp)
endwhile()
`)
	if len(pa.Targets) != 0 {
		t.Errorf("len(Targets) = %d, want 0 (while body is never executed)", len(pa.Targets))
	}
}

func TestEnterExitNestedStaysBalancedAcrossSiblings(t *testing.T) {
	// A run of more than maxEvalDepth sibling (not nested) if statements
	// must not trip the recursion guard: enterNested/exitNested need to
	// stay paired even on the early-return path, or the depth counter
	// ratchets upward forever and silently disables every subsequent
	// if/while/foreach for the rest of the file.
	src := ""
	for i := 0; i < maxEvalDepth*3; i++ {
		src += "if(TRUE)\nendif()\n"
	}
	src += "add_library(still_reached STATIC a.cpp)\n"
	pa := evaluate(t, src)
	if len(pa.Targets) != 1 {
		t.Errorf("len(Targets) = %d, want 1 (evaluation must still reach the trailing add_library)", len(pa.Targets))
	}
}
