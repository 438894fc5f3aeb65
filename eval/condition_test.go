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

import "testing"

func branchTaken(t *testing.T, condSrc string) bool {
	t.Helper()
	pa := evaluate(t, `
if(`+condSrc+`)
    add_library(taken STATIC a.cpp)
else()
    add_library(not_taken STATIC a.cpp)
endif()
`)
	if len(pa.Targets) != 1 {
		t.Fatalf("len(Targets) = %d, want 1", len(pa.Targets))
	}
	return pa.Targets[0].Name == "taken"
}

func TestConditionComparisons(t *testing.T) {
	tests := []struct {
		cond string
		want bool
	}{
		{"3 LESS 5", true},
		{"5 LESS 3", false},
		{"5 GREATER 3", true},
		{"3 EQUAL 3", true},
		{`"abc" STREQUAL "abc"`, true},
		{`"abc" STREQUAL "xyz"`, false},
		{"NOT FALSE", true},
		{"TRUE AND TRUE", true},
		{"TRUE AND FALSE", false},
		{"FALSE OR TRUE", true},
		{`"1.2.0" VERSION_LESS "1.3.0"`, true},
		{`"1.3.0" VERSION_GREATER "1.2.0"`, true},
		{`"2.0.0" VERSION_EQUAL "2.0.0"`, true},
	}
	for _, tt := range tests {
		if got := branchTaken(t, tt.cond); got != tt.want {
			t.Errorf("if(%s): branch taken = %v, want %v", tt.cond, got, tt.want)
		}
	}
}

func TestConditionInList(t *testing.T) {
	pa := evaluate(t, `
set(MODULES core io net)
if("io" IN_LIST MODULES)
    add_library(found STATIC a.cpp)
endif()
`)
	if len(pa.Targets) != 1 || pa.Targets[0].Name != "found" {
		t.Errorf("Targets = %+v, want one target named found", pa.Targets)
	}
}

func TestConditionDefined(t *testing.T) {
	pa := evaluate(t, `
set(MY_VAR hello)
if(DEFINED MY_VAR)
    add_library(defined_case STATIC a.cpp)
endif()
if(NOT DEFINED UNSET_VAR)
    add_library(undefined_case STATIC a.cpp)
endif()
`)
	if len(pa.Targets) != 2 {
		t.Fatalf("len(Targets) = %d, want 2", len(pa.Targets))
	}
}
