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

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/finchbuild/finch/emit"
	"github.com/finchbuild/finch/fconfig"
	"github.com/finchbuild/finch/flog"
)

func TestParseGlobalFlagsExtractsKnownFlagsOnly(t *testing.T) {
	g, rest := parseGlobalFlags([]string{
		"--verbose", "--config", "custom.toml", "src", "--log-level", "debug", "--no-color", "-o", "out",
	})
	if !g.verbose || !g.noColor {
		t.Errorf("g = %+v, want verbose and noColor set", g)
	}
	if g.config != "custom.toml" {
		t.Errorf("config = %q, want custom.toml", g.config)
	}
	if g.logLevel != "debug" {
		t.Errorf("logLevel = %q, want debug", g.logLevel)
	}
	if !reflect.DeepEqual(rest, []string{"src", "-o", "out"}) {
		t.Errorf("rest = %v, want [src -o out]", rest)
	}
}

func TestParseGlobalFlagsDefaults(t *testing.T) {
	g, rest := parseGlobalFlags(nil)
	if g.config != ".finch.toml" || g.logLevel != "info" {
		t.Errorf("defaults = %+v", g)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %v, want empty", rest)
	}
}

func TestBuildLoggerDoesNotPanicForVerboseAndQuiet(t *testing.T) {
	base := buildLogger(globalFlags{logLevel: "info"}, fconfig.Default())
	_ = base // smoke: must not panic building at the default level.

	verbose := buildLogger(globalFlags{verbose: true, logLevel: "info"}, fconfig.Default())
	_ = verbose

	quiet := buildLogger(globalFlags{quiet: true, logLevel: "info"}, fconfig.Default())
	_ = quiet
}

func TestStringListCollectsRepeatedFlags(t *testing.T) {
	var sl stringList
	if err := sl.Set("linux"); err != nil {
		t.Fatal(err)
	}
	if err := sl.Set("darwin"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual([]string(sl), []string{"linux", "darwin"}) {
		t.Errorf("stringList = %v, want [linux darwin]", sl)
	}
	if sl.String() != "linux,darwin" {
		t.Errorf("String() = %q, want linux,darwin", sl.String())
	}
}

func TestRelocatePlanRewritesPaths(t *testing.T) {
	source := filepath.FromSlash("/proj/src")
	out := filepath.FromSlash("/proj/out")
	plan := []emit.File{
		{Path: filepath.Join(source, "libs/a/BUCK"), Content: "x"},
		{Path: filepath.Join(source, ".buckconfig"), Content: "y"},
	}
	relocated := relocatePlan(plan, source, out)
	want := []string{
		filepath.Join(out, "libs/a/BUCK"),
		filepath.Join(out, ".buckconfig"),
	}
	for i, f := range relocated {
		if f.Path != want[i] {
			t.Errorf("relocated[%d].Path = %q, want %q", i, f.Path, want[i])
		}
	}
}

func TestRelocatePlanNoopWhenSameRoot(t *testing.T) {
	plan := []emit.File{{Path: "/a/BUCK", Content: "x"}}
	if got := relocatePlan(plan, "/a", "/a"); !reflect.DeepEqual(got, plan) {
		t.Errorf("relocatePlan with out == source mutated the plan: %v", got)
	}
}

func TestRunInitWritesConfigOnce(t *testing.T) {
	dir := t.TempDir()
	log := flog.Default()
	if err := runInit([]string{dir}, log); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	path := filepath.Join(dir, ".finch.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
	if err := runInit([]string{dir}, log); err == nil {
		t.Error("second runInit: want error (already exists), got nil")
	}
}

func TestRunMigrateDryRunWritesNoFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte(`
project(demo)
add_library(demo_core STATIC a.cpp)
`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runMigrate([]string{"-n", dir}, fconfig.Default(), flog.Default()); err != nil {
		t.Fatalf("runMigrate --dry-run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "BUCK")); !os.IsNotExist(err) {
		t.Errorf("dry-run migrate created a BUCK file: err=%v", err)
	}
}

func TestRunValidateReportsSuccess(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte(`add_library(ok STATIC a.cpp)`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runValidate([]string{dir}, flog.Default()); err != nil {
		t.Fatalf("runValidate: %v", err)
	}
}
