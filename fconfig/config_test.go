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

package fconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".finch.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsBaseUnchanged(t *testing.T) {
	base := Default()
	base.LogLevel = "debug"
	got, err := Load(filepath.Join(t.TempDir(), ".finch.toml"), base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, base) {
		t.Errorf("Load(missing) = %+v, want unchanged base %+v", got, base)
	}
}

func TestLoadAppliesAttributes(t *testing.T) {
	path := writeConfig(t, `
verbose     = true
log_level   = "debug"
output      = "build/buck"
platforms   = ["linux", "darwin"]
`)
	got, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Verbose {
		t.Error("Verbose = false, want true")
	}
	if got.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", got.LogLevel)
	}
	if got.Output != "build/buck" {
		t.Errorf("Output = %q, want build/buck", got.Output)
	}
	if !reflect.DeepEqual(got.Platforms, []string{"linux", "darwin"}) {
		t.Errorf("Platforms = %v, want [linux darwin]", got.Platforms)
	}
}

func TestLoadUnknownKeyIsError(t *testing.T) {
	path := writeConfig(t, `made_up_option = true`)
	if _, err := Load(path, Default()); err == nil {
		t.Error("Load with an unknown key: want error, got nil")
	}
}

func TestLoadTypeMismatchIsError(t *testing.T) {
	path := writeConfig(t, `verbose = "yes"`)
	if _, err := Load(path, Default()); err == nil {
		t.Error("Load with verbose set to a string: want error, got nil")
	}
}
