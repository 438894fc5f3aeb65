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

package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finchbuild/finch/target"
)

func TestPlanGroupsByDirectoryPlusBuckconfig(t *testing.T) {
	targets := []*target.MappedTarget{
		{Name: "a", SourceDir: "libs/a", RuleKind: target.CxxLibrary, Properties: map[string]string{}},
		{Name: "b", SourceDir: "libs/b", RuleKind: target.CxxLibrary, Properties: map[string]string{}},
		{Name: "c", SourceDir: "libs/a", RuleKind: target.CxxLibrary, Properties: map[string]string{}},
	}
	files := Plan("root", targets)
	if len(files) != 3 {
		t.Fatalf("len(files) = %d, want 3 (two BUCK + one .buckconfig)", len(files))
	}
	var sawBuckconfig bool
	for _, f := range files {
		if filepath.Base(f.Path) == ".buckconfig" {
			sawBuckconfig = true
		}
	}
	if !sawBuckconfig {
		t.Error("Plan() did not include a .buckconfig")
	}
}

func TestWriteDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "BUCK")
	if err := Write([]File{{Path: path, Content: "x"}}, true); err != nil {
		t.Fatalf("Write(dryRun=true): %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Write(dryRun=true) created %s", path)
	}
}

func TestWriteCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "BUCK")
	if err := Write([]File{{Path: path, Content: "hello"}}, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want hello", got)
	}
}
