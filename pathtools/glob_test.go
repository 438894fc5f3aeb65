// Copyright 2014 Google Inc. All rights reserved.
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

package pathtools

import (
	"path/filepath"
	"sort"
	"testing"
)

// TestOsFsGlobFindsCMakeFiles drives osFs.Glob the exact way
// pipeline.Discover does: one call per directory, once for
// "CMakeLists.txt" and once for "*.cmake".
func TestOsFsGlobFindsCMakeFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	matches, dirs, err := OsFs.Glob(filepath.Join(root, "libs/a/CMakeLists.txt"), nil)
	if err != nil {
		t.Fatalf("Glob(CMakeLists.txt): %v", err)
	}
	if len(matches) != 1 || matches[0] != filepath.Join(root, "libs/a/CMakeLists.txt") {
		t.Errorf("matches = %v, want one match", matches)
	}
	if len(dirs) != 0 {
		t.Errorf("dirs = %v, want none for a non-wild pattern", dirs)
	}

	matches, _, err = OsFs.Glob(filepath.Join(root, "libs/a/*.cmake"), nil)
	if err != nil {
		t.Fatalf("Glob(*.cmake): %v", err)
	}
	if len(matches) != 1 || matches[0] != filepath.Join(root, "libs/a/helper.cmake") {
		t.Errorf("matches = %v, want [helper.cmake]", matches)
	}
}

func TestOsFsGlobExcludesFiltersMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	pattern := filepath.Join(root, "libs/a/*.cmake")
	exclude := filepath.Join(root, "libs/a/helper.cmake")

	matches, _, err := OsFs.Glob(pattern, []string{exclude})
	if err != nil {
		t.Fatalf("Glob with excludes: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("matches = %v, want none once helper.cmake is excluded", matches)
	}
}

func TestMockFsGlobFindsCMakeFiles(t *testing.T) {
	fs := MockFs(map[string][]byte{
		"CMakeLists.txt":        []byte("project(demo)"),
		"libs/a/CMakeLists.txt": []byte("add_library(a STATIC a.cpp)"),
		"libs/b/CMakeLists.txt": []byte("add_library(b STATIC b.cpp)"),
	})

	matches, dirs, err := fs.Glob("libs/*/CMakeLists.txt", nil)
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	sort.Strings(matches)
	want := []string{"libs/a/CMakeLists.txt", "libs/b/CMakeLists.txt"}
	if len(matches) != len(want) || matches[0] != want[0] || matches[1] != want[1] {
		t.Errorf("matches = %v, want %v", matches, want)
	}
	if len(dirs) == 0 {
		t.Errorf("dirs = %v, want the searched directories recorded", dirs)
	}
}

func TestFilterExcludes(t *testing.T) {
	in := []string{"a/CMakeLists.txt", "b/CMakeLists.txt", "vendor/CMakeLists.txt"}
	got := filterExcludes(in, []string{"vendor/*"})
	want := []string{"a/CMakeLists.txt", "b/CMakeLists.txt"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("filterExcludes = %v, want %v", got, want)
	}
}

func TestFilterExcludesNoExcludesReturnsInputUnchanged(t *testing.T) {
	in := []string{"a", "b"}
	if got := filterExcludes(in, nil); len(got) != 2 {
		t.Errorf("filterExcludes(in, nil) = %v, want input unchanged", got)
	}
}
