// Copyright 2018 Google Inc. All rights reserved.
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
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeTree mirrors the project layouts pipeline.Discover walks: a root
// CMakeLists.txt, a couple of library subdirectories, and a dot-prefixed
// directory that must never be descended into.
func writeTree(t *testing.T, root string) {
	t.Helper()
	files := map[string]string{
		"CMakeLists.txt":        "project(demo)",
		"libs/a/CMakeLists.txt": "add_library(a STATIC a.cpp)",
		"libs/a/helper.cmake":   "set(X 1)",
		"libs/a/a.cpp":          "",
		".git/CMakeLists.txt":   "should never be reached",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestOsFsExistsAndIsDir(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	exists, isDir, err := OsFs.Exists(filepath.Join(root, "CMakeLists.txt"))
	if err != nil || !exists || isDir {
		t.Errorf("Exists(CMakeLists.txt) = %v, %v, %v", exists, isDir, err)
	}

	exists, isDir, err = OsFs.Exists(filepath.Join(root, "libs/a"))
	if err != nil || !exists || !isDir {
		t.Errorf("Exists(libs/a) = %v, %v, %v", exists, isDir, err)
	}

	exists, _, err = OsFs.Exists(filepath.Join(root, "does-not-exist"))
	if err != nil || exists {
		t.Errorf("Exists(does-not-exist) = %v, %v", exists, err)
	}

	dir, err := OsFs.IsDir(root)
	if err != nil || !dir {
		t.Errorf("IsDir(root) = %v, %v", dir, err)
	}
}

func TestOsFsOpenReadsContent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	rc, err := OsFs.Open(filepath.Join(root, "libs/a/CMakeLists.txt"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	buf := make([]byte, 64)
	n, _ := rc.Read(buf)
	if got := string(buf[:n]); got != "add_library(a STATIC a.cpp)" {
		t.Errorf("Open content = %q", got)
	}
}

func TestOsFsListDirsRecursiveSkipsDotDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	dirs, err := OsFs.ListDirsRecursive(root)
	if err != nil {
		t.Fatalf("ListDirsRecursive: %v", err)
	}
	for _, d := range dirs {
		if filepath.Base(d) == ".git" {
			t.Errorf("ListDirsRecursive included a dot-prefixed directory: %v", dirs)
		}
	}
	var sawLibsA bool
	for _, d := range dirs {
		if d == filepath.Join(root, "libs/a") {
			sawLibsA = true
		}
	}
	if !sawLibsA {
		t.Errorf("ListDirsRecursive missed libs/a, got %v", dirs)
	}
}

func TestMockFsExistsAndIsDir(t *testing.T) {
	fs := MockFs(map[string][]byte{
		"CMakeLists.txt":        []byte("project(demo)"),
		"libs/a/CMakeLists.txt": []byte("add_library(a STATIC a.cpp)"),
	})

	exists, isDir, err := fs.Exists("CMakeLists.txt")
	if err != nil || !exists || isDir {
		t.Errorf("Exists(CMakeLists.txt) = %v, %v, %v", exists, isDir, err)
	}

	exists, isDir, err = fs.Exists("libs/a")
	if err != nil || !exists || !isDir {
		t.Errorf("Exists(libs/a) = %v, %v, %v", exists, isDir, err)
	}

	dirs, err := fs.ListDirsRecursive(".")
	if err != nil {
		t.Fatalf("ListDirsRecursive: %v", err)
	}
	sort.Strings(dirs)
	if len(dirs) == 0 {
		t.Errorf("ListDirsRecursive(.) returned no directories")
	}
}
