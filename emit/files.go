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
	"sort"

	"github.com/finchbuild/finch/target"
)

// File is one planned output file: a path under the discovery root (the
// root prefix included) and the content it should hold. Plan never touches the
// filesystem; Write is the only function in this package with I/O side
// effects, so a caller can diff or display a Plan result under
// --dry-run without ever creating a file (§8's dry-run property).
type File struct {
	Path    string
	Content string
}

// Plan groups mapped targets by SourceDir (§9's decision: one BUCK file
// per directory that declares at least one target, not a single root
// BUCK, since Buck2 itself resolves targets by directory package and a
// monolithic BUCK would collide with that model for any project with
// targets in more than one directory) and renders one BUCK file per
// group, plus the single root .buckconfig. A directory whose CMake files
// declare no target gets no BUCK file.
func Plan(root string, targets []*target.MappedTarget) []File {
	byDir := map[string][]*target.MappedTarget{}
	for _, mt := range targets {
		byDir[mt.SourceDir] = append(byDir[mt.SourceDir], mt)
	}

	dirs := make([]string, 0, len(byDir))
	for d := range byDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	files := make([]File, 0, len(dirs)+1)
	for _, d := range dirs {
		files = append(files, File{
			Path:    filepath.Join(d, "BUCK"),
			Content: RenderBuckFile(byDir[d]),
		})
	}
	files = append(files, File{
		Path:    filepath.Join(root, ".buckconfig"),
		Content: BuckConfig(),
	})
	return files
}

// Write creates (or overwrites) every planned file on disk, creating
// parent directories as needed. When dryRun is true, Write validates
// nothing further and performs no filesystem operations at all — the
// caller already has the full plan to display.
func Write(files []File, dryRun bool) error {
	if dryRun {
		return nil
	}
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(f.Path, []byte(f.Content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
