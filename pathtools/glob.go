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
	"strings"
)

// Faster version of dir, file := filepath.Dir(path), filepath.File(path)
// Similar to filepath.Split, but returns "." if dir is empty and trims trailing slash if dir is
// not "/"
func saneSplit(path string) (dir, file string) {
	dir, file = filepath.Split(path)
	switch dir {
	case "":
		dir = "."
	case "/":
		// Nothing
	default:
		dir = dir[:len(dir)-1]
	}
	return dir, file
}

func isWild(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// startGlob is the FileSystem-backed wildcard-segment-at-a-time glob
// osFs.Glob/mockFs.Glob route through: a pattern is split at its last
// path separator, the directory half is resolved recursively, then each
// resolved directory is globbed one segment at a time through the
// injectable FileSystem (osFs or mockFs) instead of os/filepath
// directly, so Discover can be exercised against a mocked tree in
// tests. excludes is a set of glob patterns whose matches are filtered
// out of the result.
func startGlob(fs FileSystem, pattern string, excludes []string) (matches, dirs []string, err error) {
	if !isWild(pattern) {
		exists, _, err := fs.Exists(pattern)
		if err != nil {
			return nil, nil, err
		}
		if exists {
			matches = []string{pattern}
		}
		return filterExcludes(matches, excludes), dirs, nil
	}

	dir, file := saneSplit(pattern)
	dirMatches, dirs, err := startGlob(fs, dir, excludes)
	if err != nil {
		return nil, nil, err
	}
	for _, m := range dirMatches {
		isDir, err := fs.IsDir(m)
		if err != nil {
			return nil, nil, err
		}
		if !isDir {
			continue
		}
		dirs = append(dirs, m)
		newMatches, err := fs.glob(filepath.Join(m, file))
		if err != nil {
			return nil, nil, err
		}
		matches = append(matches, filterExcludes(newMatches, excludes)...)
	}
	return matches, dirs, nil
}

func filterExcludes(in, excludes []string) []string {
	if len(excludes) == 0 {
		return in
	}
	var out []string
	for _, m := range in {
		excluded := false
		for _, e := range excludes {
			if ok, _ := filepath.Match(e, m); ok {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, m)
		}
	}
	return out
}
