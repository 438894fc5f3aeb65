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

package ferror

import "github.com/agext/levenshtein"

// Suggest returns the entry in candidates closest to got by edit distance,
// for "did you mean" help text on UnknownCommand/UnknownOption errors. It
// returns "" if candidates is empty or nothing is close enough to be a
// plausible typo (edit distance more than a third of got's length, plus
// one).
func Suggest(got string, candidates []string) string {
	if len(candidates) == 0 || got == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.Distance(got, c, nil)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	maxDist := len(got)/3 + 1
	if bestDist > maxDist {
		return ""
	}
	return best
}

// SuggestHelp formats a Suggest result as a ready-to-use help string, or
// "" if there was no good suggestion.
func SuggestHelp(got string, candidates []string) string {
	if s := Suggest(got, candidates); s != "" {
		return "did you mean \"" + s + "\"?"
	}
	return ""
}
