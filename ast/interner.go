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

package ast

// Interner deduplicates the names (commands, variables, identifiers, file
// paths) that recur constantly across one parse: a single append-only
// table keyed by a hash map, handing out stable strings that all refer to
// the same backing storage for the lifetime of the parse. It is not
// thread-safe; per §5 each file's parser owns its own Interner (or a
// caller synchronizes access if one is shared across files).
type Interner struct {
	table map[string]string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]string)}
}

// Intern returns a stable string equal to s; repeated calls with equal
// strings return the exact same backing string.
func (in *Interner) Intern(s string) string {
	if v, ok := in.table[s]; ok {
		return v
	}
	in.table[s] = s
	return s
}

// Len reports how many distinct strings have been interned.
func (in *Interner) Len() int { return len(in.table) }
