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

// VarScope distinguishes ${x}, $ENV{x}, and $CACHE{x} references.
type VarScope int

const (
	ScopeNormal VarScope = iota
	ScopeEnv
	ScopeCache
)

func (s VarScope) String() string {
	switch s {
	case ScopeEnv:
		return "ENV"
	case ScopeCache:
		return "CACHE"
	default:
		return ""
	}
}

// Variable is a ${name}, $ENV{name}, or $CACHE{name} reference.
type Variable struct {
	base
	Name  string
	Scope VarScope
}

func (*Variable) exprTag() {}
