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

package eval

// EvaluationContext is one scope in the variable scope chain: the root
// context for a file, or a child pushed for a foreach/function/macro
// body. Variable lookups walk up through parent on miss; cache variables
// and the discovered target list are shared across the whole chain
// (§4.4: "cache variables do not inherit" means they live outside the
// scope chain entirely, not that each scope gets its own copy).
type EvaluationContext struct {
	parent    *EvaluationContext
	variables map[string]EvaluatedValue

	// Shared across the whole context tree rooted at one NewRootContext:
	cacheVars *map[string]EvaluatedValue
	platform  map[string]EvaluatedValue
	targets   *[]*Target
}

// NewRootContext creates the top-level scope for one file, with the
// platform-check bare words seeded per §4.4.
func NewRootContext() *EvaluationContext {
	platform := map[string]EvaluatedValue{}
	for name, v := range seedPlatformChecks() {
		platform[name] = BoolValue(v, Certain)
	}
	cache := map[string]EvaluatedValue{}
	targets := []*Target{}
	return &EvaluationContext{
		variables: map[string]EvaluatedValue{},
		cacheVars: &cache,
		platform:  platform,
		targets:   &targets,
	}
}

// Child pushes a new scope (a foreach iteration, a function/macro body)
// that inherits lookups from ctx but writes into its own variable map.
func (ctx *EvaluationContext) Child() *EvaluationContext {
	return &EvaluationContext{
		parent:    ctx,
		variables: map[string]EvaluatedValue{},
		cacheVars: ctx.cacheVars,
		platform:  ctx.platform,
		targets:   ctx.targets,
	}
}

// Lookup resolves name by walking up the scope chain, then the platform
// table, then the cache. Ordinary variables shadow platform bare words,
// which shadow cache variables of the same name — the same precedence
// CMake itself applies to unqualified ${name} lookups.
func (ctx *EvaluationContext) Lookup(name string) (EvaluatedValue, bool) {
	for c := ctx; c != nil; c = c.parent {
		if v, ok := c.variables[name]; ok {
			return v, true
		}
	}
	if v, ok := ctx.platform[name]; ok {
		return v, true
	}
	if v, ok := (*ctx.cacheVars)[name]; ok {
		return v, true
	}
	return EvaluatedValue{}, false
}

// Set writes name into this scope only (set() without PARENT_SCOPE).
func (ctx *EvaluationContext) Set(name string, v EvaluatedValue) {
	ctx.variables[name] = v
}

// SetCache writes name into the shared cache-variable table.
func (ctx *EvaluationContext) SetCache(name string, v EvaluatedValue) {
	(*ctx.cacheVars)[name] = v
}

// LookupCache resolves name directly against the cache table, bypassing
// the scope chain (used by option()'s "already cached" check).
func (ctx *EvaluationContext) LookupCache(name string) (EvaluatedValue, bool) {
	v, ok := (*ctx.cacheVars)[name]
	return v, ok
}

// AddTarget records t in the shared, chain-wide target list.
func (ctx *EvaluationContext) AddTarget(t *Target) {
	*ctx.targets = append(*ctx.targets, t)
}

// Targets returns every target recorded anywhere in this context's chain.
func (ctx *EvaluationContext) Targets() []*Target {
	return *ctx.targets
}

// FindTarget looks up a previously recorded target by name, for commands
// like target_link_libraries that mutate a target declared earlier.
func (ctx *EvaluationContext) FindTarget(name string) (*Target, bool) {
	for _, t := range *ctx.targets {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
