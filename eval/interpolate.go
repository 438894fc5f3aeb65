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

import "regexp"

// plainVarRef matches one innermost, non-nested `${IDENT}` or
// `$ENV{IDENT}` reference — "innermost" because the character class
// excludes `$` and `{`, so a match can never itself contain another
// unresolved reference.
var plainVarRef = regexp.MustCompile(`\$(ENV)?\{([A-Za-z0-9_]+)\}`)

// maxInterpolationRounds bounds the substitution loop below, mirroring
// the evaluator's general recursion-guard depth (§4.4).
const maxInterpolationRounds = 100

// interpolate implements §4.4's string interpolation algorithm: repeatedly
// substitute the innermost ${IDENT} (or $ENV{IDENT}) reference until none
// remain or one is unresolved. A miss leaves that reference's literal text
// in place, downgrades the result to Uncertain confidence and stops the
// substitution: references after it in the same string stay unexpanded.
// $ENV{...} always resolves at Uncertain confidence (§4.4: finch cannot
// know the environment a build will actually run under).
func (e *Evaluator) interpolate(ctx *EvaluationContext, raw string) EvaluatedValue {
	result := raw
	confidence := Certain
	anyRef := false

	for round := 0; round < maxInterpolationRounds; round++ {
		loc := plainVarRef.FindStringSubmatchIndex(result)
		if loc == nil {
			break
		}
		anyRef = true
		whole := result[loc[0]:loc[1]]
		isEnv := loc[2] != -1
		name := result[loc[4]:loc[5]]

		var replacement string
		var refConfidence Confidence
		if isEnv {
			// Environment lookups are never Certain: the build environment
			// finch runs in need not match the one the generated BUCK file
			// will build under.
			if v, ok := ctx.Lookup("ENV{" + name + "}"); ok {
				replacement = Text(v)
			}
			refConfidence = Uncertain
		} else if v, ok := ctx.Lookup(name); ok {
			replacement = Text(v)
			refConfidence = v.Confidence
		} else {
			// Unresolved reference: leave the literal text in place and
			// downgrade, per §4.4.
			replacement = whole
			refConfidence = Uncertain
		}

		result = result[:loc[0]] + replacement + result[loc[1]:]
		confidence = confidence.Min(refConfidence)

		if replacement == whole {
			// Substituting produced no change (the unresolved-reference
			// case): avoid looping forever over the same text.
			break
		}
	}

	if !anyRef {
		return StringValue(raw, Certain)
	}
	return StringValue(result, confidence)
}
