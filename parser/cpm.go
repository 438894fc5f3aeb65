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

package parser

import (
	"regexp"
	"strings"

	"github.com/finchbuild/finch/ast"
	"github.com/finchbuild/finch/source"
	"github.com/finchbuild/finch/token"
	"golang.org/x/mod/semver"
)

// githubShorthand matches CPM's `"gh:owner/repo@version"` and
// `"gh:owner/repo#tag"` shorthand source strings.
var githubShorthand = regexp.MustCompile(`^gh:([\w.-]+)/([\w.-]+)[@#](.+)$`)

// cpmMultiValueKeywords lists which CPM keywords take a run of values
// terminated by the next recognized keyword rather than exactly one
// following value (OPTIONS and COMPONENTS take a run, every other keyword
// in cpmKeywords takes one value).
var cpmMultiValueKeywords = map[string]bool{
	"OPTIONS": true, "COMPONENTS": true,
}

var cpmKeywords = map[string]bool{
	"NAME": true, "VERSION": true, "GIT_REPOSITORY": true, "GITHUB_REPOSITORY": true,
	"GIT_TAG": true, "DOWNLOAD_ONLY": true, "SOURCE_DIR": true, "FIND_PACKAGE_ARGUMENTS": true,
	"URL": true, "OPTIONS": true, "EXCLUDE_FROM_ALL": true, "SYSTEM": true, "COMPONENTS": true,
}

// tryParseCPM recognizes CPMAddPackage/CPMFindPackage/CPMUsePackageLock/
// CPMDeclarePackage by name (CPM's own macros are always written in this
// exact case) and dispatches to a dedicated sub-parser. It returns nil
// without consuming anything when name isn't one of the four, so the
// caller falls back to the generic CommandCall parse.
func (p *Parser) tryParseCPM(name string) ast.Stmt {
	switch name {
	case "CPMAddPackage":
		return p.parseCPMAddPackage()
	case "CPMFindPackage":
		return p.parseCPMFindPackage()
	case "CPMUsePackageLock":
		return p.parseCPMUsePackageLock()
	case "CPMDeclarePackage":
		return p.parseCPMDeclarePackage()
	default:
		return nil
	}
}

// cpmFields is the flattened keyword -> value(s) map collected from one
// CPM*() call's argument list, plus any leading positional (unkeyworded)
// string, which CPMAddPackage uses for the shorthand source form.
type cpmFields struct {
	positional string
	values     map[string]string
	lists      map[string][]string
}

// parseCPMArgs consumes `name(...)`, classifying each KEYWORD/value(s)
// run. A bare string with no preceding recognized keyword is recorded as
// the positional shorthand argument (CPMAddPackage("gh:owner/repo@1.0")).
func (p *Parser) parseCPMArgs(loc source.Location) cpmFields {
	fields := cpmFields{values: map[string]string{}, lists: map[string][]string{}}

	if _, ok := p.expect(token.LeftParen, "'('"); !ok {
		return fields
	}

	for {
		p.skipArgSeparators()
		k := p.cur().Kind
		if k == token.RightParen || k == token.Eof {
			break
		}

		if p.cur().Kind == token.Identifier && cpmKeywords[strings.ToUpper(p.cur().Str)] {
			keyword := strings.ToUpper(p.cur().Str)
			p.advance()
			if cpmMultiValueKeywords[keyword] {
				var vals []string
				for {
					p.skipArgSeparators()
					nk := p.cur().Kind
					if nk == token.RightParen || nk == token.Eof {
						break
					}
					if nk == token.Identifier && cpmKeywords[strings.ToUpper(p.cur().Str)] {
						break
					}
					vals = append(vals, p.parseOneArgumentText())
				}
				fields.lists[keyword] = vals
			} else {
				p.skipArgSeparators()
				if p.cur().Kind != token.RightParen && p.cur().Kind != token.Eof {
					fields.values[keyword] = p.parseOneArgumentText()
				}
			}
			continue
		}

		text := p.parseOneArgumentText()
		if fields.positional == "" {
			fields.positional = text
		}
	}

	p.expect(token.RightParen, "')'")
	return fields
}

// parseOneArgumentText parses one argument and renders it back to its
// plain text form, for the CPM sub-grammar where every value is
// ultimately a string (package name, version, git ref, URL).
func (p *Parser) parseOneArgumentText() string {
	e := p.parseOneArgument()
	return exprToText(e)
}

func exprToText(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.StringLiteral:
		return v.Value
	case *ast.NumberLiteral:
		return v.Text
	case *ast.BooleanLiteral:
		return v.OriginalText
	case *ast.Variable:
		return "${" + v.Name + "}"
	default:
		return ""
	}
}

// parseCPMAddPackage parses CPMAddPackage(...) in either its shorthand
// form (a single "gh:owner/repo@version" positional string) or its
// keyword-driven form (NAME/VERSION/GITHUB_REPOSITORY/GIT_REPOSITORY/
// GIT_TAG/OPTIONS/...).
func (p *Parser) parseCPMAddPackage() ast.Stmt {
	tok := p.advance() // "CPMAddPackage"
	loc := tok.Location
	fields := p.parseCPMArgs(loc)

	opts := map[string]string{}
	for _, kv := range fields.lists["OPTIONS"] {
		if name, val, ok := strings.Cut(kv, " "); ok {
			opts[strings.TrimSpace(name)] = strings.TrimSpace(val)
		}
	}

	if fields.positional != "" {
		if m := githubShorthand.FindStringSubmatch(fields.positional); m != nil {
			owner, repo, ver := m[1], m[2], m[3]
			return ast.NewCPMAddPackage(loc, repo, ast.CPMSourceGitHub, owner+"/"+repo,
				classifyCPMVersion(ver), opts, false)
		}
		return ast.NewCPMAddPackage(loc, fields.positional, ast.CPMSourceUnknown, fields.positional, nil, opts, false)
	}

	name := fields.values["NAME"]
	var v *ast.CPMVersion
	if ver, ok := fields.values["VERSION"]; ok {
		v = classifyCPMVersion(ver)
	}

	kind := ast.CPMSourceUnknown
	src := ""
	if gh, ok := fields.values["GITHUB_REPOSITORY"]; ok {
		kind, src = ast.CPMSourceGitHub, gh
	} else if giturl, ok := fields.values["GIT_REPOSITORY"]; ok {
		kind, src = ast.CPMSourceGitURL, giturl
	} else if u, ok := fields.values["URL"]; ok {
		kind, src = ast.CPMSourceURL, u
	} else if sd, ok := fields.values["SOURCE_DIR"]; ok {
		kind, src = ast.CPMSourceLocal, sd
	}
	if name == "" {
		name = src
	}
	if tag, ok := fields.values["GIT_TAG"]; ok && v == nil {
		v = &ast.CPMVersion{Version: tag, Exact: true}
	}

	_, fallback := fields.values["FIND_PACKAGE_ARGUMENTS"]

	return ast.NewCPMAddPackage(loc, name, kind, src, v, opts, fallback)
}

func (p *Parser) parseCPMFindPackage() ast.Stmt {
	tok := p.advance()
	loc := tok.Location
	fields := p.parseCPMArgs(loc)

	var v *ast.CPMVersion
	if ver, ok := fields.values["VERSION"]; ok {
		v = classifyCPMVersion(ver)
	}
	return ast.NewCPMFindPackage(loc, fields.values["NAME"], v,
		fields.lists["COMPONENTS"], fields.values["GITHUB_REPOSITORY"], fields.values["GIT_TAG"])
}

func (p *Parser) parseCPMUsePackageLock() ast.Stmt {
	tok := p.advance()
	loc := tok.Location
	if _, ok := p.expect(token.LeftParen, "'('"); !ok {
		return ast.NewErrorNode(loc, "expected '(' after CPMUsePackageLock", ast.CategoryUnexpectedToken)
	}
	path := ""
	if p.cur().Kind != token.RightParen {
		path = p.parseOneArgumentText()
	}
	p.expect(token.RightParen, "')'")
	return ast.NewCPMUsePackageLock(loc, path)
}

func (p *Parser) parseCPMDeclarePackage() ast.Stmt {
	tok := p.advance()
	loc := tok.Location
	fields := p.parseCPMArgs(loc)
	return ast.NewCPMDeclarePackage(loc, fields.values["NAME"], fields.values["VERSION"],
		fields.values["GITHUB_REPOSITORY"], fields.values["GIT_REPOSITORY"])
}

// classifyCPMVersion distinguishes an exact version pin from a minimum-
// version constraint per §4.3: a bare "1.2.3" is exact; ">=1.2.3" (CPM's
// own convention for minimum-version ranges piped through find_package)
// is a minimum. golang.org/x/mod/semver grounds the canonicalization used
// to compare versions downstream in evaluation.
func classifyCPMVersion(raw string) *ast.CPMVersion {
	trimmed := strings.TrimSpace(raw)
	exact := true
	v := trimmed
	if strings.HasPrefix(trimmed, ">=") {
		exact = false
		v = strings.TrimSpace(trimmed[2:])
	}
	canon := v
	if !strings.HasPrefix(canon, "v") {
		canon = "v" + canon
	}
	if semver.IsValid(canon) {
		v = strings.TrimPrefix(canon, "v")
	}
	return &ast.CPMVersion{Version: v, Exact: exact}
}
