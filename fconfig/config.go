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

// Package fconfig loads .finch.toml, mirroring the CLI's global flags so
// a project can pin them once instead of repeating them on every
// invocation. .finch.toml's grammar is the flat `key = value` stanza
// spec.md §6 describes, which is exactly HCL's native attribute-only
// syntax with no blocks; Load parses it with hclparse/hcl.Body rather
// than a hand-rolled scanner, the same attrs-then-cty.Value pipeline
// specialistvlad-burstgridgo's HCL loader uses for its own flat
// argument bodies (JustAttributes + Expr.Value(nil)).
package fconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/finchbuild/finch/ferror"
)

// Config mirrors §6's CLI global flags plus migrate's own options, so a
// .finch.toml can set defaults for any of them.
type Config struct {
	Verbose     bool
	Quiet       bool
	NoColor     bool
	LogLevel    string
	Output      string
	DryRun      bool
	Interactive bool
	Overwrite   bool
	TemplateDir string
	Platforms   []string
	Parallel    bool
}

// Default returns the zero-value Config with LogLevel defaulted to
// "info", matching the CLI's own default when no --log-level is given.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads path (typically ".finch.toml") and applies its key = value
// attributes on top of base, returning the merged Config. A missing file
// is not an error: it returns base unchanged, since --config only
// overrides when the file is actually present (§6 doesn't require one to
// exist).
func Load(path string, base Config) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, ferror.NewIOError(path, ferror.FileNotFound, err.Error())
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, ferror.NewConfigError(path, ferror.InvalidFormat, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return base, ferror.NewConfigError(path, ferror.InvalidFormat, diags.Error())
	}

	cfg := base
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return base, ferror.NewConfigError(name, ferror.InvalidFormat, diags.Error())
		}
		if err := apply(&cfg, name, val); err != nil {
			return base, ferror.NewConfigError(name, ferror.UnknownOption, err.Error())
		}
	}
	return cfg, nil
}

func apply(cfg *Config, key string, val cty.Value) error {
	switch key {
	case "verbose":
		return applyBool(&cfg.Verbose, key, val)
	case "quiet":
		return applyBool(&cfg.Quiet, key, val)
	case "no_color":
		return applyBool(&cfg.NoColor, key, val)
	case "log_level":
		return applyString(&cfg.LogLevel, key, val)
	case "output":
		return applyString(&cfg.Output, key, val)
	case "dry_run":
		return applyBool(&cfg.DryRun, key, val)
	case "interactive":
		return applyBool(&cfg.Interactive, key, val)
	case "overwrite":
		return applyBool(&cfg.Overwrite, key, val)
	case "template_dir":
		return applyString(&cfg.TemplateDir, key, val)
	case "parallel":
		return applyBool(&cfg.Parallel, key, val)
	case "platforms":
		return applyList(&cfg.Platforms, key, val)
	default:
		return unknownKeyError(key)
	}
}

func applyBool(dst *bool, key string, val cty.Value) error {
	if val.IsNull() || val.Type() != cty.Bool {
		return fmt.Errorf("%s: expected a bool, got %s", key, val.Type().FriendlyName())
	}
	*dst = val.True()
	return nil
}

func applyString(dst *string, key string, val cty.Value) error {
	if val.IsNull() || val.Type() != cty.String {
		return fmt.Errorf("%s: expected a string, got %s", key, val.Type().FriendlyName())
	}
	*dst = val.AsString()
	return nil
}

func applyList(dst *[]string, key string, val cty.Value) error {
	if val.IsNull() || !val.CanIterateElements() {
		return fmt.Errorf("%s: expected a list of strings, got %s", key, val.Type().FriendlyName())
	}
	var out []string
	it := val.ElementIterator()
	for it.Next() {
		_, ev := it.Element()
		if ev.Type() != cty.String {
			return fmt.Errorf("%s: list elements must be strings", key)
		}
		out = append(out, ev.AsString())
	}
	*dst = out
	return nil
}

type unknownKeyError string

func (e unknownKeyError) Error() string { return "unknown config key " + string(e) }
