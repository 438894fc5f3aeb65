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

// Command finch converts a CMake source tree into an equivalent Buck2
// build description. Subcommands are dispatched on os.Args[1], each
// with its own flag.FlagSet, the same shape bootstrap/minibp uses to
// dispatch on its own mode flags — no CLI framework is used anywhere in
// this codebase.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/finchbuild/finch/emit"
	"github.com/finchbuild/finch/fconfig"
	"github.com/finchbuild/finch/flog"
	"github.com/finchbuild/finch/pipeline"
	"github.com/finchbuild/finch/progress"
)

type globalFlags struct {
	config   string
	verbose  bool
	quiet    bool
	noColor  bool
	logLevel string
}

func parseGlobalFlags(args []string) (globalFlags, []string) {
	g := globalFlags{config: ".finch.toml", logLevel: "info"}
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				i++
				g.config = args[i]
			}
		case "--verbose":
			g.verbose = true
		case "--quiet":
			g.quiet = true
		case "--no-color":
			g.noColor = true
		case "--log-level":
			if i+1 < len(args) {
				i++
				g.logLevel = args[i]
			}
		default:
			rest = append(rest, args[i])
		}
	}
	return g, rest
}

func buildLogger(g globalFlags, cfg fconfig.Config) flog.Logger {
	level := g.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	lvl := flog.ParseLevel(level)
	if g.verbose {
		lvl = flog.Trace
	}
	if g.quiet {
		lvl = flog.Error
	}
	return flog.New(os.Stderr, lvl, g.noColor || cfg.NoColor)
}

func loadConfig(g globalFlags) fconfig.Config {
	cfg, err := fconfig.Load(g.config, fconfig.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return cfg
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	g, rest := parseGlobalFlags(os.Args[2:])
	cfg := loadConfig(g)
	log := buildLogger(g, cfg)

	var err error
	switch os.Args[1] {
	case "migrate":
		err = runMigrate(rest, cfg, log)
	case "validate":
		err = runValidate(rest, log)
	case "analyze":
		err = runAnalyze(rest, g, log)
	case "init":
		err = runInit(rest, log)
	case "--help", "-h", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "finch: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `finch — CMake to Buck2 migration tool

Usage:
  finch migrate <source> [-o <out>] [-n|--dry-run] [-i|--interactive] [--platform <p>...] [--overwrite] [--template-dir <dir>]
  finch validate <path>
  finch analyze <path> [--verbose]
  finch init <path>

Global flags (before the subcommand's own flags):
  --config <file>          default .finch.toml
  --verbose
  --quiet
  --no-color
  --log-level <trace|debug|info|warn|error>
`)
}

func runMigrate(args []string, cfg fconfig.Config, log flog.Logger) error {
	fs := newFlagSet("migrate")
	out := fs.String("o", cfg.Output, "output directory")
	dryRun := fs.Bool("dry-run", cfg.DryRun, "")
	fs.BoolVar(dryRun, "n", cfg.DryRun, "")
	interactive := fs.Bool("interactive", cfg.Interactive, "")
	fs.BoolVar(interactive, "i", cfg.Interactive, "")
	overwrite := fs.Bool("overwrite", cfg.Overwrite, "")
	templateDir := fs.String("template-dir", cfg.TemplateDir, "")
	parallel := fs.Bool("parallel", cfg.Parallel, "")
	var platforms stringList
	fs.Var(&platforms, "platform", "target platform (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: finch migrate <source> [flags]")
	}
	source := fs.Arg(0)
	root := *out
	if root == "" {
		root = source
	}
	_ = templateDir // reserved: no template overrides implemented yet.
	_ = overwrite   // reserved: Write always overwrites today; kept for CLI-interface parity with spec.md §6.

	var reporter progress.Reporter
	var interactiveReporter *progress.Interactive
	if *interactive {
		interactiveReporter = progress.NewInteractive()
		interactiveReporter.Start()
		reporter = interactiveReporter
	} else {
		reporter = progress.NewLine(os.Stderr)
	}

	start := time.Now()
	reporter.Phase("discovery")
	result, err := pipeline.Convert(source, pipeline.Options{Parallel: *parallel})
	if err != nil {
		return err
	}
	for _, f := range result.Files {
		reporter.FileDone(f)
	}
	for _, e := range result.ParseErrors {
		reporter.Error(e.Error())
	}
	for _, e := range result.AnalysisErrors {
		reporter.Error(e.Error())
	}
	for _, e := range result.GenerationErrors {
		reporter.Error(e.Error())
	}
	for _, w := range result.Analysis.Warnings {
		reporter.Warn(w)
	}

	reporter.Phase("emit")
	plan := relocatePlan(result.Plan, source, root)
	if err := emit.Write(plan, *dryRun); err != nil {
		return err
	}

	summary := progress.NewSummary(len(result.Files), len(result.Targets),
		len(result.ParseErrors)+len(result.AnalysisErrors)+len(result.GenerationErrors),
		result.Analysis.Warnings, start)
	reporter.Finish(summary)
	if interactiveReporter != nil {
		interactiveReporter.Wait()
		offerClipboard(plan, *dryRun)
	}

	if result.HasErrors() {
		return fmt.Errorf("migration completed with errors")
	}
	log.Infof("wrote %d file(s) to %s", len(plan), root)
	return nil
}

// relocatePlan rewrites each planned file's path from being rooted at
// source to being rooted at out, since emit.Plan plans every path under
// the discovery root it was given.
func relocatePlan(files []emit.File, source, out string) []emit.File {
	if out == source {
		return files
	}
	relocated := make([]emit.File, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(source, f.Path)
		if err != nil {
			rel = f.Path
		}
		relocated[i] = emit.File{Path: filepath.Join(out, rel), Content: f.Content}
	}
	return relocated
}

func offerClipboard(plan []emit.File, dryRun bool) {
	if len(plan) == 0 {
		return
	}
	text := plan[len(plan)-1].Path // emit.Plan puts the root .buckconfig last
	if dryRun {
		text = plan[0].Content
	}
	if err := clipboard.WriteAll(text); err == nil {
		fmt.Println("copied to clipboard")
	}
}

func runValidate(args []string, log flog.Logger) error {
	fs := newFlagSet("validate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: finch validate <path>")
	}
	result, err := pipeline.Convert(fs.Arg(0), pipeline.Options{})
	if err != nil {
		return err
	}
	if result.HasErrors() {
		for _, e := range result.ParseErrors {
			fmt.Println(e.Error())
		}
		for _, e := range result.AnalysisErrors {
			fmt.Println(e.Error())
		}
		for _, e := range result.GenerationErrors {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("validation found errors")
	}
	log.Infof("%s is valid: %d target(s)", fs.Arg(0), len(result.Targets))
	return nil
}

// analyzeDump is the YAML shape analyze --verbose emits: a debug dump,
// not the primary BUCK output.
type analyzeDump struct {
	ProjectName string   `yaml:"project_name"`
	Targets     []string `yaml:"targets"`
	Warnings    []string `yaml:"warnings"`
}

func runAnalyze(args []string, g globalFlags, log flog.Logger) error {
	fs := newFlagSet("analyze")
	verbose := fs.Bool("verbose", g.verbose, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: finch analyze <path>")
	}
	result, err := pipeline.Convert(fs.Arg(0), pipeline.Options{})
	if err != nil {
		return err
	}
	if !*verbose {
		log.Infof("%d targets, %d warnings", len(result.Targets), len(result.Analysis.Warnings))
		return nil
	}
	dump := analyzeDump{ProjectName: result.Analysis.ProjectName, Warnings: result.Analysis.Warnings}
	for _, t := range result.Targets {
		dump.Targets = append(dump.Targets, t.Name)
	}
	out, err := yaml.Marshal(dump)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func runInit(args []string, log flog.Logger) error {
	fs := newFlagSet("init")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: finch init <path>")
	}
	path := filepath.Join(fs.Arg(0), ".finch.toml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte("log_level = \"info\"\n"), 0o644); err != nil {
		return err
	}
	log.Infof("wrote %s", path)
	return nil
}
