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

package pipeline

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/finchbuild/finch/emit"
	"github.com/finchbuild/finch/eval"
	"github.com/finchbuild/finch/ferror"
	"github.com/finchbuild/finch/parser"
	"github.com/finchbuild/finch/source"
	"github.com/finchbuild/finch/target"
)

// Options controls how Convert discovers, evaluates and emits.
type Options struct {
	// Parallel evaluates discovered files concurrently via errgroup
	// (§5's parallel-discovery mode). Merge order is always discovery
	// order regardless of which goroutine finishes first.
	Parallel bool
	// MaxWorkers bounds concurrent file evaluation when Parallel is set.
	// Zero means errgroup.Group's own unbounded behavior.
	MaxWorkers int
}

// Result is the whole run's output, before anything is written to disk:
// the merged analysis, the mapped targets, the planned output files, and
// every error collected along the way, bucketed by §7's five-kind model.
type Result struct {
	Files          []string
	Analysis       *eval.ProjectAnalysis
	Targets        []*target.MappedTarget
	Plan           []emit.File
	ParseErrors    []*ferror.Error
	AnalysisErrors []*ferror.Error
	GenerationErrors []*ferror.Error
}

// HasErrors reports whether any error-kind bucket is non-empty.
func (r *Result) HasErrors() bool {
	return len(r.ParseErrors) > 0 || len(r.AnalysisErrors) > 0 || len(r.GenerationErrors) > 0
}

type fileResult struct {
	analysis *eval.ProjectAnalysis
	parseErr []*ferror.Error
	evalErr  []*ferror.Error
}

// Convert discovers CMake input under root, evaluates every file found,
// merges the results, maps targets onto Buck2 rules, and plans the
// output files (BUCK per directory plus the root .buckconfig). It
// performs no write I/O: the caller decides whether to commit Result.Plan
// to disk (via emit.Write) or just display it, keeping --dry-run a
// concern of cmd/finch rather than of Convert itself.
func Convert(root string, opts Options) (*Result, error) {
	files, err := Discover(root)
	if err != nil {
		return nil, ferror.NewIOError(root, ferror.InvalidPath, err.Error())
	}

	results := make([]fileResult, len(files))

	evalOne := func(i string, idx int) error {
		content, err := os.ReadFile(i)
		if err != nil {
			results[idx].parseErr = []*ferror.Error{
				ferror.NewIOError(i, ferror.FileNotFound, err.Error()),
			}
			return nil
		}
		buf := source.New(i, content)
		file, perrs := parser.ParseFile(buf)
		results[idx].parseErr = perrs
		analysis, everrs := eval.EvaluateFile(file)
		results[idx].analysis = analysis
		results[idx].evalErr = everrs
		return nil
	}

	if opts.Parallel {
		g, _ := errgroup.WithContext(context.Background())
		if opts.MaxWorkers > 0 {
			g.SetLimit(opts.MaxWorkers)
		}
		for idx, f := range files {
			idx, f := idx, f
			g.Go(func() error { return evalOne(f, idx) })
		}
		// evalOne never returns a non-nil error (failures are recorded as
		// ferror.Error values instead), so Wait's error is always nil; it
		// exists to block until every worker has finished.
		_ = g.Wait()
	} else {
		for idx, f := range files {
			_ = evalOne(f, idx)
		}
	}

	res := &Result{Files: files}
	analyses := make([]*eval.ProjectAnalysis, 0, len(results))
	for _, r := range results {
		res.ParseErrors = append(res.ParseErrors, r.parseErr...)
		res.AnalysisErrors = append(res.AnalysisErrors, r.evalErr...)
		if r.analysis != nil {
			analyses = append(analyses, r.analysis)
		}
	}
	res.Analysis = eval.Merge(analyses...)

	mapped, gerrs := target.MapAll(res.Analysis.Targets)
	res.Targets = mapped
	res.GenerationErrors = gerrs

	res.Plan = emit.Plan(root, mapped)
	return res, nil
}
