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

// Package progress defines the progress-reporting interface the pipeline
// driver reports through (§6): phase boundaries, a counter, per-file
// notices, warnings and errors, and a final summary. Two implementations
// are provided: Line, a quiet/CI-friendly printer, and the Bubble Tea
// program in interactive.go used under -i/--interactive.
package progress

import "time"

// Summary is the run's final report, matching §6's
// {files_processed, targets_generated, errors_encountered, warnings[],
// duration_ms} shape exactly.
type Summary struct {
	FilesProcessed   int
	TargetsGenerated int
	ErrorsEncountered int
	Warnings         []string
	DurationMS       int64
}

// Reporter is the progress-reporting interface the pipeline driver
// reports through. Implementations must tolerate being called from a
// single goroutine only: the driver serializes all reporting calls even
// when per-file evaluation itself runs in parallel (§5).
type Reporter interface {
	// Phase announces the start of a pipeline stage (discovery, parse,
	// evaluate, merge, map, emit).
	Phase(name string)
	// FileDone reports that one discovered file finished its
	// parse+evaluate phase.
	FileDone(path string)
	// Warn reports one non-fatal warning collected during the run.
	Warn(message string)
	// Error reports one error-kind failure collected during the run.
	Error(message string)
	// Finish renders the final Summary.
	Finish(s Summary)
}

// NewSummary builds a Summary from run counters and a start time,
// computing DurationMS from time.Since(start).
func NewSummary(filesProcessed, targetsGenerated, errorsEncountered int, warnings []string, start time.Time) Summary {
	return Summary{
		FilesProcessed:    filesProcessed,
		TargetsGenerated:  targetsGenerated,
		ErrorsEncountered: errorsEncountered,
		Warnings:          warnings,
		DurationMS:        time.Since(start).Milliseconds(),
	}
}
