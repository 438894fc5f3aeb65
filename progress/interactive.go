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

package progress

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	phaseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type phaseMsg string
type fileMsg string
type warnMsg string
type errMsg string
type finishMsg Summary

// interactiveModel is a Bubble Tea model that renders a spinner, the
// current phase, a rolling count of files processed, and accumulated
// warnings/errors, finishing with the run Summary — styled the way
// bobbyhouse-iguana's promptModel drives textinput.Model updates one
// event at a time, but fed from the pipeline driver instead of the
// keyboard.
type interactiveModel struct {
	spin     spinner.Model
	bar      progress.Model
	phase    string
	files    int
	warnings []string
	errs     []string
	summary  *Summary
}

func newInteractiveModel() interactiveModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return interactiveModel{
		spin: s,
		bar:  progress.New(progress.WithDefaultGradient()),
	}
}

func (m interactiveModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case phaseMsg:
		m.phase = string(msg)
		return m, nil
	case fileMsg:
		m.files++
		return m, nil
	case warnMsg:
		m.warnings = append(m.warnings, string(msg))
		return m, nil
	case errMsg:
		m.errs = append(m.errs, string(msg))
		return m, nil
	case finishMsg:
		s := Summary(msg)
		m.summary = &s
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m interactiveModel) View() string {
	if m.summary != nil {
		s := m.summary
		return doneStyle.Render(fmt.Sprintf("done: %d files, %d targets, %d errors, %d warnings (%dms)\n",
			s.FilesProcessed, s.TargetsGenerated, s.ErrorsEncountered, len(s.Warnings), s.DurationMS))
	}
	line := fmt.Sprintf("%s %s  files: %d", m.spin.View(), phaseStyle.Render(m.phase), m.files)
	for _, w := range m.warnings {
		line += "\n" + warnStyle.Render("warning: "+w)
	}
	for _, e := range m.errs {
		line += "\n" + errStyle.Render("error: "+e)
	}
	return line + "\n"
}

// Interactive is the Bubble Tea-backed Reporter used under
// -i/--interactive. Start must be called before any reporting method,
// and Wait after Finish to let the program's final frame render before
// the process exits.
type Interactive struct {
	program *tea.Program
	done    chan struct{}
}

// NewInteractive constructs an Interactive reporter. Call Start to begin
// the Bubble Tea event loop.
func NewInteractive() *Interactive {
	return &Interactive{
		program: tea.NewProgram(newInteractiveModel()),
		done:    make(chan struct{}),
	}
}

// Start runs the Bubble Tea program on its own goroutine.
func (i *Interactive) Start() {
	go func() {
		_, _ = i.program.Run()
		close(i.done)
	}()
}

// Wait blocks until the Bubble Tea program has fully exited, which
// happens once Finish sends the terminal finishMsg.
func (i *Interactive) Wait() { <-i.done }

func (i *Interactive) Phase(name string)   { i.program.Send(phaseMsg(name)) }
func (i *Interactive) FileDone(path string) { i.program.Send(fileMsg(path)) }
func (i *Interactive) Warn(message string) { i.program.Send(warnMsg(message)) }
func (i *Interactive) Error(message string) { i.program.Send(errMsg(message)) }
func (i *Interactive) Finish(s Summary)     { i.program.Send(finishMsg(s)) }
