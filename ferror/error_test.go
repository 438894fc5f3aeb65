package ferror

import (
	"strings"
	"testing"

	"github.com/finchbuild/finch/source"
)

func TestRenderHumanIncludesLocationAndNotes(t *testing.T) {
	loc := source.Location{File: "CMakeLists.txt", Line: 3, Column: 5}
	err := NewParseError(loc, UnexpectedToken, "expected ')'").
		WithContext("while parsing add_library").
		WithHelp("close the parenthesis")

	got := RenderHuman(err)
	want := "CMakeLists.txt:3:5: error: expected ')'"
	if !strings.HasPrefix(got, want) {
		t.Errorf("RenderHuman() = %q, want prefix %q", got, want)
	}
	if !strings.Contains(got, "note: while parsing add_library") {
		t.Errorf("RenderHuman() missing note: %q", got)
	}
	if !strings.Contains(got, "help: close the parenthesis") {
		t.Errorf("RenderHuman() missing help: %q", got)
	}
}

func TestRenderStructured(t *testing.T) {
	loc := source.Location{File: "f.cmake", Line: 1, Column: 1}
	err := NewAnalysisError(loc, UndefinedVariable, "undefined variable FOO")
	got := RenderStructured(err)
	want := "ERROR:f.cmake:1:1:UndefinedVariable:undefined variable FOO"
	if got != want {
		t.Errorf("RenderStructured() = %q, want %q", got, want)
	}
}

func TestErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = NewIOError("/tmp/x", FileNotFound, "no such file")
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestSuggestFindsCloseMatch(t *testing.T) {
	got := Suggest("ad_library", []string{"add_library", "add_executable", "project"})
	if got != "add_library" {
		t.Errorf("Suggest() = %q, want add_library", got)
	}
}

func TestSuggestReturnsEmptyWhenNothingClose(t *testing.T) {
	got := Suggest("zzzzzzzzzz", []string{"add_library", "project"})
	if got != "" {
		t.Errorf("Suggest() = %q, want empty", got)
	}
}

func TestGenerationErrorCarriesTarget(t *testing.T) {
	err := NewGenerationError("calculator", UnsupportedTarget, "cannot map target")
	if err.Target != "calculator" {
		t.Errorf("Target = %q", err.Target)
	}
	if err.GenerationCategoryOf() != UnsupportedTarget {
		t.Errorf("category = %v", err.GenerationCategoryOf())
	}
}
