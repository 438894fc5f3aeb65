package source

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocationAtAgreesWithLinearScan(t *testing.T) {
	content := "project(foo)\nadd_library(bar\n  baz.cpp)\n\nendif()\n"
	buf := New("CMakeLists.txt", []byte(content))

	for offset := 0; offset <= len(content); offset++ {
		want := linearScanLocation(content, "CMakeLists.txt", offset)
		got := buf.LocationAt(offset)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("offset %d: location mismatch (-want +got):\n%s", offset, diff)
		}
	}
}

// linearScanLocation computes the same thing LocationAt does, but by
// scanning from the start every time, as an oracle for the binary search.
func linearScanLocation(content, file string, offset int) Location {
	if offset > len(content) {
		offset = len(content)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Location{File: file, Line: line, Column: col, Offset: offset}
}

func TestLineContentTrimsCR(t *testing.T) {
	buf := New("f.cmake", []byte("set(a 1)\r\nset(b 2)\r\n"))
	if got := buf.LineContent(1); got != "set(a 1)" {
		t.Errorf("LineContent(1) = %q, want %q", got, "set(a 1)")
	}
	if got := buf.LineContent(2); got != "set(b 2)" {
		t.Errorf("LineContent(2) = %q, want %q", got, "set(b 2)")
	}
}

func TestLineContentOutOfRange(t *testing.T) {
	buf := New("f.cmake", []byte("a\nb\n"))
	if got := buf.LineContent(0); got != "" {
		t.Errorf("LineContent(0) = %q, want empty", got)
	}
	if got := buf.LineContent(100); got != "" {
		t.Errorf("LineContent(100) = %q, want empty", got)
	}
}

func TestLocationAtClampsOutOfRangeOffsets(t *testing.T) {
	buf := New("f.cmake", []byte("abc\ndef\n"))
	loc := buf.LocationAt(1000)
	if loc.Offset != buf.Len() {
		t.Errorf("Offset = %d, want %d", loc.Offset, buf.Len())
	}
	neg := buf.LocationAt(-5)
	if neg.Offset != 0 {
		t.Errorf("Offset = %d, want 0", neg.Offset)
	}
}

func TestLocationValid(t *testing.T) {
	cases := []struct {
		loc  Location
		want bool
	}{
		{Location{File: "a", Line: 1, Column: 1}, true},
		{Location{File: "", Line: 1, Column: 1}, false},
		{Location{File: "a", Line: 0, Column: 1}, false},
		{Location{File: "a", Line: 1, Column: 0}, false},
	}
	for _, c := range cases {
		if got := c.loc.Valid(); got != c.want {
			t.Errorf("Valid(%+v) = %v, want %v", c.loc, got, c.want)
		}
	}
}

func TestBufferSliceClamps(t *testing.T) {
	buf := New("f", []byte("hello"))
	if got := buf.Slice(-2, 100); got != "hello" {
		t.Errorf("Slice(-2, 100) = %q, want %q", got, "hello")
	}
	if got := buf.Slice(2, 1); got != "" {
		t.Errorf("Slice(2, 1) = %q, want empty", got)
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{File: "CMakeLists.txt", Line: 3, Column: 7}
	if got, want := loc.String(), "CMakeLists.txt:3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.Contains(Location{}.String(), "invalid") {
		t.Errorf("zero Location.String() should mention invalid")
	}
}
