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

// Package source owns the raw text of a single input file and maps byte
// offsets within it to file/line/column locations.
package source

import (
	"sort"
	"strings"
)

// Location is a (file, line, column, byte offset) pair. Line and column are
// 1-based; Offset is a 0-based byte offset.
type Location struct {
	File   string
	Line   int
	Column int
	Offset int
}

// Valid reports whether the location carries enough information to be
// rendered or compared: a non-empty file and a 1-based line and column.
func (l Location) Valid() bool {
	return l.File != "" && l.Line >= 1 && l.Column >= 1
}

func (l Location) String() string {
	if !l.Valid() {
		return "<invalid location>"
	}
	var b strings.Builder
	b.WriteString(l.File)
	b.WriteByte(':')
	b.WriteString(itoa(l.Line))
	b.WriteByte(':')
	b.WriteString(itoa(l.Column))
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Range pairs two locations in the same file, with Start preceding End.
type Range struct {
	Start Location
	End   Location
}

// Buffer owns the full text of one input file and a precomputed index of
// line-start byte offsets, letting Location lookups run in O(log lines)
// instead of re-scanning the file on every query.
type Buffer struct {
	filename   string
	content    string
	lineStarts []int
}

// New builds a Buffer over content, scanning once for newlines to build the
// line-start index used by LocationAt.
func New(filename string, content []byte) *Buffer {
	b := &Buffer{
		filename: filename,
		content:  string(content),
	}
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(b.content); i++ {
		if b.content[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
	return b
}

// Filename returns the name the buffer was constructed with.
func (b *Buffer) Filename() string { return b.filename }

// Content returns the full underlying text.
func (b *Buffer) Content() string { return b.content }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.content) }

// Slice returns content[start:end], clamped to the buffer's bounds.
func (b *Buffer) Slice(start, end int) string {
	start = clamp(start, 0, len(b.content))
	end = clamp(end, start, len(b.content))
	return b.content[start:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LocationAt maps a byte offset to a (line, column) pair via binary search
// over the line-start index. Offsets outside the buffer are clamped to the
// nearest valid position.
func (b *Buffer) LocationAt(offset int) Location {
	offset = clamp(offset, 0, len(b.content))

	// sort.Search finds the first line-start strictly greater than offset;
	// the line containing offset is the one before it.
	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	line-- // 0-based line index into lineStarts

	col := offset - b.lineStarts[line] + 1
	return Location{
		File:   b.filename,
		Line:   line + 1,
		Column: col,
		Offset: offset,
	}
}

// LineContent returns the text of 1-based line n, with a trailing \r
// trimmed. Out-of-range n returns the empty string.
func (b *Buffer) LineContent(n int) string {
	if n < 1 || n > len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[n-1]
	var end int
	if n == len(b.lineStarts) {
		end = len(b.content)
	} else {
		end = b.lineStarts[n] - 1 // exclude the newline itself
	}
	if end < start {
		end = start
	}
	line := b.content[start:end]
	return trimSuffixCR(line)
}

func trimSuffixCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}

// LineCount returns the number of lines the index was built with.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }
