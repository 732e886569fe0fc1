// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkedfile splits Starlark test scripts into independent
// chunks and checks that errors are reported on the expected lines.
//
// Chunks are separated by "---" lines. A line containing "###" expects
// a failure on that line: the rest of the line is a quoted regular
// expression that the error message must match.
//
//	timeofday.strict(24, 0, 0) ### "hours must be between 0 and 23"
//	---
//	t = timeofday.at(0)
//	t.nosuch ### "no .nosuch field"
//
// A client test executes each chunk, calls GotError for every error
// that occurred and Done when the chunk has finished.
package chunkedfile // import "github.com/timeofday/go-timeofday/internal/chunkedfile"

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

const (
	separator = "---"
	marker    = "###"
)

// A Chunk is a portion of a source file and the errors it expects.
type Chunk struct {
	Source   string
	filename string
	report   Reporter
	wantErrs map[int]*regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read reads the named file and returns its chunks.
// It reports failures using the reporter.
func Read(filename string, report Reporter) []Chunk {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return nil
	}
	return Parse(filename, data, report)
}

// Parse splits data, the contents of filename, into chunks.
// Each chunk's Source is padded with leading newlines so that
// line numbers match the whole file.
// Problems are reported as "file.star:line: ..." prefixed by a newline,
// keeping them apart from the Go position added by (*testing.T).Errorf.
func Parse(filename string, data []byte, report Reporter) []Chunk {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	var chunks []Chunk
	linenum := 1
	for _, body := range strings.Split(text, "\n"+separator+"\n") {
		chunk := Chunk{
			Source:   strings.Repeat("\n", linenum-1) + body,
			filename: filename,
			report:   report,
			wantErrs: make(map[int]*regexp.Regexp),
		}
		for _, line := range strings.Split(body, "\n") {
			if i := strings.Index(line, marker); i >= 0 {
				rest := strings.TrimSpace(line[i+len(marker):])
				if rx, err := compile(rest); err != nil {
					report.Errorf("\n%s:%d: %v", filename, linenum, err)
				} else {
					chunk.wantErrs[linenum] = rx
				}
			}
			linenum++
		}
		linenum++ // separator
		chunks = append(chunks, chunk)
	}
	return chunks
}

func compile(quoted string) (*regexp.Regexp, error) {
	pattern, err := strconv.Unquote(quoted)
	if err != nil {
		return nil, &notQuotedError{quoted}
	}
	return regexp.Compile(pattern)
}

type notQuotedError struct{ text string }

func (e *notQuotedError) Error() string { return "not a quoted regexp: " + e.text }

// GotError records an error at the given line.
// Errors that were not expected, or that do not match the expected
// pattern, are reported to the chunk's reporter.
func (chunk *Chunk) GotError(linenum int, msg string) {
	rx, ok := chunk.wantErrs[linenum]
	if !ok {
		chunk.report.Errorf("\n%s:%d: unexpected error: %v", chunk.filename, linenum, msg)
		return
	}
	delete(chunk.wantErrs, linenum)
	if !rx.MatchString(msg) {
		chunk.report.Errorf("\n%s:%d: error %q does not match pattern %q", chunk.filename, linenum, msg, rx)
	}
}

// Done reports expected errors that did not occur.
func (chunk *Chunk) Done() {
	for linenum, rx := range chunk.wantErrs {
		chunk.report.Errorf("\n%s:%d: expected error matching %q", chunk.filename, linenum, rx)
	}
}
