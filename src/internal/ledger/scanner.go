// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// maxLineSize bounds a single ledger line. Subject names are short, so this
// only guards against feeding the scanner a binary file.
const maxLineSize = 1 << 20

// OpenError reports a ledger file that could not be opened.
// Its message is "<path>: <cause>".
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *OpenError) Unwrap() error { return e.Err }

// ParseError reports a malformed ledger line.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Open opens a ledger file for reading. Failures are returned as *[OpenError]
// carrying the underlying cause without the duplicated "open <path>" prefix.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, &OpenError{Path: path, Err: err}
	}
	return f, nil
}

// Scanner reads ledger records line by line, in the manner of [bufio.Scanner].
// Scanning stops at the first malformed line.
type Scanner struct {
	path   string
	sc     *bufio.Scanner
	line   int
	record Record
	err    error
}

// NewScanner returns a Scanner reading from r. The path is only used to
// annotate parse errors and may be empty.
func NewScanner(r io.Reader, path string) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Scanner{path: path, sc: sc}
}

// Scan advances to the next record. It returns false at end of input or on
// the first error, which is then available from [Scanner.Err].
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			s.err = &ParseError{Path: s.path, Line: s.line + 1, Err: err}
		}
		return false
	}

	s.line++
	rec, err := ParseLine(s.sc.Text())
	if err != nil {
		s.err = &ParseError{Path: s.path, Line: s.line, Err: err}
		return false
	}
	s.record = rec
	return true
}

// Record returns the record read by the last successful call to Scan.
func (s *Scanner) Record() Record { return s.record }

// Line returns the 1-based number of the last line read.
func (s *Scanner) Line() int { return s.line }

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner) Err() error { return s.err }

// Fail stops the scanner with err attributed to the current line. Callers use
// it for problems found while interpreting a record, such as a bad timestamp.
func (s *Scanner) Fail(err error) {
	if s.err == nil {
		s.err = &ParseError{Path: s.path, Line: s.line, Err: err}
	}
}
