package asm

import (
	"bufio"
	"io"
)

// sourceReader yields the logical lines of a file, stripping the
// terminating newline (and a carriage return just before it) but
// nothing else, and assigning each line a distinct 1-based line number.
type sourceReader struct {
	scanner *bufio.Scanner
	line    int
}

func newSourceReader(r io.Reader) *sourceReader {
	return &sourceReader{scanner: bufio.NewScanner(r), line: 0}
}

// next returns the next logical line and its 1-based number, or
// ok == false at end of input.
func (s *sourceReader) next() (text string, lineNo int, ok bool) {
	if !s.scanner.Scan() {
		return "", 0, false
	}
	s.line++
	return s.scanner.Text(), s.line, true
}

// readAllLines drains r into a slice of lines, in order. The
// preprocessor reads a file this way so it can make two passes over
// the same content without reopening the underlying stream.
func readAllLines(r io.Reader) []string {
	var lines []string
	sr := newSourceReader(r)
	for {
		text, _, ok := sr.next()
		if !ok {
			break
		}
		lines = append(lines, text)
	}
	return lines
}
