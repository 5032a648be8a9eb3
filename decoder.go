package nset

import (
	"bufio"
	"errors"
	"io"
)

const maxLineLength = 1 << 24

// Decoder reads sets from an input stream, one set per line. Blank lines are
// skipped.
type Decoder struct {
	scanner *bufio.Scanner
	opts    []Option
	line    int
}

// NewDecoder creates a decoder reading from r. Options are applied to every line.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Decoder{scanner: scanner, opts: opts}
}

// Decode parses the next non-blank line. It returns io.EOF if the input is
// exhausted. Parse errors are of type *ParseError, with the line number set;
// offsets are relative to the start of the line.
func (d *Decoder) Decode() (*Set, error) {
	for d.scanner.Scan() {
		d.line++
		text := d.scanner.Text()
		if start, end := trimSpace(text); start == end {
			continue
		}
		s, err := Parse(text, d.opts...)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = d.line
			}
			return nil, err
		}
		return s, nil
	}
	if err := d.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Line returns the number of the line read last.
func (d *Decoder) Line() int {
	return d.line
}
