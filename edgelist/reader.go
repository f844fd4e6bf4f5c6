package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// commentPrefix starts a comment line.
const commentPrefix = "#"

// ParseLine splits line on whitespace and parses every token as a base-10
// uint64. An empty line yields an empty, non-nil slice.
func ParseLine(line string) ([]uint64, error) {
	fields := strings.Fields(line)
	out := make([]uint64, 0, len(fields))
	for pos, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edgelist: token %d %q: %w", pos, tok, ErrBadToken)
		}
		out = append(out, v)
	}

	return out, nil
}

// Reader yields one parsed row per non-blank, non-comment line.
type Reader struct {
	sc   *bufio.Scanner
	line int // 1-based number of the last line read
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Line returns the 1-based number of the line behind the last row returned.
func (r *Reader) Line() int { return r.line }

// Next returns the next row, or io.EOF when the input is exhausted.
// Parse failures carry the line number and wrap ErrBadToken.
func (r *Reader) Next() ([]uint64, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		row, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}

		return row, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: line %d: %w", r.line+1, err)
	}

	return nil, io.EOF
}
