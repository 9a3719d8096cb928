package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const maxLineLength = 1024 * 1024

// Cursor reads an input stream line by line for a single reader call and
// keeps track of the current line number for error reporting.
type Cursor struct {
	sc     *bufio.Scanner
	format Kind
	line   int
	err    error
}

// NewCursor returns a cursor positioned before the first line of r.
func NewCursor(r io.Reader, format Kind) *Cursor {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineLength)
	return &Cursor{sc: sc, format: format}
}

// Next advances to the next line and returns it without the line terminator.
// It returns false at end of input or on a read error; check Err afterwards.
func (c *Cursor) Next() (string, bool) {
	if c.err != nil {
		return "", false
	}
	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				c.err = c.Fail(ErrMalformedRecord, "line longer than %d bytes", maxLineLength)
			} else {
				c.err = fmt.Errorf("reading %s input: %w", c.format, err)
			}
		}
		return "", false
	}
	c.line++
	text := c.sc.Text()
	if c.line == 1 {
		text = strings.TrimPrefix(text, "\ufeff")
	}
	if strings.IndexByte(text, 0) >= 0 {
		c.err = c.Fail(ErrBinaryInput, "NUL byte in text")
		return "", false
	}
	return text, true
}

// Line returns the 1-based number of the last line returned by Next.
func (c *Cursor) Line() int {
	return c.line
}

// Err returns the error that stopped the cursor, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Fail builds a ParseError for the current line.
func (c *Cursor) Fail(err error, format string, args ...any) error {
	return &ParseError{
		Format: c.format,
		Line:   c.line,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	}
}

// EOF returns the read error if one stopped the cursor, or a truncated-input
// failure describing what was still expected.
func (c *Cursor) EOF(format string, args ...any) error {
	if c.err != nil {
		return c.err
	}
	return &ParseError{
		Format: c.format,
		Line:   c.line,
		Err:    ErrTruncatedInput,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Skip discards one line. It reports false at end of input.
func (c *Cursor) Skip() bool {
	_, ok := c.Next()
	return ok
}

// Fields splits a line on whitespace.
func Fields(line string) []string {
	return strings.Fields(line)
}

// Record is one comma-delimited record of an array block.
type Record struct {
	Fields []string
	// Closed is set when the line carried the closing bracket of the block.
	Closed bool
}

// Sentinel reports whether the record is a bare closing bracket.
func (r Record) Sentinel() bool {
	return r.Closed && len(r.Fields) == 0
}

// SplitList splits a line on commas, trimming whitespace and dropping empty
// fields. Anything from a closing bracket on is cut and marks the record closed.
func SplitList(line string) Record {
	var rec Record
	line, rec.Closed = cutBracket(line)
	for _, f := range strings.Split(line, ",") {
		if f = strings.TrimSpace(f); f != "" {
			rec.Fields = append(rec.Fields, f)
		}
	}
	return rec
}

// SplitGroups splits a point-array line into comma separated groups of
// whitespace separated fields. Trailing delimiter characters are stripped
// from each field. closed is set when the line carried the closing bracket.
func SplitGroups(line string) (groups [][]string, closed bool) {
	line, closed = cutBracket(line)
	for _, part := range strings.Split(line, ",") {
		var group []string
		for _, f := range strings.Fields(part) {
			if f = trimDelimiter(f); f != "" {
				group = append(group, f)
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups, closed
}

func cutBracket(line string) (string, bool) {
	if i := strings.IndexByte(line, ']'); i >= 0 {
		return line[:i], true
	}
	return line, false
}

func trimDelimiter(tok string) string {
	return strings.TrimRightFunc(tok, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
}

// tokenIndex returns the byte offset of word in line where it stands as a
// whole token, or -1. Whitespace, braces, brackets and commas delimit tokens.
func tokenIndex(line, word string) int {
	for i := 0; i < len(line); {
		j := strings.Index(line[i:], word)
		if j < 0 {
			return -1
		}
		j += i
		end := j + len(word)
		if (j == 0 || isDelimiter(line[j-1])) && (end == len(line) || isDelimiter(line[end])) {
			return j
		}
		i = j + 1
	}
	return -1
}

func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '{', '}', '[', ']', ',':
		return true
	}
	return false
}

func parseCoords(fields []string) ([3]float64, error) {
	var v [3]float64
	if len(fields) != 3 {
		return v, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		// Out of range values keep their ±Inf result; only syntax is checked.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return v, fmt.Errorf("bad coordinate %q", f)
		}
		v[i] = x
	}
	return v, nil
}

func parseIndices(fields []string) ([]int, error) {
	idx := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad index %q", f)
		}
		idx[i] = n
	}
	return idx, nil
}

// checkIndices verifies that every index addresses one of n vertices.
func checkIndices(idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("index %d out of range for %d vertices", i, n)
		}
	}
	return nil
}
