package formats

import (
	"errors"
	"fmt"
)

// Parse failures shared by all readers.
var (
	ErrMalformedHeader = errors.New("malformed header")
	ErrTruncatedInput  = errors.New("truncated input")
	ErrMissingMode     = errors.New("missing primitive mode")
	ErrMalformedRecord = errors.New("malformed record")
	ErrBinaryInput     = errors.New("binary input not supported")
	ErrUnknownFormat   = errors.New("unknown format")
)

// ParseError reports where a reader gave up.
type ParseError struct {
	Format Kind
	Line   int // 1-based; 0 when the failure is not tied to a line
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", e.Format, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
