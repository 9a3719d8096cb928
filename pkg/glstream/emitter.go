package glstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Emitter errors.
var (
	ErrUnbalanced     = errors.New("unbalanced block")
	ErrUnexpectedItem = errors.New("unexpected item")
	ErrFieldCount     = errors.New("wrong field count")
)

// Emitter writes commands in the canonical text form, one per line.
// It checks that object and raw blocks nest properly.
type Emitter struct {
	w       *bufio.Writer
	depth   int
	raw     Op
	written int
	line    []byte
}

// NewEmitter returns an emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// Written returns the number of commands emitted so far.
func (e *Emitter) Written() int {
	return e.written
}

// Emit writes a single command.
func (e *Emitter) Emit(c Command) error {
	if err := e.check(c); err != nil {
		return err
	}

	e.line = e.line[:0]
	bare := c.Op.IsItem() && e.raw != OpInvalid
	if !bare {
		e.line = append(e.line, c.Op.String()...)
	}
	if c.Op.IsItem() {
		e.line = appendFields(e.line, c, !bare)
	}
	e.line = append(e.line, '\n')

	if _, err := e.w.Write(e.line); err != nil {
		return err
	}

	switch {
	case c.Op == OpObjectBegin:
		e.depth++
	case c.Op == OpObjectEnd:
		e.depth--
	case c.Op.IsRawBegin():
		e.raw = c.Op
	case c.Op == OpRawEnd:
		e.raw = OpInvalid
	}
	e.written++
	return nil
}

// EmitAll writes every command of s.
func (e *Emitter) EmitAll(s Sequence) error {
	for i, c := range s {
		if err := e.Emit(c); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, c.Op, err)
		}
	}
	return nil
}

// Close verifies that all blocks are closed and flushes buffered output.
func (e *Emitter) Close() error {
	if e.raw != OpInvalid {
		return fmt.Errorf("%w: %s not closed", ErrUnbalanced, e.raw)
	}
	if e.depth != 0 {
		return fmt.Errorf("%w: %d object(s) not closed", ErrUnbalanced, e.depth)
	}
	return e.w.Flush()
}

func (e *Emitter) check(c Command) error {
	switch {
	case c.Op == OpInvalid || c.Op > OpTriangle:
		return fmt.Errorf("invalid op %d", c.Op)

	case c.Op.IsItem():
		if e.raw != OpInvalid && e.raw.ItemOp() != c.Op {
			return fmt.Errorf("%w: %s inside %s", ErrUnexpectedItem, c.Op, e.raw)
		}
		if e.raw == OpInvalid && c.Op == OpVertex {
			return fmt.Errorf("%w: vertex outside raw_vertex", ErrUnexpectedItem)
		}
		n := len(c.Coords)
		if c.Op.indexed() {
			n = len(c.Indices)
		}
		if n != c.Op.Arity() {
			return fmt.Errorf("%w: %s takes %d fields, got %d", ErrFieldCount, c.Op, c.Op.Arity(), n)
		}

	case e.raw != OpInvalid && c.Op != OpRawEnd:
		return fmt.Errorf("%w: %s inside %s", ErrUnbalanced, c.Op, e.raw)

	case c.Op == OpRawEnd && e.raw == OpInvalid:
		return fmt.Errorf("%w: raw_end without raw block", ErrUnbalanced)

	case c.Op == OpObjectEnd && e.depth == 0:
		return fmt.Errorf("%w: object_end without object_begin", ErrUnbalanced)
	}
	return nil
}

func appendFields(b []byte, c Command, leadingSpace bool) []byte {
	sep := leadingSpace
	if c.Op.indexed() {
		for _, i := range c.Indices {
			if sep {
				b = append(b, ' ')
			}
			b = strconv.AppendInt(b, int64(i), 10)
			sep = true
		}
		return b
	}
	for _, v := range c.Coords {
		if sep {
			b = append(b, ' ')
		}
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
		sep = true
	}
	return b
}

// Write emits s to w as a complete stream.
func Write(w io.Writer, s Sequence) error {
	e := NewEmitter(w)
	if err := e.EmitAll(s); err != nil {
		return err
	}
	return e.Close()
}
