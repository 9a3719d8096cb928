package glstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is returned by Decode for lines that cannot be parsed.
var ErrSyntax = errors.New("stream syntax error")

// Decoded is the result of reading a canonical stream.
type Decoded struct {
	Commands Sequence
	// Skipped counts lines holding commands this package does not model
	// (colors, transforms, titles), including the bodies of their raw blocks.
	Skipped int
}

// Decode reads a canonical stream. Empty lines and '#' comments are ignored.
func Decode(r io.Reader) (*Decoded, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	out := &Decoded{}
	raw := OpInvalid
	skipping := false
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if skipping {
			out.Skipped++
			if fields[0] == "raw_end" {
				skipping = false
			}
			continue
		}

		if raw != OpInvalid && fields[0] != "raw_end" {
			c, err := decodeItem(raw.ItemOp(), fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			out.Commands = append(out.Commands, c)
			continue
		}

		op, ok := LookupOp(fields[0])
		if !ok {
			out.Skipped++
			if strings.HasPrefix(fields[0], "raw_") {
				skipping = true
			}
			continue
		}

		switch {
		case op.IsItem():
			c, err := decodeItem(op, fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			out.Commands = append(out.Commands, c)
		case op.IsRawBegin():
			raw = op
			out.Commands = append(out.Commands, RawBegin(op))
		case op == OpRawEnd:
			raw = OpInvalid
			out.Commands = append(out.Commands, RawEnd())
		default:
			out.Commands = append(out.Commands, Command{Op: op})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}
	if raw != OpInvalid {
		return nil, fmt.Errorf("%w: %s not closed", ErrUnbalanced, raw)
	}
	return out, nil
}

func decodeItem(op Op, fields []string) (Command, error) {
	if len(fields) != op.Arity() {
		return Command{}, fmt.Errorf("%w: %s takes %d fields, got %d", ErrSyntax, op, op.Arity(), len(fields))
	}
	c := Command{Op: op}
	if op.indexed() {
		c.Indices = make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Command{}, fmt.Errorf("%w: bad index %q", ErrSyntax, f)
			}
			c.Indices[i] = v
		}
		return c, nil
	}
	c.Coords = make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Command{}, fmt.Errorf("%w: bad coordinate %q", ErrSyntax, f)
		}
		c.Coords[i] = v
	}
	return c, nil
}
