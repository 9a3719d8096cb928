// Package glstream models the canonical GL command stream consumed by the viewer.
package glstream

import "fmt"

// Op identifies a command of the stream.
type Op uint8

// Stream commands. Item ops (OpVertex, OpLineV, OpTriangleV, OpQuadV,
// OpTriangle) are written bare inside the raw block of the same kind and with
// their keyword outside of it.
const (
	OpInvalid Op = iota
	OpObjectBegin
	OpObjectEnd
	OpClearVertex
	OpRawVertex
	OpRawLineV
	OpRawTriangleV
	OpRawQuadV
	OpRawTriangle
	OpRawEnd
	OpVertex
	OpLineV
	OpTriangleV
	OpQuadV
	OpTriangle
)

var opKeywords = map[Op]string{
	OpObjectBegin:  "object_begin",
	OpObjectEnd:    "object_end",
	OpClearVertex:  "clear_vertex",
	OpRawVertex:    "raw_vertex",
	OpRawLineV:     "raw_line_v",
	OpRawTriangleV: "raw_triangle_v",
	OpRawQuadV:     "raw_quad_v",
	OpRawTriangle:  "raw_triangle",
	OpRawEnd:       "raw_end",
	OpVertex:       "vertex",
	OpLineV:        "line_v",
	OpTriangleV:    "triangle_v",
	OpQuadV:        "quad_v",
	OpTriangle:     "triangle",
}

var keywordOps = func() map[string]Op {
	m := make(map[string]Op, len(opKeywords))
	for op, kw := range opKeywords {
		m[kw] = op
	}
	return m
}()

// String returns the stream keyword for the op.
func (o Op) String() string {
	if kw, ok := opKeywords[o]; ok {
		return kw
	}
	return fmt.Sprintf("Op(%d)", o)
}

// LookupOp returns the op for a stream keyword.
func LookupOp(keyword string) (Op, bool) {
	op, ok := keywordOps[keyword]
	return op, ok
}

// IsRawBegin reports whether the op opens a raw block.
func (o Op) IsRawBegin() bool {
	_, ok := rawItems[o]
	return ok
}

// IsItem reports whether the op carries geometry fields.
func (o Op) IsItem() bool {
	return o.Arity() > 0
}

// ItemOp returns the item op accepted inside a raw block opened by o.
func (o Op) ItemOp() Op {
	return rawItems[o]
}

// Arity returns the number of fields an item op carries.
func (o Op) Arity() int {
	switch o {
	case OpVertex, OpTriangleV:
		return 3
	case OpLineV:
		return 2
	case OpQuadV:
		return 4
	case OpTriangle:
		return 9
	default:
		return 0
	}
}

// indexed reports whether the item fields are vertex indices.
func (o Op) indexed() bool {
	return o == OpLineV || o == OpTriangleV || o == OpQuadV
}

var rawItems = map[Op]Op{
	OpRawVertex:    OpVertex,
	OpRawLineV:     OpLineV,
	OpRawTriangleV: OpTriangleV,
	OpRawQuadV:     OpQuadV,
	OpRawTriangle:  OpTriangle,
}

// Command is a single entry of the stream.
// Coords is set for OpVertex and OpTriangle, Indices for the *_v primitives.
type Command struct {
	Op      Op
	Coords  []float64
	Indices []int
}

// Sequence is an ordered list of commands.
type Sequence []Command

// ObjectBegin returns an object_begin command.
func ObjectBegin() Command { return Command{Op: OpObjectBegin} }

// ObjectEnd returns an object_end command.
func ObjectEnd() Command { return Command{Op: OpObjectEnd} }

// ClearVertex returns a clear_vertex command.
func ClearVertex() Command { return Command{Op: OpClearVertex} }

// RawBegin returns the raw block header for op.
func RawBegin(op Op) Command { return Command{Op: op} }

// RawEnd returns a raw_end command.
func RawEnd() Command { return Command{Op: OpRawEnd} }

// Vertex returns a vertex item.
func Vertex(x, y, z float64) Command {
	return Command{Op: OpVertex, Coords: []float64{x, y, z}}
}

// LineV returns an indexed line.
func LineV(i, j int) Command {
	return Command{Op: OpLineV, Indices: []int{i, j}}
}

// TriangleV returns an indexed triangle.
func TriangleV(i, j, k int) Command {
	return Command{Op: OpTriangleV, Indices: []int{i, j, k}}
}

// QuadV returns an indexed quad.
func QuadV(i, j, k, l int) Command {
	return Command{Op: OpQuadV, Indices: []int{i, j, k, l}}
}

// Triangle returns a self-contained triangle from three corners.
func Triangle(a, b, c [3]float64) Command {
	return Command{Op: OpTriangle, Coords: []float64{
		a[0], a[1], a[2],
		b[0], b[1], b[2],
		c[0], c[1], c[2],
	}}
}

// Count returns how many commands in s have the given op.
func (s Sequence) Count(op Op) int {
	n := 0
	for _, c := range s {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Equal reports whether two sequences hold the same commands.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two commands are identical.
func (c Command) Equal(other Command) bool {
	if c.Op != other.Op || len(c.Coords) != len(other.Coords) || len(c.Indices) != len(other.Indices) {
		return false
	}
	for i := range c.Coords {
		if c.Coords[i] != other.Coords[i] {
			return false
		}
	}
	for i := range c.Indices {
		if c.Indices[i] != other.Indices[i] {
			return false
		}
	}
	return true
}
