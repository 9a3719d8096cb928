package formats

import (
	"io"
	"strconv"

	"github.com/nbhr/glv/pkg/glstream"
)

// PLYReader reads ASCII PLY meshes with triangular faces.
//
// Output is one object holding a raw_vertex block followed by a
// raw_triangle_v block.
type PLYReader struct{}

// plyElement is one "element" declaration of the header.
type plyElement struct {
	Name    string
	Count   int
	Scalars int // scalar properties
	Lists   int // list properties
	ListAt  int // position of the first list property, -1 if none
	line    int // header line of the declaration
}

// fields returns how many tokens one record of the element carries,
// counting a list as its length field plus three entries.
func (e *plyElement) fields() int {
	return e.Scalars + e.Lists*4
}

// plyHeader holds the parts of a PLY header the reader needs.
type plyHeader struct {
	Format   string
	Elements []*plyElement
}

func (h *plyHeader) element(name string) *plyElement {
	for _, e := range h.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Parse implements Reader.
func (p *PLYReader) Parse(in io.Reader) (glstream.Sequence, error) {
	c := NewCursor(in, KindPLY)

	h, err := readPLYHeader(c)
	if err != nil {
		return nil, err
	}

	vertex := h.element("vertex")
	face := h.element("face")
	nv, nf := 0, 0
	if vertex != nil {
		nv = vertex.Count
	}
	if face != nil {
		nf = face.Count
	}

	seq := make(glstream.Sequence, 0, nv+nf+6)
	seq = append(seq, glstream.ObjectBegin(), glstream.RawBegin(glstream.OpRawVertex))

	last := face
	if last == nil {
		last = vertex
	}
	for _, e := range h.Elements {
		if last == nil {
			break
		}
		switch e {
		case vertex:
			if seq, err = readPLYVertices(c, e, seq); err != nil {
				return nil, err
			}
		case face:
			if seq, err = readPLYFaces(c, e, nv, seq); err != nil {
				return nil, err
			}
		default:
			for i := 0; i < e.Count; i++ {
				if !c.Skip() {
					return nil, c.EOF("%s record %d of %d", e.Name, i+1, e.Count)
				}
			}
		}
		if e == vertex {
			seq = append(seq, glstream.RawEnd(), glstream.RawBegin(glstream.OpRawTriangleV))
		}
		if e == last {
			break
		}
	}

	if vertex == nil {
		seq = append(seq, glstream.RawEnd(), glstream.RawBegin(glstream.OpRawTriangleV))
	}
	seq = append(seq, glstream.RawEnd(), glstream.ObjectEnd())
	return seq, nil
}

// readPLYHeader consumes the header up to and including end_header.
func readPLYHeader(c *Cursor) (*plyHeader, error) {
	h := &plyHeader{}
	var current *plyElement

	for {
		line, ok := c.Next()
		if !ok {
			if c.Err() != nil {
				return nil, c.Err()
			}
			return nil, c.Fail(ErrMalformedHeader, "end_header not found")
		}
		f := Fields(line)
		if len(f) == 0 {
			continue
		}

		switch f[0] {
		case "end_header":
			return h, validatePLYHeader(c, h)

		case "format":
			if len(f) < 2 {
				return nil, c.Fail(ErrMalformedHeader, "format without encoding")
			}
			if f[1] != "ascii" {
				return nil, c.Fail(ErrBinaryInput, "PLY encoding %q", f[1])
			}
			h.Format = f[1]

		case "element":
			if len(f) < 3 {
				return nil, c.Fail(ErrMalformedHeader, "element needs a name and a count")
			}
			n, err := strconv.Atoi(f[2])
			if err != nil || n < 0 {
				return nil, c.Fail(ErrMalformedHeader, "bad %s count %q", f[1], f[2])
			}
			if h.element(f[1]) != nil {
				return nil, c.Fail(ErrMalformedHeader, "element %s declared twice", f[1])
			}
			current = &plyElement{Name: f[1], Count: n, ListAt: -1, line: c.Line()}
			h.Elements = append(h.Elements, current)

		case "property":
			if current == nil {
				return nil, c.Fail(ErrMalformedHeader, "property before any element")
			}
			if len(f) >= 2 && f[1] == "list" {
				if current.ListAt < 0 {
					current.ListAt = current.Scalars + current.Lists
				}
				current.Lists++
			} else {
				current.Scalars++
			}
		}
		// "ply", "comment", "obj_info" and unknown keywords carry nothing we need.
	}
}

func validatePLYHeader(c *Cursor, h *plyHeader) error {
	vertex := h.element("vertex")
	face := h.element("face")

	if vertex != nil {
		if vertex.Lists > 0 {
			return c.Fail(ErrMalformedHeader, "list properties on vertex are not supported")
		}
		if vertex.Scalars == 0 {
			// Bare "element vertex N" headers describe x y z records.
			vertex.Scalars = 3
		}
		if vertex.Scalars < 3 {
			return c.Fail(ErrMalformedHeader, "vertex declares %d properties, need x y z", vertex.Scalars)
		}
	}
	if face != nil {
		if face.Lists == 0 && face.Scalars == 0 {
			face.Lists, face.ListAt = 1, 0
		}
		if face.Lists != 1 || face.ListAt != 0 {
			return c.Fail(ErrMalformedHeader, "face must start with a single vertex index list")
		}
		if vertex != nil && face.line < vertex.line {
			return c.Fail(ErrMalformedHeader, "face element declared before vertex")
		}
	}
	return nil
}

func readPLYVertices(c *Cursor, e *plyElement, seq glstream.Sequence) (glstream.Sequence, error) {
	want := e.fields()
	for i := 0; i < e.Count; i++ {
		line, ok := c.Next()
		if !ok {
			return nil, c.EOF("vertex %d of %d", i+1, e.Count)
		}
		f := Fields(line)
		if len(f) != want {
			return nil, c.Fail(ErrMalformedRecord, "vertex record has %d fields, want %d", len(f), want)
		}
		v, err := parseCoords(f[:3])
		if err != nil {
			return nil, c.Fail(ErrMalformedRecord, "%v", err)
		}
		seq = append(seq, glstream.Vertex(v[0], v[1], v[2]))
	}
	return seq, nil
}

func readPLYFaces(c *Cursor, e *plyElement, nv int, seq glstream.Sequence) (glstream.Sequence, error) {
	want := e.fields()
	for i := 0; i < e.Count; i++ {
		line, ok := c.Next()
		if !ok {
			return nil, c.EOF("face %d of %d", i+1, e.Count)
		}
		f := Fields(line)
		if len(f) > 0 && f[0] != "3" {
			return nil, c.Fail(ErrMalformedRecord, "face has %s vertices, only triangles are supported", f[0])
		}
		if len(f) != want {
			return nil, c.Fail(ErrMalformedRecord, "face record has %d fields, want %d", len(f), want)
		}
		idx, err := parseIndices(f[1:4])
		if err != nil {
			return nil, c.Fail(ErrMalformedRecord, "%v", err)
		}
		if err := checkIndices(idx, nv); err != nil {
			return nil, c.Fail(ErrMalformedRecord, "%v", err)
		}
		seq = append(seq, glstream.TriangleV(idx[0], idx[1], idx[2]))
	}
	return seq, nil
}
