package formats

import (
	"io"

	"github.com/nbhr/glv/pkg/glstream"
)

// STLOptions tune the STL reader.
type STLOptions struct {
	// RawBlocks groups the triangles of each solid into a raw_triangle block
	// instead of writing one triangle command per facet.
	RawBlocks bool
}

// STLReader reads ASCII STL solids.
//
// Each facet is expected as exactly seven lines:
//
//	facet normal nx ny nz
//	  outer loop
//	    vertex x y z
//	    vertex x y z
//	    vertex x y z
//	  endloop
//	endfacet
//
// Normals are never emitted.
type STLReader struct {
	Options STLOptions
}

// Parse implements Reader.
func (s *STLReader) Parse(in io.Reader) (glstream.Sequence, error) {
	c := NewCursor(in, KindSTL)

	var seq glstream.Sequence
	started := false
	open := false

	closeSolid := func() {
		if !open {
			return
		}
		if s.Options.RawBlocks {
			seq = append(seq, glstream.RawEnd())
		}
		seq = append(seq, glstream.ObjectEnd())
		open = false
	}
	openSolid := func() {
		seq = append(seq, glstream.ObjectBegin())
		if s.Options.RawBlocks {
			seq = append(seq, glstream.RawBegin(glstream.OpRawTriangle))
		}
		open = true
	}

	for {
		line, ok := c.Next()
		if !ok {
			break
		}
		f := Fields(line)
		if len(f) == 0 {
			continue
		}
		if !started {
			if f[0] != "solid" {
				return nil, c.Fail(ErrBinaryInput, "ASCII STL must start with \"solid\"")
			}
			started = true
		}

		switch f[0] {
		case "solid":
			closeSolid()
			openSolid()

		case "endsolid":
			closeSolid()

		case "facet":
			tri, err := readFacet(c)
			if err != nil {
				return nil, err
			}
			// A facet after endsolid starts an unnamed solid.
			if !open {
				openSolid()
			}
			seq = append(seq, tri)
		}
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	closeSolid()
	return seq, nil
}

// readFacet reads the body of a facet whose "facet" line was just consumed.
func readFacet(c *Cursor) (glstream.Command, error) {
	facetLine := c.Line()
	if !c.Skip() {
		return glstream.Command{}, c.EOF("facet at line %d has no outer loop", facetLine)
	}

	var corners [3][3]float64
	for i := range corners {
		line, ok := c.Next()
		if !ok {
			return glstream.Command{}, c.EOF("facet at line %d has %d of 3 vertices", facetLine, i)
		}
		f := Fields(line)
		if len(f) == 0 || f[0] != "vertex" {
			return glstream.Command{}, c.Fail(ErrTruncatedInput, "facet at line %d has %d of 3 vertices", facetLine, i)
		}
		v, err := parseCoords(f[1:])
		if err != nil {
			return glstream.Command{}, c.Fail(ErrMalformedRecord, "%v", err)
		}
		corners[i] = v
	}

	// endloop; a missing one at end of input is tolerated.
	c.Skip()

	return glstream.Triangle(corners[0], corners[1], corners[2]), nil
}
