package glstream

import (
	"github.com/nbhr/glv/pkg/math"
)

// Stats summarises a command sequence.
type Stats struct {
	Objects      int
	VertexBlocks int
	Vertices     int
	Lines        int
	Triangles    int
	Quads        int
	Bounds       math.Bounds
}

// Primitives returns the total number of lines, triangles and quads.
func (s Stats) Primitives() int {
	return s.Lines + s.Triangles + s.Quads
}

// Summarize computes statistics for s. Bounds covers vertex items and the
// corners of self-contained triangles.
func Summarize(s Sequence) Stats {
	var st Stats
	for _, c := range s {
		switch c.Op {
		case OpObjectBegin:
			st.Objects++
		case OpRawVertex:
			st.VertexBlocks++
		case OpVertex:
			st.Vertices++
			st.Bounds.Extend(math.Vec3{X: c.Coords[0], Y: c.Coords[1], Z: c.Coords[2]})
		case OpLineV:
			st.Lines++
		case OpTriangleV:
			st.Triangles++
		case OpQuadV:
			st.Quads++
		case OpTriangle:
			st.Triangles++
			for i := 0; i+2 < len(c.Coords); i += 3 {
				st.Bounds.Extend(math.Vec3{X: c.Coords[i], Y: c.Coords[i+1], Z: c.Coords[i+2]})
			}
		}
	}
	return st
}
