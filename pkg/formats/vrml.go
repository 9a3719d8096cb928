package formats

import (
	"io"
	"strings"

	"github.com/nbhr/glv/pkg/glstream"
)

// PrimitiveMode selects how coordIndex records are interpreted.
type PrimitiveMode int

// Primitive modes, set by the most recent IndexedLineSet / IndexedFaceSet.
const (
	ModeUnset PrimitiveMode = iota
	ModeLine
	ModeFace
)

func (m PrimitiveMode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeFace:
		return "face"
	default:
		return "unset"
	}
}

// VRMLReader reads the IndexedLineSet and IndexedFaceSet geometry of a VRML
// scene. Every other node is ignored.
//
// A point array replaces the current vertex pool (clear_vertex + raw_vertex).
// coordIndex records become line_v, triangle_v or quad_v commands depending
// on the last set keyword seen.
type VRMLReader struct{}

// vrmlState is the per-call parser state.
type vrmlState struct {
	c           *Cursor
	mode        PrimitiveMode
	vertices    int
	texCoord    bool // next point array holds texture coordinates
	awaitPoints bool // "point" ended the previous line, its bracket may follow
	seq         glstream.Sequence
}

// Parse implements Reader.
func (v *VRMLReader) Parse(in io.Reader) (glstream.Sequence, error) {
	st := &vrmlState{c: NewCursor(in, KindVRML)}

	for {
		line, ok := st.next()
		if !ok {
			break
		}
		// Several nodes may share a line: keep scanning past each array.
		for line != "" {
			rest, err := st.scan(line)
			if err != nil {
				return nil, err
			}
			line = rest
		}
	}
	if err := st.c.Err(); err != nil {
		return nil, err
	}
	return st.seq, nil
}

// scan handles a line segment up to the end of the first array it opens and
// returns the text that follows that array's closing bracket.
func (st *vrmlState) scan(line string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return "", nil
	}

	if st.awaitPoints {
		st.awaitPoints = false
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			return st.pointArray(afterBracket(line))
		}
	}

	pi := tokenIndex(line, "point")
	ci := tokenIndex(line, "coordIndex")

	switch {
	case pi >= 0 && (ci < 0 || pi < ci):
		st.keywords(line[:pi])
		after := line[pi+len("point"):]
		switch trimmed := strings.TrimSpace(after); {
		case strings.HasPrefix(trimmed, "["):
			return st.pointArray(afterBracket(after))
		case trimmed == "":
			st.awaitPoints = true
			return "", nil
		default:
			// A "point" field that is not an array.
			return after, nil
		}

	case ci >= 0:
		st.keywords(line[:ci])
		return st.readIndices(line[ci:])
	}

	st.keywords(line)
	return "", nil
}

// keywords updates the mode and the texture coordinate flag from text that
// holds no array.
func (st *vrmlState) keywords(text string) {
	li := tokenIndex(text, "IndexedLineSet")
	fi := tokenIndex(text, "IndexedFaceSet")
	switch {
	case li > fi:
		st.mode = ModeLine
	case fi > li:
		st.mode = ModeFace
	}

	// The next '}' closes a TextureCoordinate node.
	if ti := tokenIndex(text, "TextureCoordinate"); ti >= 0 {
		st.texCoord = !strings.Contains(text[ti:], "}")
	} else if tokenIndex(text, "Coordinate") >= 0 || strings.Contains(text, "}") {
		st.texCoord = false
	}
}

// pointArray consumes a point array whose opening bracket has been cut off.
func (st *vrmlState) pointArray(line string) (string, error) {
	if st.texCoord {
		st.texCoord = false
		return st.skipArray(line)
	}
	return st.readPoints(line)
}

// readPoints reads a point array whose opening bracket has been consumed.
func (st *vrmlState) readPoints(line string) (string, error) {
	start := st.c.Line()
	st.seq = append(st.seq, glstream.ClearVertex(), glstream.RawBegin(glstream.OpRawVertex))
	st.vertices = 0

	for {
		groups, closed := SplitGroups(line)
		for _, g := range groups {
			p, err := parseCoords(g)
			if err != nil {
				return "", st.c.Fail(ErrMalformedRecord, "%v", err)
			}
			st.seq = append(st.seq, glstream.Vertex(p[0], p[1], p[2]))
			st.vertices++
		}
		if closed {
			break
		}
		next, ok := st.next()
		if !ok {
			return "", st.c.EOF("point array opened at line %d is not closed", start)
		}
		line = next
	}

	st.seq = append(st.seq, glstream.RawEnd())
	return afterClose(line), nil
}

// skipArray consumes an array that carries no geometry for the stream.
func (st *vrmlState) skipArray(line string) (string, error) {
	start := st.c.Line()
	for !strings.Contains(line, "]") {
		next, ok := st.next()
		if !ok {
			return "", st.c.EOF("array opened at line %d is not closed", start)
		}
		line = next
	}
	return afterClose(line), nil
}

// readIndices reads a coordIndex array starting on line.
func (st *vrmlState) readIndices(line string) (string, error) {
	if st.mode == ModeUnset {
		return "", st.c.Fail(ErrMissingMode, "coordIndex before IndexedLineSet or IndexedFaceSet")
	}
	start := st.c.Line()

	// The opening bracket may sit on a following line.
	for !strings.Contains(line, "[") {
		next, ok := st.next()
		if !ok {
			return "", st.c.EOF("coordIndex at line %d has no array", start)
		}
		line = next
	}
	line = afterBracket(line)

	for {
		rec := SplitList(line)
		if len(rec.Fields) > 0 {
			cmd, err := st.primitive(rec.Fields)
			if err != nil {
				return "", err
			}
			st.seq = append(st.seq, cmd)
		}
		if rec.Closed {
			return afterClose(line), nil
		}
		next, ok := st.next()
		if !ok {
			return "", st.c.EOF("coordIndex array opened at line %d is not closed", start)
		}
		line = next
	}
}

// primitive turns one coordIndex record into a command for the current mode.
func (st *vrmlState) primitive(fields []string) (glstream.Command, error) {
	idx, err := parseIndices(fields)
	if err != nil {
		return glstream.Command{}, st.c.Fail(ErrMalformedRecord, "%v", err)
	}

	var cmd glstream.Command
	switch st.mode {
	case ModeLine:
		if len(idx) == 3 && idx[2] == -1 {
			idx = idx[:2]
		}
		if len(idx) != 2 {
			return glstream.Command{}, st.c.Fail(ErrMalformedRecord, "line record has %d indices, want 2", len(idx))
		}
		cmd = glstream.LineV(idx[0], idx[1])

	case ModeFace:
		switch {
		case len(idx) == 4 && idx[3] == -1:
			idx = idx[:3]
			cmd = glstream.TriangleV(idx[0], idx[1], idx[2])
		case len(idx) == 4, len(idx) == 5 && idx[4] == -1:
			idx = idx[:4]
			cmd = glstream.QuadV(idx[0], idx[1], idx[2], idx[3])
		default:
			return glstream.Command{}, st.c.Fail(ErrMalformedRecord, "face record has %d indices, want 4 (triangle ending in -1, or quad)", len(idx))
		}
	}

	if err := checkIndices(idx, st.vertices); err != nil {
		return glstream.Command{}, st.c.Fail(ErrMalformedRecord, "%v", err)
	}
	return cmd, nil
}

// next returns the next line with any '#' comment removed.
func (st *vrmlState) next() (string, bool) {
	line, ok := st.c.Next()
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return line, ok
}

func afterBracket(line string) string {
	if i := strings.IndexByte(line, '['); i >= 0 {
		return line[i+1:]
	}
	return ""
}

func afterClose(line string) string {
	if i := strings.IndexByte(line, ']'); i >= 0 {
		return line[i+1:]
	}
	return ""
}
