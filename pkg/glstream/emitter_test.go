package glstream

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEmitter_PLYShape(t *testing.T) {
	seq := Sequence{
		ObjectBegin(),
		RawBegin(OpRawVertex),
		Vertex(0, 0, 0),
		Vertex(1, 0, 0),
		Vertex(0, 1, 0),
		RawEnd(),
		RawBegin(OpRawTriangleV),
		TriangleV(0, 1, 2),
		RawEnd(),
		ObjectEnd(),
	}

	var buf bytes.Buffer
	if err := Write(&buf, seq); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := strings.Join([]string{
		"object_begin",
		"raw_vertex",
		"0 0 0",
		"1 0 0",
		"0 1 0",
		"raw_end",
		"raw_triangle_v",
		"0 1 2",
		"raw_end",
		"object_end",
	}, "\n") + "\n"

	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEmitter_KeywordCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"line_v", LineV(3, 4), "line_v 3 4\n"},
		{"triangle_v", TriangleV(0, 1, 2), "triangle_v 0 1 2\n"},
		{"quad_v", QuadV(0, 1, 2, 3), "quad_v 0 1 2 3\n"},
		{"triangle", Triangle([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}), "triangle 0 0 0 1 0 0 0 1 0\n"},
		{"fractional", Triangle([3]float64{0.5, -1.25, 2}, [3]float64{1e-7, 0, 0}, [3]float64{0, 1, 0}), "triangle 0.5 -1.25 2 1e-07 0 0 0 1 0\n"},
		{"clear_vertex", ClearVertex(), "clear_vertex\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := NewEmitter(&buf)
			if err := e.Emit(tt.cmd); err != nil {
				t.Fatalf("Emit failed: %v", err)
			}
			if err := e.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestEmitter_RawTriangleBlock(t *testing.T) {
	seq := Sequence{
		RawBegin(OpRawTriangle),
		Triangle([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}),
		RawEnd(),
	}
	var buf bytes.Buffer
	if err := Write(&buf, seq); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "raw_triangle\n0 0 0 1 0 0 0 1 0\nraw_end\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEmitter_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		seq     Sequence
		wantErr error
	}{
		{"vertex outside raw", Sequence{Vertex(0, 0, 0)}, ErrUnexpectedItem},
		{"wrong item kind", Sequence{RawBegin(OpRawVertex), TriangleV(0, 1, 2)}, ErrUnexpectedItem},
		{"nested raw", Sequence{RawBegin(OpRawVertex), RawBegin(OpRawTriangleV)}, ErrUnbalanced},
		{"raw_end alone", Sequence{RawEnd()}, ErrUnbalanced},
		{"object_end alone", Sequence{ObjectEnd()}, ErrUnbalanced},
		{"unclosed object", Sequence{ObjectBegin()}, ErrUnbalanced},
		{"unclosed raw", Sequence{RawBegin(OpRawVertex), Vertex(1, 2, 3)}, ErrUnbalanced},
		{"short triangle", Sequence{{Op: OpTriangleV, Indices: []int{0, 1}}}, ErrFieldCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Write(&bytes.Buffer{}, tt.seq)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEmitter_Written(t *testing.T) {
	e := NewEmitter(&bytes.Buffer{})
	_ = e.Emit(ObjectBegin())
	_ = e.Emit(ObjectEnd())
	if e.Written() != 2 {
		t.Errorf("expected 2 written, got %d", e.Written())
	}
}

func TestOpKeywords(t *testing.T) {
	for op := OpObjectBegin; op <= OpTriangle; op++ {
		got, ok := LookupOp(op.String())
		if !ok || got != op {
			t.Errorf("LookupOp(%q) = %v, %v", op.String(), got, ok)
		}
	}
	if _, ok := LookupOp("gltranslate"); ok {
		t.Error("gltranslate should not be a known op")
	}
}
