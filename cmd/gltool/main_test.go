package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const stream = `object_begin
raw_vertex
0 0 0
2 0 0
0 4 0
raw_end
triangle_v 0 1 2
color 1 0 0
object_end
`

func writeStream(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.gl")
	if err := os.WriteFile(path, []byte(stream), 0644); err != nil {
		t.Fatalf("failed to write stream: %v", err)
	}
	return path
}

func TestCmdInfo(t *testing.T) {
	var out strings.Builder
	if err := cmdInfo([]string{writeStream(t)}, &out); err != nil {
		t.Fatalf("info failed: %v", err)
	}
	for _, want := range []string{
		"Objects:    1",
		"Vertices:   3 (1 blocks)",
		"Triangles:  1",
		"Skipped:    1",
		"Size:       2 x 4 x 0",
		"Center:     1 2 0",
		"Diagonal:   4.47213595499958",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in:\n%s", want, out.String())
		}
	}
}

func TestCmdInfoMissingFile(t *testing.T) {
	var out strings.Builder
	if err := cmdInfo([]string{filepath.Join(t.TempDir(), "none.gl")}, &out); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCmdGrep(t *testing.T) {
	var out strings.Builder
	if err := cmdGrep([]string{"-v", "raw_", writeStream(t)}, &out); err != nil {
		t.Fatalf("grep failed: %v", err)
	}
	want := "object_begin\ntriangle_v 0 1 2\ncolor 1 0 0\nobject_end\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}

	if err := cmdGrep(nil, &out); err == nil {
		t.Error("expected usage error without a pattern")
	}
}

func TestCmdFormats(t *testing.T) {
	var out strings.Builder
	cmdFormats(&out)
	for _, want := range []string{"ply", "stl", ".wrl", "shift_jis"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in:\n%s", want, out.String())
		}
	}
}

func TestCmdConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glv.yaml")
	var out strings.Builder
	if err := cmdConfig([]string{path}, &out); err != nil {
		t.Fatalf("config failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "charset: utf-8") {
		t.Errorf("unexpected config:\n%s", data)
	}
}
