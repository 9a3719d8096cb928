package encoding

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		wantNil bool
		wantErr bool
	}{
		{"", true, false},
		{"UTF-8", true, false},
		{"utf8", true, false},
		{"euc-kr", false, false},
		{"Latin1", false, false},
		{"windows-1252", false, false},
		{"shift_jis", false, false},
		{"klingon", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Lookup(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if (enc == nil) != tt.wantNil {
				t.Errorf("Lookup(%q) nil = %v, want %v", tt.name, enc == nil, tt.wantNil)
			}
		})
	}
}

func TestNames(t *testing.T) {
	for _, n := range Names() {
		if _, err := Lookup(n); err != nil {
			t.Errorf("advertised charset %q is not accepted: %v", n, err)
		}
	}
}

func TestNewReader_Latin1(t *testing.T) {
	// "solid caf\xe9" is "solid café" in ISO-8859-1.
	r, err := NewReader(strings.NewReader("solid caf\xe9\n"), "latin1")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != "solid café\n" {
		t.Errorf("got %q", data)
	}
}

func TestNewReader_UTF8Passthrough(t *testing.T) {
	src := strings.NewReader("ply\n")
	r, err := NewReader(src, "utf-8")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if r != io.Reader(src) {
		t.Error("UTF-8 input should not be wrapped")
	}
}

func TestNewReader_Unknown(t *testing.T) {
	if _, err := NewReader(strings.NewReader(""), "ebcdic"); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestNewReader_EUCKR(t *testing.T) {
	text := "solid 솔리드\n"
	encoded, _, err := transform.String(korean.EUCKR.NewEncoder(), text)
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	r, err := NewReader(strings.NewReader(encoded), "euc-kr")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != text {
		t.Errorf("got %q, want %q", data, text)
	}
}
