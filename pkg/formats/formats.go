// Package formats provides readers that turn ASCII mesh files into the
// canonical GL command stream.
package formats

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nbhr/glv/pkg/glstream"
)

// Kind identifies a source format.
type Kind int

// Supported source formats.
const (
	KindUnknown Kind = iota
	KindPLY          // header-declared vertex/face lists
	KindSTL          // faceted triangles with explicit coordinates
	KindVRML         // IndexedLineSet / IndexedFaceSet scene graphs
)

// String returns the short format name.
func (k Kind) String() string {
	switch k {
	case KindPLY:
		return "ply"
	case KindSTL:
		return "stl"
	case KindVRML:
		return "vrml"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Description returns a human-readable description of the format.
func (k Kind) Description() string {
	switch k {
	case KindPLY:
		return "Stanford PLY, ASCII, triangular faces"
	case KindSTL:
		return "STL, ASCII solids"
	case KindVRML:
		return "VRML IndexedLineSet / IndexedFaceSet"
	default:
		return "unknown"
	}
}

// Kinds lists all supported formats.
func Kinds() []Kind {
	return []Kind{KindPLY, KindSTL, KindVRML}
}

// Extensions returns the file extensions recognised for the format.
func (k Kind) Extensions() []string {
	switch k {
	case KindPLY:
		return []string{".ply"}
	case KindSTL:
		return []string{".stl"}
	case KindVRML:
		return []string{".wrl", ".vrml"}
	default:
		return nil
	}
}

// ParseKind parses a format name or extension ("ply", ".wrl").
func ParseKind(name string) (Kind, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	for _, k := range Kinds() {
		if name == k.String() {
			return k, nil
		}
		for _, ext := range k.Extensions() {
			if name == ext[1:] {
				return k, nil
			}
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// KindFromPath picks the format from a file name. Compression suffixes
// handled by Open are ignored.
func KindFromPath(path string) (Kind, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, suffix := range compressionSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return KindUnknown, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseKind(ext)
}

// Reader converts one complete input stream into a command sequence.
// On error no part of the sequence is returned.
type Reader interface {
	Parse(r io.Reader) (glstream.Sequence, error)
}

// Options tune reader behaviour.
type Options struct {
	STL STLOptions
}

// NewReader returns the reader for kind.
func NewReader(kind Kind, opts Options) (Reader, error) {
	switch kind {
	case KindPLY:
		return &PLYReader{}, nil
	case KindSTL:
		return &STLReader{Options: opts.STL}, nil
	case KindVRML:
		return &VRMLReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, kind)
	}
}
