// Package convert reads a mesh file and writes it as a GL command stream.
package convert

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nbhr/glv/internal/config"
	"github.com/nbhr/glv/internal/logger"
	"github.com/nbhr/glv/pkg/encoding"
	"github.com/nbhr/glv/pkg/formats"
	"github.com/nbhr/glv/pkg/glstream"
)

// Converter turns mesh files into command streams using one configuration.
type Converter struct {
	cfg *config.Config
}

// New creates a converter. A nil cfg uses the defaults.
func New(cfg *config.Config) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Converter{cfg: cfg}
}

// Kind returns the source format for path: the configured format if set,
// otherwise the one implied by the file extension.
func (c *Converter) Kind(path string) (formats.Kind, error) {
	if c.cfg.Convert.Format != "" {
		return formats.ParseKind(c.cfg.Convert.Format)
	}
	return formats.KindFromPath(path)
}

// Parse reads the mesh at path into a command sequence.
func (c *Converter) Parse(path string) (glstream.Sequence, error) {
	kind, err := c.Kind(path)
	if err != nil {
		return nil, err
	}

	f, err := formats.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seq, err := c.ParseReader(f, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// ParseReader reads a mesh of the given kind from r.
func (c *Converter) ParseReader(r io.Reader, kind formats.Kind) (glstream.Sequence, error) {
	reader, err := formats.NewReader(kind, c.cfg.ReaderOptions())
	if err != nil {
		return nil, err
	}

	text, err := encoding.NewReader(r, c.cfg.Convert.Charset)
	if err != nil {
		return nil, err
	}

	seq, err := reader.Parse(text)
	if err != nil {
		return nil, err
	}

	st := glstream.Summarize(seq)
	logger.Debug("parsed mesh",
		zap.Stringer("format", kind),
		zap.Int("commands", len(seq)),
		zap.Int("vertices", st.Vertices),
		zap.Int("primitives", st.Primitives()),
		zap.Stringer("bounds", st.Bounds))
	return seq, nil
}

// Run converts the mesh at path and writes the stream to w. Nothing is
// written when the file cannot be parsed.
func (c *Converter) Run(path string, w io.Writer) error {
	seq, err := c.Parse(path)
	if err != nil {
		logger.Error("conversion failed", zap.String("path", path), zap.Error(err))
		return err
	}
	var buf bytes.Buffer
	if err := glstream.Write(&buf, seq); err != nil {
		logger.Error("emitting stream failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("emitting stream: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing stream: %w", err)
	}
	logger.Debug("conversion done", zap.String("path", path), zap.Int("commands", len(seq)))
	return nil
}
