// Package config handles converter configuration loading and management.
package config

import (
	"fmt"

	"github.com/nbhr/glv/internal/logger"
	"github.com/nbhr/glv/pkg/encoding"
	"github.com/nbhr/glv/pkg/formats"
)

// Config holds all converter settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig holds settings for reading source meshes.
type ConvertConfig struct {
	Format       string `yaml:"format"`         // Source format; empty picks it from the file extension
	Charset      string `yaml:"charset"`        // Charset of the source text
	STLRawBlocks bool   `yaml:"stl_raw_blocks"` // Group STL triangles into raw_triangle blocks
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Format:       "",
			Charset:      "utf-8",
			STLRawBlocks: false,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate checks that every setting names something that exists.
func (c *Config) Validate() error {
	if c.Convert.Format != "" {
		if _, err := formats.ParseKind(c.Convert.Format); err != nil {
			return fmt.Errorf("convert.format: %w", err)
		}
	}
	if _, err := encoding.Lookup(c.Convert.Charset); err != nil {
		return fmt.Errorf("convert.charset: %w", err)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// ReaderOptions returns the reader options described by the config.
func (c *Config) ReaderOptions() formats.Options {
	return formats.Options{
		STL: formats.STLOptions{RawBlocks: c.Convert.STLRawBlocks},
	}
}
