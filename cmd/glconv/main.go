// glconv converts PLY, STL and VRML meshes into a GL command stream.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nbhr/glv/internal/config"
	"github.com/nbhr/glv/internal/convert"
	"github.com/nbhr/glv/internal/logger"
)

func main() {
	flag.Usage = printUsage

	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) != 1 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := convert.New(cfg).Run(args[0], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `glconv - convert ASCII meshes to a GL command stream

Usage:
  glconv [options] <file>

Supported inputs: .ply, .stl, .wrl/.vrml, optionally .gz or .bz2 compressed.
The stream is written to stdout.

Options:`)
	flag.PrintDefaults()
}
