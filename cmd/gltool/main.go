// gltool is a CLI utility for working with GL command streams.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nbhr/glv/internal/config"
	"github.com/nbhr/glv/pkg/encoding"
	"github.com/nbhr/glv/pkg/formats"
	"github.com/nbhr/glv/pkg/glstream"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args, os.Stdout)
	case "grep":
		err = cmdGrep(args, os.Stdout)
	case "formats":
		err = cmdFormats(os.Stdout)
	case "config":
		err = cmdConfig(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gltool - GL command stream utility

Usage:
  gltool <command> [options]

Commands:
  info [file]                  Show stream statistics (stdin if no file)
  grep [-v] <pattern> [file]   Keep lines and raw blocks matching pattern
  formats                      List supported source formats
  config <path>                Write the default configuration to path

Examples:
  glconv bunny.ply | gltool info
  gltool grep -v raw_triangle scene.gl
  gltool config ~/.config/glv/glv.yaml`)
}

// openInput returns the named file, or stdin when no name is given.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "(stdin)", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

func cmdInfo(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)

	in, name, err := openInput(fs.Args())
	if err != nil {
		return err
	}
	defer in.Close()

	dec, err := glstream.Decode(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	st := glstream.Summarize(dec.Commands)

	fmt.Fprintf(w, "Stream:     %s\n", name)
	fmt.Fprintf(w, "Commands:   %d\n", len(dec.Commands))
	if dec.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:    %d\n", dec.Skipped)
	}
	fmt.Fprintf(w, "Objects:    %d\n", st.Objects)
	fmt.Fprintf(w, "Vertices:   %d (%d blocks)\n", st.Vertices, st.VertexBlocks)
	fmt.Fprintf(w, "Lines:      %d\n", st.Lines)
	fmt.Fprintf(w, "Triangles:  %d\n", st.Triangles)
	fmt.Fprintf(w, "Quads:      %d\n", st.Quads)
	fmt.Fprintf(w, "Bounds:     %s\n", st.Bounds)
	if !st.Bounds.Empty() {
		size := st.Bounds.Size()
		fmt.Fprintf(w, "Size:       %g x %g x %g\n", size.X, size.Y, size.Z)
		center := st.Bounds.Center()
		fmt.Fprintf(w, "Center:     %g %g %g\n", center.X, center.Y, center.Z)
		fmt.Fprintf(w, "Diagonal:   %g\n", st.Bounds.Diagonal())
	}
	return nil
}

func cmdGrep(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("grep", flag.ExitOnError)
	invert := fs.Bool("v", false, "Invert search")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: gltool grep [-v] <pattern> [file]")
	}

	in, name, err := openInput(fs.Args()[1:])
	if err != nil {
		return err
	}
	defer in.Close()

	if _, err := glstream.Grep(in, w, fs.Arg(0), *invert); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func cmdFormats(w io.Writer) error {
	fmt.Fprintln(w, "Source formats:")
	for _, k := range formats.Kinds() {
		fmt.Fprintf(w, "  %-6s %-14s %s\n", k, strings.Join(k.Extensions(), " "), k.Description())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compression:  .gz .bz2")
	fmt.Fprintf(w, "Charsets:     utf-8 %s\n", strings.Join(encoding.Names(), " "))
	return nil
}

func cmdConfig(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gltool config <path>")
	}
	if err := config.Default().SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", args[0])
	return nil
}
