package glstream

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grep copies the lines of a stream that contain pattern from r to w.
// A raw block is kept or dropped as a whole depending on its header line.
// With invert set, the selection is reversed. It returns the number of
// lines written.
func Grep(r io.Reader, w io.Writer, pattern string, invert bool) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)

	written := 0
	inBlock, keepBlock := false, false

	emit := func(line string) error {
		written++
		_, err := bw.WriteString(line + "\n")
		return err
	}

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimLeft(line, " \t")

		if inBlock {
			if strings.HasPrefix(trimmed, "raw_end") {
				inBlock = false
			}
			if keepBlock {
				if err := emit(line); err != nil {
					return written, err
				}
			}
			continue
		}

		match := strings.Contains(line, pattern) != invert
		if strings.HasPrefix(trimmed, "raw_") && !strings.HasPrefix(trimmed, "raw_end") {
			inBlock, keepBlock = true, match
		}
		if match {
			if err := emit(line); err != nil {
				return written, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return written, fmt.Errorf("reading stream: %w", err)
	}
	return written, bw.Flush()
}
