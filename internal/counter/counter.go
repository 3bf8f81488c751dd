// Package counter counts non-empty lines. A line is non-empty when it
// contains at least one non-whitespace character; no language syntax is
// considered.
package counter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// CountReader counts non-empty lines in r. A trailing line without a final
// newline still counts. Whitespace is unicode.IsSpace over UTF-8 bytes, so
// whitespace-only lines (spaces, tabs, CR) are empty.
func CountReader(r io.Reader) (uint64, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var lines uint64
	nonEmpty := false

	for {
		chunk, err := br.ReadSlice('\n')
		if !nonEmpty && len(bytes.TrimSpace(chunk)) > 0 {
			nonEmpty = true
		}

		switch {
		case err == bufio.ErrBufferFull:
			// long line, keep consuming the same line
		case err == io.EOF:
			if nonEmpty {
				lines++
			}
			return lines, nil
		case err != nil:
			return lines, err
		default:
			if nonEmpty {
				lines++
			}
			nonEmpty = false
		}
	}
}

// CountFile counts non-empty lines in the file at path.
func CountFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := CountReader(f)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
