// fasta/reflow.go
package fasta

import (
	"bufio"
	"fmt"
)

// reflow copies sequence bytes to w with whitespace dropped and a newline
// before every Width-th emitted character. It returns the number of
// characters emitted so callers can reject empty sequences.
func reflow(w *bufio.Writer, seq []byte) (int, error) {
	n := 0
	for _, c := range seq {
		if c >= 0x80 {
			return n, fmt.Errorf("%w: 0x%02x", ErrNonASCIIChar, c)
		}
		if c == '\n' || isSpace(c) {
			continue
		}
		if c == '>' {
			return n, fmt.Errorf("%w (in sequence data)", ErrStrayMarker)
		}
		if n > 0 && n%Width == 0 {
			if err := w.WriteByte('\n'); err != nil {
				return n, err
			}
		}
		if err := w.WriteByte(c); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
