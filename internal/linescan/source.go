// internal/linescan/source.go
package linescan

import (
	"fmt"
	"io"
)

// ChunkSize is how many bytes a source pulls from the underlying stream
// per refill.
const ChunkSize = 4096

// source serves fixed-size chunks of an underlying byte stream. It does
// not interpret the bytes; cursoring over a chunk is the caller's job.
type source struct {
	r   io.Reader
	buf []byte // current chunk, len == valid bytes
	pos int    // cursor into buf
	eof bool
}

func newSource(r io.Reader) *source {
	return &source{r: r, buf: make([]byte, 0, ChunkSize)}
}

// fill replaces the current chunk with the next one. It reports 0 bytes
// only at end of stream; a short read from the underlying stream is a
// valid (smaller) chunk.
func (s *source) fill() (int, error) {
	if s.eof {
		return 0, nil
	}
	s.buf = s.buf[:cap(s.buf)]
	s.pos = 0
	for {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			s.buf = s.buf[:n]
			if err == io.EOF {
				s.eof = true
			}
			return n, nil
		}
		switch err {
		case nil:
			// zero-byte read without error; try again
			continue
		case io.EOF:
			s.buf = s.buf[:0]
			s.eof = true
			return 0, nil
		default:
			s.buf = s.buf[:0]
			return 0, fmt.Errorf("read: %w", err)
		}
	}
}

// reset clears the chunk and end-of-stream state, keeping the same
// underlying stream. The caller is expected to have repositioned it.
func (s *source) reset() {
	s.buf = s.buf[:0]
	s.pos = 0
	s.eof = false
}
