// internal/linescan/lines.go

// Package linescan turns a raw byte stream into logical lines, pulling
// fixed-size chunks on demand and holding at most one line in memory.
package linescan

import (
	"bytes"
	"io"
)

// Scanner assembles logical lines from a byte stream. Line terminators
// ("\n" or "\r\n") are stripped, zero-length lines are elided, and a final
// line without a terminator is still delivered. One internal line buffer is
// reused across calls, so a returned line is valid only until the next call.
type Scanner struct {
	src  *source
	line []byte
}

func New(r io.Reader) *Scanner {
	return &Scanner{src: newSource(r), line: make([]byte, 0, 64)}
}

// Line returns the next logical line, or io.EOF once the stream is
// exhausted. Blank lines are skipped silently; a line of only whitespace
// (e.g. a single space) is not blank and is returned as-is.
func (s *Scanner) Line() ([]byte, error) {
	for {
		s.line = s.line[:0]
		for {
			if s.src.pos >= len(s.src.buf) {
				n, err := s.src.fill()
				if err != nil {
					return nil, err
				}
				if n == 0 {
					if len(s.line) == 0 {
						return nil, io.EOF
					}
					// unterminated final line; still gets the CR strip
					break
				}
			}
			chunk := s.src.buf[s.src.pos:]
			if i := bytes.IndexByte(chunk, '\n'); i >= 0 {
				s.line = append(s.line, chunk[:i]...)
				s.src.pos += i + 1
				break
			}
			s.line = append(s.line, chunk...)
			s.src.pos = len(s.src.buf)
		}
		if n := len(s.line); n > 0 && s.line[n-1] == '\r' {
			s.line = s.line[:n-1]
		}
		if len(s.line) > 0 {
			return s.line, nil
		}
		// blank line: fetch the next one
	}
}

// EOF reports whether the underlying stream has been exhausted. Buffered
// bytes may still yield a final line.
func (s *Scanner) EOF() bool { return s.src.eof && s.src.pos >= len(s.src.buf) }

// Reset discards all buffered state so scanning restarts cleanly after the
// underlying stream has been repositioned.
func (s *Scanner) Reset() {
	s.src.reset()
	s.line = s.line[:0]
}
