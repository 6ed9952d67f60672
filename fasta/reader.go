// fasta/reader.go
package fasta

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"fastx/internal/linescan"
)

// Reader parses FASTA records one at a time. The type parameter selects the
// sequence representation handed back to the caller; parsing always goes
// through one reused byte buffer regardless of S.
type Reader[S Seq] struct {
	in   io.Reader
	sc   *linescan.Scanner
	owns io.Closer // non-nil when Open created the stream

	rec     []byte // body accumulator, reused across records
	next    string // raw '>' line read ahead while finishing the previous record
	pending bool
	primed  bool
	done    bool
	parsed  int
}

// NewReader wraps an already-open stream. The caller keeps ownership of r;
// Close on the reader will not close it.
func NewReader[S Seq](r io.Reader) *Reader[S] {
	return &Reader[S]{in: r, sc: linescan.New(r)}
}

// Read returns the next record. The first call on an empty input fails with
// ErrEmptyFile; once the input is exhausted, Read returns io.EOF.
func (r *Reader[S]) Read() (Record[S], error) {
	var zero Record[S]
	if !r.primed {
		r.primed = true
		line, err := r.sc.Line()
		if err == io.EOF {
			r.done = true
			return zero, ErrEmptyFile
		}
		if err != nil {
			return zero, fmt.Errorf("fasta: %w", err)
		}
		r.next, r.pending = string(line), true
	}
	if !r.pending {
		return zero, io.EOF
	}
	desc, err := parseDesc(r.next)
	if err != nil {
		return zero, err
	}
	r.next, r.pending = "", false
	r.rec = r.rec[:0]
	for {
		line, err := r.sc.Line()
		if err == io.EOF {
			r.done = true
			break
		}
		if err != nil {
			return zero, fmt.Errorf("fasta: %w", err)
		}
		if line[0] == '>' {
			// left unconsumed; validated when the next call takes it
			r.next, r.pending = string(line), true
			break
		}
		r.rec = append(r.rec, line...)
	}
	r.parsed++
	return Record[S]{Desc: desc, Seq: S(bytes.Clone(r.rec))}, nil
}

// parseDesc validates a description line and extracts its text.
func parseDesc(line string) (string, error) {
	if line[0] != '>' {
		return "", fmt.Errorf("%w (line starts with %q)", ErrMalformedRecord, line[0])
	}
	desc := strings.TrimSpace(line[1:])
	if desc == "" {
		return "", ErrEmptyDescription
	}
	if !isASCII(desc) {
		return "", fmt.Errorf("%w: %q", ErrNonASCIIDescription, desc)
	}
	return desc, nil
}

// EOF reports whether the input is exhausted and no further record can be
// produced.
func (r *Reader[S]) EOF() bool { return r.done && !r.pending }

// Parsed returns the number of records yielded since construction or the
// last Rewind.
func (r *Reader[S]) Parsed() int { return r.parsed }

// Rewind repositions the stream at its start and resets all parse state.
// It fails with ErrNotSeekable when the underlying stream cannot seek
// (e.g. stdin).
func (r *Reader[S]) Rewind() error {
	s, ok := r.in.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("fasta: rewind: %w", err)
	}
	r.sc.Reset()
	r.rec = r.rec[:0]
	r.next, r.pending = "", false
	r.primed = false
	r.done = false
	r.parsed = 0
	return nil
}

// All iterates the file's records from the beginning: if anything has been
// consumed already the reader is rewound first. Manual Read calls, by
// contrast, continue from wherever the cursor is. Iteration stops at the
// first error; an empty file yields ErrEmptyFile.
func (r *Reader[S]) All() iter.Seq2[Record[S], error] {
	return func(yield func(Record[S], error) bool) {
		if r.primed {
			if err := r.Rewind(); err != nil {
				yield(Record[S]{}, err)
				return
			}
		}
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Record[S]{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Close releases the underlying stream if the reader owns it (opened from a
// path). For wrapped streams it is a no-op.
func (r *Reader[S]) Close() error {
	if r.owns != nil {
		return r.owns.Close()
	}
	return nil
}
