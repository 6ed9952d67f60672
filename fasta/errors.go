// fasta/errors.go
package fasta

import "errors"

// Structural failures. All are fatal to the call that returns them; the
// reader/writer stays inspectable but must not be used further except to
// Close. Reading an exhausted reader returns io.EOF, not a package error.
var (
	// ErrEmptyFile: the very first read found no line at all.
	ErrEmptyFile = errors.New("fasta: empty file")
	// ErrMalformedRecord: a record was expected but the line at the cursor
	// does not start with '>'.
	ErrMalformedRecord = errors.New("fasta: malformed record: missing '>' marker")
	// ErrEmptyDescription: a '>' with nothing (or only whitespace) after it.
	ErrEmptyDescription = errors.New("fasta: empty description")
	// ErrNonASCIIDescription: a description containing bytes >= 0x80.
	ErrNonASCIIDescription = errors.New("fasta: non-ASCII description")
	// ErrNonASCIIChar: a non-ASCII byte fed to the writer.
	ErrNonASCIIChar = errors.New("fasta: non-ASCII character")
	// ErrEmbeddedNewline: a description spanning more than one line.
	ErrEmbeddedNewline = errors.New("fasta: newline embedded in description")
	// ErrMissingMarker: the first written character was not '>'.
	ErrMissingMarker = errors.New("fasta: first record must start with '>'")
	// ErrMissingSequence: a record was closed with only a description line.
	ErrMissingSequence = errors.New("fasta: record has no sequence")
	// ErrStrayMarker: '>' inside sequence data rather than at a line start.
	ErrStrayMarker = errors.New("fasta: stray '>' in sequence")
	// ErrEmptySequence: a record whose sequence holds no non-whitespace
	// characters.
	ErrEmptySequence = errors.New("fasta: empty sequence")
	// ErrNotSeekable: Rewind on a stream without Seek.
	ErrNotSeekable = errors.New("fasta: underlying stream is not seekable")
)
