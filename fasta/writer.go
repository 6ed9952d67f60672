// fasta/writer.go
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
)

// Width is the column at which sequence output wraps, and the longest
// description that does not draw a warning (counting the '>' marker).
const Width = 80

// Writer emits FASTA, re-deriving record boundaries from the characters it
// is fed: a '>' directly after a logical newline starts the next record,
// sequence data reflows at Width columns, whitespace in sequence data is
// dropped. Use WriteEntry for whole records, WriteByte/WriteLine for
// character streams.
type Writer struct {
	w    *bufio.Writer
	owns io.Closer // non-nil when Create opened the stream
	log  *log.Logger

	inSeq    bool
	atStart  bool
	parsedNL bool // last accepted character was a logical newline
	pos      int  // column; description chars since '>' when !inSeq
	desc     int  // chars written in the current description, incl. '>'
	seq      int  // sequence chars written in the current entry
	entry    int  // 1-based
}

// NewWriter wraps an already-open stream. The caller keeps ownership of w;
// Close flushes but does not close it.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), log: log.Default(), atStart: true}
}

// SetLogger redirects the writer's non-fatal diagnostics (long
// descriptions). The default is log.Default().
func (w *Writer) SetLogger(l *log.Logger) { w.log = l }

// WriteByte feeds one character through the record state machine. It
// implements io.ByteWriter.
func (w *Writer) WriteByte(c byte) error {
	if c >= 0x80 {
		return fmt.Errorf("%w: 0x%02x", ErrNonASCIIChar, c)
	}
	if c == '\n' {
		if w.atStart {
			return nil
		}
		w.parsedNL = true
		if !w.inSeq {
			// end of the description line
			if w.desc <= 1 {
				return ErrEmptyDescription
			}
			if err := w.w.WriteByte('\n'); err != nil {
				return err
			}
			w.pos = 0
			w.inSeq = true
		}
		return nil
	}
	if w.atStart {
		if isSpace(c) {
			return nil
		}
		if c != '>' {
			return fmt.Errorf("%w (got %q)", ErrMissingMarker, c)
		}
		if err := w.w.WriteByte('>'); err != nil {
			return err
		}
		w.atStart = false
		w.entry = 1
		w.desc, w.pos = 1, 1
		return nil
	}
	if c == '>' && w.inSeq {
		if !w.parsedNL {
			return fmt.Errorf("%w (entry %d)", ErrStrayMarker, w.entry)
		}
		// next record
		if w.seq == 0 {
			return fmt.Errorf("%w (entry %d)", ErrMissingSequence, w.entry)
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
		if err := w.w.WriteByte('>'); err != nil {
			return err
		}
		w.inSeq = false
		w.entry++
		w.desc, w.seq = 1, 0
		w.pos = 1
		w.parsedNL = false
		return nil
	}
	// Leading whitespace in a description is dropped; once it has content,
	// whitespace (trailing included) is written literally. Kept as-is for
	// compatibility with files in the wild that rely on it.
	if isSpace(c) && (w.inSeq || w.desc <= 1) {
		return nil
	}
	if w.pos == Width {
		if w.inSeq {
			if err := w.w.WriteByte('\n'); err != nil {
				return err
			}
			w.pos = 0
		} else {
			w.log.Warn("description longer than 79 characters", "entry", w.entry)
		}
	}
	if err := w.w.WriteByte(c); err != nil {
		return err
	}
	w.pos++
	if w.inSeq {
		w.seq++
	} else {
		w.desc++
	}
	w.parsedNL = false
	return nil
}

// WriteLine feeds a whole line through WriteByte and terminates it with a
// logical newline.
func (w *Writer) WriteLine(line string) error {
	for i := 0; i < len(line); i++ {
		if err := w.WriteByte(line[i]); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// WriteLines streams a sequence of lines in order.
func (w *Writer) WriteLines(lines []string) error {
	for _, line := range lines {
		if err := w.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry emits one whole record: ">desc\n" followed by the sequence
// reflowed at Width columns. The description is validated before anything
// is written, so a failing record produces no partial output unless its
// sequence itself is invalid.
func (w *Writer) WriteEntry(desc string, seq []byte) error {
	if strings.IndexByte(desc, '\n') >= 0 {
		return fmt.Errorf("%w: %q", ErrEmbeddedNewline, desc)
	}
	d := strings.TrimSpace(desc)
	if d == "" {
		return ErrEmptyDescription
	}
	if !isASCII(d) {
		return fmt.Errorf("%w: %q", ErrNonASCIIDescription, d)
	}
	if len(d) > Width-1 {
		w.log.Warn("description longer than 79 characters", "entry", w.entry+1)
	}
	if !w.atStart {
		// terminate the previous record's last line
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.w.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.w.WriteString(d); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	n, err := reflow(w.w, seq)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w (entry %d)", ErrEmptySequence, w.entry+1)
	}
	w.atStart = false
	w.inSeq = true
	w.entry++
	w.desc = len(d) + 1
	w.seq = n
	// a full final line leaves the cursor at the wrap column, not 0
	w.pos = n % Width
	if w.pos == 0 {
		w.pos = Width
	}
	w.parsedNL = false
	return nil
}

// Close terminates the last line, flushes, and releases the stream if the
// writer owns it. Record content is flushed first and any failure there
// propagates; a broken-pipe or end-of-stream condition is tolerated only on
// the final-newline write that follows. Safe to call on a writer that never
// wrote anything.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		return err
	}
	if !w.atStart {
		err := w.w.WriteByte('\n')
		if err == nil {
			err = w.w.Flush()
		}
		if err != nil && !isBenignCloseErr(err) {
			return err
		}
	}
	if w.owns != nil {
		return w.owns.Close()
	}
	return nil
}

// isBenignCloseErr reports whether an error from the final newline write is
// the harmless kind seen when a downstream consumer (like `head`) has
// already gone away.
func isBenignCloseErr(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.EPIPE)
}
