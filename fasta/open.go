// fasta/open.go
package fasta

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// multiCloser closes layered streams in order (codec before file).
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// fileStream is an owned input stream: the file plus an optional
// decompression layer that is re-armed after a seek so Rewind works
// through the codec.
type fileStream struct {
	f     *os.File
	r     io.Reader
	rearm func() error // nil for plain streams
	cl    io.Closer
}

func (s *fileStream) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *fileStream) Seek(offset int64, whence int) (int64, error) {
	n, err := s.f.Seek(offset, whence)
	if err == nil && s.rearm != nil {
		err = s.rearm()
	}
	return n, err
}

func (s *fileStream) Close() error { return s.cl.Close() }

// openStream opens path for reading, decoding gzip or zstd transparently.
// Compression is detected by magic bytes or by the .gz/.zst suffix; "-"
// means stdin.
func openStream(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	switch {
	case (n >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &fileStream{
			f:     fh,
			r:     gr,
			rearm: func() error { return gr.Reset(fh) },
			cl:    multiCloser{gr, fh},
		}, nil
	case (n >= 4 && bytes.Equal(sig[:], zstdMagic)) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &fileStream{
			f:     fh,
			r:     zr,
			rearm: func() error { return zr.Reset(fh) },
			cl:    multiCloser{closerFunc(func() error { zr.Close(); return nil }), fh},
		}, nil
	}
	return fh, nil
}

// createStream opens path for writing, compressing by suffix; "-" means
// stdout (left open on Close).
func createStream(path string) (io.WriteCloser, error) {
	if path == "-" {
		return struct {
			io.Writer
			io.Closer
		}{os.Stdout, closerFunc(func() error { return nil })}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		gw := gzip.NewWriter(fh)
		return struct {
			io.Writer
			io.Closer
		}{gw, multiCloser{gw, fh}}, nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return struct {
			io.Writer
			io.Closer
		}{zw, multiCloser{zw, fh}}, nil
	}
	return fh, nil
}

// Open opens a FASTA file (plain, gzip, or zstd) for record-at-a-time
// reading. The returned reader owns the stream: Close releases it.
func Open[S Seq](path string) (*Reader[S], error) {
	rc, err := openStream(path)
	if err != nil {
		return nil, err
	}
	r := NewReader[S](rc)
	r.owns = rc
	return r, nil
}

// Create opens path for FASTA writing, compressing by suffix. The returned
// writer owns the stream: Close flushes and releases it.
func Create(path string) (*Writer, error) {
	wc, err := createStream(path)
	if err != nil {
		return nil, err
	}
	w := NewWriter(wc)
	w.owns = wc
	return w, nil
}
