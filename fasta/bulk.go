// fasta/bulk.go
package fasta

import "io"

// ReadAll opens path and drains every record into memory.
func ReadAll[S Seq](path string) ([]Record[S], error) {
	r, err := Open[S](path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return drain(r)
}

// ReadAllFrom drains every record from an already-open stream.
func ReadAllFrom[S Seq](in io.Reader) ([]Record[S], error) {
	return drain(NewReader[S](in))
}

func drain[S Seq](r *Reader[S]) ([]Record[S], error) {
	var recs []Record[S]
	for rec, err := range r.All() {
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// WriteAll creates path and writes every record to it. The first invalid
// record aborts the write.
func WriteAll[S Seq](path string, recs []Record[S]) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	if err := writeRecords(w, recs); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// WriteAllTo writes every record to an already-open stream and flushes.
func WriteAllTo[S Seq](out io.Writer, recs []Record[S]) error {
	w := NewWriter(out)
	if err := writeRecords(w, recs); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func writeRecords[S Seq](w *Writer, recs []Record[S]) error {
	for _, rec := range recs {
		if err := w.WriteEntry(rec.Desc, []byte(rec.Seq)); err != nil {
			return err
		}
	}
	return nil
}
