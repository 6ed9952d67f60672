package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

// writeCompressed creates a compressed fixture and returns its path.
func writeCompressed(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	switch {
	case strings.HasSuffix(name, ".gz"):
		gw := gzip.NewWriter(fh)
		_, err = gw.Write([]byte(data))
		require.NoError(t, err)
		require.NoError(t, gw.Close())
	case strings.HasSuffix(name, ".zst"):
		zw, zerr := zstd.NewWriter(fh)
		require.NoError(t, zerr)
		_, err = zw.Write([]byte(data))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
	default:
		_, err = fh.WriteString(data)
		require.NoError(t, err)
	}
	require.NoError(t, fh.Close())
	return path
}

const fixture = ">seq1\nACGT\n>seq2\nNNnn\n"

func TestOpenPlain(t *testing.T) {
	path := writeCompressed(t, "in.fa", fixture)
	recs, err := ReadAll[string](path)
	require.NoError(t, err)
	require.Equal(t, []Record[string]{
		{Desc: "seq1", Seq: "ACGT"},
		{Desc: "seq2", Seq: "NNnn"},
	}, recs)
}

func TestOpenGzip(t *testing.T) {
	path := writeCompressed(t, "in.fa.gz", fixture)
	recs, err := ReadAll[string](path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "seq1", recs[0].Desc)
}

func TestOpenGzipByMagic(t *testing.T) {
	// gzip content without the .gz suffix is still detected.
	gz := writeCompressed(t, "in.fa.gz", fixture)
	path := strings.TrimSuffix(gz, ".gz")
	require.NoError(t, os.Rename(gz, path))
	recs, err := ReadAll[string](path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
}

func TestOpenZstd(t *testing.T) {
	path := writeCompressed(t, "in.fa.zst", fixture)
	recs, err := ReadAll[string](path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "NNnn", recs[1].Seq)
}

func TestRewindThroughGzip(t *testing.T) {
	path := writeCompressed(t, "in.fa.gz", fixture)
	r, err := Open[string](path)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	first := readAllManual(t, r)
	require.NoError(t, r.Rewind())
	second := readAllManual(t, r)
	require.Equal(t, first, second)
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	in := []Record[string]{
		{Desc: "G1", Seq: "ACGTAC"},
		{Desc: "G2", Seq: strings.Repeat("T", 200)},
		{Desc: "G3 with spaces", Seq: "AC GT\nTT"}, // whitespace collapses
	}
	for _, name := range []string{"out.fa", "out.fa.gz", "out.fa.zst"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, WriteAll(path, in))

		got, err := ReadAll[string](path)
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "ACGTAC", got[0].Seq)
		require.Equal(t, in[1].Seq, got[1].Seq, "wrapped long sequence must concatenate back")
		require.Equal(t, "G3 with spaces", got[2].Desc)
		require.Equal(t, "ACGTTT", got[2].Seq)
	}
}

func TestWriteAllAbortsOnBadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fa")
	err := WriteAll(path, []Record[string]{
		{Desc: "ok", Seq: "ACGT"},
		{Desc: "bad\ndesc", Seq: "ACGT"},
	})
	require.ErrorIs(t, err, ErrEmbeddedNewline)
}

func TestReadAllFromStream(t *testing.T) {
	recs, err := ReadAllFrom[[]byte](strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, []byte("ACGT"), recs[0].Seq)
}

func TestReadAllFromEmptyStream(t *testing.T) {
	_, err := ReadAllFrom[string](strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestWriteAllToStream(t *testing.T) {
	var sb strings.Builder
	err := WriteAllTo(&sb, []Record[string]{{Desc: "G1", Seq: "ACGT"}})
	require.NoError(t, err)
	require.Equal(t, ">G1\nACGT\n", sb.String())
}
