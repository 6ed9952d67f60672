// Package fasta reads and writes FASTA streams one record at a time.
//
// Design:
//   - Reading never holds more than one record: bytes become logical lines
//     (internal/linescan), lines become records, one reused buffer per stage.
//   - Writing runs the other way: characters or whole records come in, and
//     reflowed 80-column lines go out, with record boundaries re-derived
//     from the '>' markers.
//   - gzip and zstd are transparent on path-based Open/Create; streams the
//     caller hands in are used (and left open) as-is.
package fasta
