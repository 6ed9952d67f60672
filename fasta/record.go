// fasta/record.go
package fasta

// Seq constrains the representations a sequence body can be delivered in.
// Content is guaranteed ASCII, so byte and string forms are equivalent.
type Seq interface {
	~string | ~[]byte
}

// Record is one FASTA entry: the description line (without its leading '>',
// trimmed of outer whitespace) and the concatenated sequence body.
type Record[S Seq] struct {
	Desc string
	Seq  S
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// asciiSpace covers horizontal and vertical whitespace; '\n' is handled
// separately everywhere it matters.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
