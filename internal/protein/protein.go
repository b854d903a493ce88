// internal/protein/protein.go
package protein

import (
	"fmt"
	"io"
	"strings"

	"fastakit/internal/fasta"
	"fastakit/internal/output"
)

// Protein is a named amino-acid sequence.
type Protein struct {
	ID       string
	Sequence string
}

// FromRecord takes the header as ID and the filtered sequence as is.
func FromRecord(r fasta.Record) Protein {
	return Protein{ID: r.Header, Sequence: r.Sequence}
}

// builder is shared by every conversion. NewBuilder only fails for an
// unknown sequence type.
var builder = func() *fasta.Builder {
	b, err := fasta.NewBuilder(fasta.Protein, "")
	if err != nil {
		panic(err)
	}
	return b
}()

// ToRecord builds a protein record; the sequence is filtered against the
// protein alphabet.
func (p Protein) ToRecord() fasta.Record {
	return builder.Build(p.ID, true, nil, p.Sequence, true)
}

// SameSequenceAs compares sequences case-insensitively.
func (p Protein) SameSequenceAs(o Protein) bool {
	return strings.EqualFold(p.Sequence, o.Sequence)
}

// Split cuts p into ceil(len/size) consecutive parts of len/count residues,
// the last part also taking the remainder. Part IDs get a 1-based
// "[start-end]" suffix. A sequence shorter than size (or size <= 0) comes
// back whole and unrenamed.
func (p Protein) Split(size int) []Protein {
	n := len(p.Sequence)
	if size <= 0 || n < size {
		return []Protein{p}
	}
	count := (n + size - 1) / size
	part := n / count
	out := make([]Protein, 0, count)
	for i := 0; i < count; i++ {
		start := i * part
		end := start + part
		if i == count-1 {
			end = n
		}
		out = append(out, Protein{
			ID:       fmt.Sprintf("%s[%d-%d]", p.ID, start+1, end),
			Sequence: p.Sequence[start:end],
		})
	}
	return out
}

// Compare orders longer sequences first, then case-insensitively by
// sequence.
func Compare(a, b Protein) int {
	if len(a.Sequence) != len(b.Sequence) {
		if len(a.Sequence) > len(b.Sequence) {
			return -1
		}
		return 1
	}
	return strings.Compare(strings.ToUpper(a.Sequence), strings.ToUpper(b.Sequence))
}

// WriteFASTA renders each protein as one FASTA record.
func WriteFASTA(w io.Writer, list []Protein, f output.FASTAFormat) error {
	for _, p := range list {
		if err := output.WriteRecordFASTA(w, p.ToRecord(), f); err != nil {
			return err
		}
	}
	return nil
}
