package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fastakit/internal/fasta"
)

// ErrUnwritableSequence reports a sequence whose first character would be
// read back as a header or comment.
var ErrUnwritableSequence = errors.New("output: sequence starts with a header or comment symbol")

// FASTAFormat controls record re-serialization.
type FASTAFormat struct {
	// LineEnding terminates every written line; empty means "\n".
	LineEnding string
	// Wrap is the maximum number of residues per sequence line; 0 keeps the
	// sequence on one line.
	Wrap int
}

func (f FASTAFormat) eol() string {
	if f.LineEnding == "" {
		return "\n"
	}
	return f.LineEnding
}

// WriteRecordFASTA renders one record: comment lines, the '>' header, then
// the sequence. Comments that already start with ';' or '#' are written
// verbatim so that re-parsing yields the same comment text; others get a
// '#' prefix.
//
// A sequence that itself starts with '>', '#' or ';' cannot be written back
// as sequence text and yields ErrUnwritableSequence.
func WriteRecordFASTA(w io.Writer, r fasta.Record, f FASTAFormat) error {
	if fasta.Classify(r.Sequence) != fasta.SequenceLine {
		return fmt.Errorf("%w: record %q", ErrUnwritableSequence, r.Header)
	}
	eol := f.eol()
	var b strings.Builder
	for _, c := range r.Comments {
		if !fasta.IsComment(c) {
			b.WriteByte(fasta.CommentSymbol)
		}
		b.WriteString(c)
		b.WriteString(eol)
	}
	b.WriteString(r.HeaderLine())
	b.WriteString(eol)
	for _, line := range Wrap(r.Sequence, f.Wrap) {
		b.WriteString(line)
		b.WriteString(eol)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Wrap splits seq into lines of at most width bytes. width <= 0 returns seq
// as a single line; an empty sequence still yields one (empty) line. A line
// never starts with a header or comment symbol: such characters stay on the
// previous line, which may then exceed width.
func Wrap(seq string, width int) []string {
	if width <= 0 || len(seq) <= width {
		return []string{seq}
	}
	lines := make([]string, 0, (len(seq)+width-1)/width)
	for off := 0; off < len(seq); {
		end := min(off+width, len(seq))
		for end < len(seq) && fasta.Classify(seq[end:end+1]) != fasta.SequenceLine {
			end++
		}
		lines = append(lines, seq[off:end])
		off = end
	}
	return lines
}

// WriteFASTA writes records in order.
func WriteFASTA(w io.Writer, list []fasta.Record, f FASTAFormat) error {
	for _, r := range list {
		if err := WriteRecordFASTA(w, r, f); err != nil {
			return err
		}
	}
	return nil
}

// StreamFASTA streams entries from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan Entry, f FASTAFormat) error {
	for e := range in {
		if err := WriteRecordFASTA(w, e.Record, f); err != nil {
			return err
		}
	}
	return nil
}

// FormatFASTAString is WriteRecordFASTA into a string.
func FormatFASTAString(r fasta.Record, f FASTAFormat) string {
	var b strings.Builder
	_ = WriteRecordFASTA(&b, r, f)
	return b.String()
}
