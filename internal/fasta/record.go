package fasta

import (
	"fmt"
	"strings"
)

// Record is one finalized FASTA entry. Records are immutable once emitted;
// Comments is owned by the record and never shared with the parser.
type Record struct {
	Type     SequenceType
	Header   string   // without the leading '>' and surrounding whitespace
	Comments []string // raw comment lines, including their ';' or '#'
	Sequence string   // alphabet-filtered concatenation of sequence lines
	Valid    bool

	// StartLine is the 1-based input line that opened the record, 0 for
	// records built outside a parse.
	StartLine int

	hasHeader   bool
	hasSequence bool
}

// NormalizeHeader trims surrounding whitespace and any leading header
// symbols, so ">id desc", "id desc" and "  >>id desc " all yield "id desc".
func NormalizeHeader(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), string(HeaderSymbol)))
}

// HeaderLine renders the header with its symbol.
func (r Record) HeaderLine() string { return string(HeaderSymbol) + r.Header }

// ID is the first whitespace-delimited word of the header.
func (r Record) ID() string {
	if f := strings.Fields(r.Header); len(f) > 0 {
		return f[0]
	}
	return ""
}

// Len is the number of residues in the filtered sequence.
func (r Record) Len() int { return len(r.Sequence) }

// Reason describes why a record is invalid; it is empty for valid records.
func (r Record) Reason() string {
	switch {
	case r.Valid:
		return ""
	case !r.hasHeader && !r.hasSequence:
		return "missing header and sequence"
	case !r.hasHeader:
		return "missing header"
	case !r.hasSequence:
		return "missing sequence"
	default:
		return "empty sequence after filtering"
	}
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	c := r
	c.Comments = append([]string(nil), r.Comments...)
	return c
}

// Truncate returns the 1-based inclusive residue window [start, end] of r.
// The window is clamped to the sequence; ok is false when nothing remains.
// With rename the header gains a "[start-end]" suffix.
func (r Record) Truncate(start, end int, rename bool) (Record, bool) {
	if start > len(r.Sequence) || end < 1 || end < start {
		return Record{}, false
	}
	if start < 1 {
		start = 1
	}
	if end > len(r.Sequence) {
		end = len(r.Sequence)
	}
	c := r.Clone()
	c.Sequence = r.Sequence[start-1 : end]
	if rename {
		c.Header = fmt.Sprintf("%s[%d-%d]", r.Header, start, end)
	}
	c.Valid = c.hasHeader && c.hasSequence && len(c.Sequence) > 0
	return c, true
}

// Compare orders longer sequences first, then by case-insensitive
// sequence text. It is suitable for slices.SortFunc.
func Compare(a, b Record) int {
	if la, lb := len(a.Sequence), len(b.Sequence); la != lb {
		if la > lb {
			return -1
		}
		return 1
	}
	return strings.Compare(strings.ToUpper(a.Sequence), strings.ToUpper(b.Sequence))
}

// Builder turns accumulated raw lines into a Record. It owns the alphabet
// for one parse configuration.
type Builder struct {
	typ      SequenceType
	alphabet *Alphabet
}

// NewBuilder fails with ErrUnknownSequenceType for an unrecognized type.
func NewBuilder(t SequenceType, keep string) (*Builder, error) {
	a, err := NewAlphabet(t, keep)
	if err != nil {
		return nil, err
	}
	return &Builder{typ: t, alphabet: a}, nil
}

// Build filters the raw sequence text and applies the validity predicate:
// header present, at least one sequence line, non-empty filtered text.
// comments is retained as given; callers hand over ownership.
func (b *Builder) Build(header string, hasHeader bool, comments []string, rawSequence string, hasSequence bool) Record {
	seq := b.alphabet.Filter(rawSequence)
	return Record{
		Type:        b.typ,
		Header:      NormalizeHeader(header),
		Comments:    comments,
		Sequence:    seq,
		Valid:       hasHeader && hasSequence && len(seq) > 0,
		hasHeader:   hasHeader,
		hasSequence: hasSequence,
	}
}

// Generate builds a record outside of a parse. The header and sequence are
// treated as present; validity then only depends on the filtered sequence.
func Generate(t SequenceType, header, sequence string, comments []string, keep string) (Record, error) {
	b, err := NewBuilder(t, keep)
	if err != nil {
		return Record{}, err
	}
	return b.Build(header, true, append([]string(nil), comments...), sequence, true), nil
}
