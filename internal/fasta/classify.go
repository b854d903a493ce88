package fasta

// LineKind is the classification of a single input line.
type LineKind uint8

const (
	// SequenceLine is anything that is neither a header nor a comment,
	// including blank lines.
	SequenceLine LineKind = iota
	HeaderLine
	CommentLine
)

const (
	HeaderSymbol    = '>'
	CommentSymbol   = '#'
	CommentSymbolSC = ';'
)

func (k LineKind) String() string {
	switch k {
	case HeaderLine:
		return "header"
	case CommentLine:
		return "comment"
	default:
		return "sequence"
	}
}

// Classify maps a line (terminator already stripped) to its kind using only
// the first byte. The header symbol wins over comment symbols.
func Classify(line string) LineKind {
	if len(line) == 0 {
		return SequenceLine
	}
	switch line[0] {
	case HeaderSymbol:
		return HeaderLine
	case CommentSymbol, CommentSymbolSC:
		return CommentLine
	}
	return SequenceLine
}

// IsComment reports whether s already carries a leading comment symbol.
func IsComment(s string) bool { return Classify(s) == CommentLine }
