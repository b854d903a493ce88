package visitors

import (
	"fastakit/internal/output"
	"fastakit/internal/protein"
)

// Split cuts each valid record into near-equal protein parts of about Size
// residues. Invalid records are dropped.
type Split struct {
	Size int
}

func (v Split) Visit(e output.Entry) (bool, []output.Entry, error) {
	if !e.Record.Valid {
		return false, nil, nil
	}
	parts := protein.FromRecord(e.Record).Split(v.Size)
	out := make([]output.Entry, 0, len(parts))
	for _, p := range parts {
		out = append(out, output.Entry{Source: e.Source, Index: e.Index, Record: p.ToRecord()})
	}
	return true, out, nil
}
