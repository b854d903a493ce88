package output

import (
	"io"

	"fastakit/internal/fasta"
	"fastakit/internal/jsonutil"
	"fastakit/pkg/api"
)

// ToAPIRecord converts an entry to the stable wire schema (v1).
func ToAPIRecord(e Entry) api.RecordV1 {
	r := e.Record
	return api.RecordV1{
		Source:    e.Source,
		Index:     e.Index,
		Valid:     r.Valid,
		Reason:    r.Reason(),
		StartLine: r.StartLine,
		Type:      r.Type.String(),
		Header:    r.Header,
		ID:        r.ID(),
		Comments:  append([]string(nil), r.Comments...),
		Sequence:  r.Sequence,
		Length:    r.Len(),
		CRC64:     r.Checksum(),
	}
}

// ToAPIResult splits entries into the valid and invalid lists of a
// ResultV1, keeping their order.
func ToAPIResult(list []Entry) api.ResultV1 {
	res := api.ResultV1{Valid: []api.RecordV1{}, Invalid: []api.RecordV1{}}
	for _, e := range list {
		v := ToAPIRecord(e)
		if v.Valid {
			res.Valid = append(res.Valid, v)
		} else {
			res.Invalid = append(res.Invalid, v)
		}
	}
	return res
}

// EntriesFromResult numbers the records of a parse result in input order.
// Valid and invalid lists are merged back by StartLine.
func EntriesFromResult(source string, res fasta.Result) []Entry {
	out := make([]Entry, 0, res.Total())
	v, iv := res.Valid, res.Invalid
	for len(v) > 0 || len(iv) > 0 {
		var r fasta.Record
		if len(iv) == 0 || (len(v) > 0 && v[0].StartLine <= iv[0].StartLine) {
			r, v = v[0], v[1:]
		} else {
			r, iv = iv[0], iv[1:]
		}
		out = append(out, Entry{Source: source, Index: len(out) + 1, Record: r})
	}
	return out
}

// WriteJSON writes a single pretty-indented ResultV1.
func WriteJSON(w io.Writer, list []Entry) error {
	return jsonutil.EncodePretty(w, ToAPIResult(list))
}
