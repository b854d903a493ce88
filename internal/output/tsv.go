package output

import (
	"fmt"
	"io"
	"strings"
)

// WriteTSVRow writes one summary row for e.
func WriteTSVRow(w io.Writer, e Entry) error {
	r := e.Record
	_, err := fmt.Fprintf(w, "%s\t%d\t%t\t%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
		e.Source, e.Index, r.Valid, r.StartLine,
		tsvField(r.ID()), tsvField(r.Header),
		r.Len(), len(r.Comments), r.Checksum(), r.Reason(),
	)
	return err
}

// WriteTSV writes entries as a tab-delimited table.
func WriteTSV(w io.Writer, list []Entry, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, e := range list {
		if err := WriteTSVRow(w, e); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV is WriteTSV over a channel.
func StreamTSV(w io.Writer, in <-chan Entry, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for e := range in {
		if err := WriteTSVRow(w, e); err != nil {
			return err
		}
	}
	return nil
}

var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func tsvField(s string) string { return tsvEscaper.Replace(s) }
