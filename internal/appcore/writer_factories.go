package appcore

import (
	"io"

	"fastakit/internal/output"
	"fastakit/internal/writers"
)

// ---------------- Record writer ----------------

type RecordWriterFactory struct {
	Format         string
	FASTA          output.FASTAFormat
	Header         bool
	IncludeInvalid bool
}

func NewRecordWriterFactory(format string, fasta output.FASTAFormat, header, includeInvalid bool) RecordWriterFactory {
	return RecordWriterFactory{
		Format:         format,
		FASTA:          fasta,
		Header:         header,
		IncludeInvalid: includeInvalid,
	}
}

// NeedInvalid is always true for JSON, whose document has an invalid list.
func (w RecordWriterFactory) NeedInvalid() bool {
	return w.IncludeInvalid || w.Format == output.FormatJSON
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Entry, <-chan error) {
	return writers.Start(out, w.Format, writers.Options{FASTA: w.FASTA, Header: w.Header}, bufSize)
}
