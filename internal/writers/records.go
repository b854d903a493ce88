package writers

import (
	"encoding/json"
	"io"

	"fastakit/internal/jsonlutil"
	"fastakit/internal/output"
)

func init() {
	Register(output.FormatFASTA, StartFASTAWriter)
	Register(output.FormatTSV, StartTSVWriter)
	Register(output.FormatJSON, StartJSONWriter)
	Register(output.FormatJSONL, StartJSONLWriter)
}

// StartFASTAWriter streams each record as FASTA text.
func StartFASTAWriter(out io.Writer, o Options, bufSize int) (chan<- output.Entry, <-chan error) {
	return run(bufSize, func(in <-chan output.Entry) error {
		return output.StreamFASTA(out, in, o.FASTA)
	})
}

// StartTSVWriter streams one summary row per record.
func StartTSVWriter(out io.Writer, o Options, bufSize int) (chan<- output.Entry, <-chan error) {
	return run(bufSize, func(in <-chan output.Entry) error {
		return output.StreamTSV(out, in, o.Header)
	})
}

// StartJSONWriter buffers every record and writes one ResultV1 document
// when the input closes.
func StartJSONWriter(out io.Writer, _ Options, bufSize int) (chan<- output.Entry, <-chan error) {
	return run(bufSize, func(in <-chan output.Entry) error {
		var buf []output.Entry
		for e := range in {
			buf = append(buf, e)
		}
		return output.WriteJSON(out, buf)
	})
}

// StartJSONLWriter streams each record as one JSON line (v1).
func StartJSONLWriter(out io.Writer, _ Options, bufSize int) (chan<- output.Entry, <-chan error) {
	return jsonlutil.Start[output.Entry](out, bufSize,
		func(enc *json.Encoder, e output.Entry) error {
			return enc.Encode(output.ToAPIRecord(e))
		},
		IsBrokenPipe,
	)
}
