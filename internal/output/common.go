package output

import "fastakit/internal/fasta"

// Output format names accepted on the command line and in config files.
const (
	FormatFASTA = "fasta"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source\tindex\tvalid\tstart_line\tid\theader\tlength\tcomments\tcrc64\treason"

// Entry is a record tagged with where it came from. Index is the 1-based
// position of the record within its source, counting valid and invalid
// records alike.
type Entry struct {
	Source string
	Index  int
	Record fasta.Record
}
