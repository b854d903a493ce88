// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for one parsed FASTA record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Source    string   `json:"source,omitempty"`
	Index     int      `json:"index"`
	Valid     bool     `json:"valid"`
	Reason    string   `json:"reason,omitempty"`
	StartLine int      `json:"start_line,omitempty"`
	Type      string   `json:"type"` // "protein" | "dna" | "rna" | "other"
	Header    string   `json:"header"`
	ID        string   `json:"id,omitempty"`
	Comments  []string `json:"comments,omitempty"`
	Sequence  string   `json:"sequence"`
	Length    int      `json:"length"`
	CRC64     string   `json:"crc64"`
}

// ResultV1 is the schema for a whole parse: valid and invalid records,
// each in input order.
type ResultV1 struct {
	RequestID string     `json:"request_id,omitempty"`
	Valid     []RecordV1 `json:"valid"`
	Invalid   []RecordV1 `json:"invalid"`
}

// ErrorV1 is the error body returned by the HTTP service.
type ErrorV1 struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}
