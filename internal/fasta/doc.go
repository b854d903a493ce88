// Package fasta parses FASTA text into records, separating well-formed
// records from malformed ones without aborting the parse.
//
// A record is zero or more comment lines (';' or '#'), one header line ('>')
// and one or more sequence lines. Every input line is classified by its
// first character and fed through a single boundary state machine; the same
// machine drives all entry shapes:
//
//   - ParseString: whole text, eager, returns valid and invalid lists.
//   - NewScanner: io.Reader, lazy, one record per Scan.
//   - ParseReader / StreamCtx / StreamPath: eager, callback and channel
//     wrappers around the scanner.
//
// Malformed input is never an error: a record without a header, without
// sequence lines, or whose sequence filters down to nothing is returned
// with Valid == false. The only configuration error is an unknown
// SequenceType (ErrUnknownSequenceType).
package fasta
