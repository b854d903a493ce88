// Package writers turns parsed records into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (FASTA/TSV/JSON/JSONL).
//   • The fasta package stays parse-only; the app only routes entries.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • Every writer drains its input even after an error so senders never block.
package writers
