package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"fastakit/internal/output"
	"fastakit/pkg/api"
)

func feed(t *testing.T, format string, o Options, list []output.Entry) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := Start(&buf, format, o, 2)
	for _, e := range list {
		in <- e
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s writer err: %v", format, err)
	}
	return buf.String()
}

func TestFASTAWriter(t *testing.T) {
	got := feed(t, "fasta", Options{FASTA: output.FASTAFormat{Wrap: 2}}, entries(t, ">a\nACGT\n>b\nGG\n"))
	if got != ">a\nAC\nGT\n>b\nGG\n" {
		t.Fatalf("unexpected FASTA %q", got)
	}
}

func TestTSVWriter(t *testing.T) {
	got := feed(t, "tsv", Options{Header: true}, entries(t, ">a\nACGT\n#x\n"))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("unexpected TSV %q", got)
	}
	if !strings.HasPrefix(lines[2], "s.fa\t2\tfalse\t3\t") {
		t.Fatalf("unexpected invalid row %q", lines[2])
	}
}

func TestJSONWriter(t *testing.T) {
	got := feed(t, "json", Options{}, entries(t, ">a\nACGT\n>b\n"))
	var res api.ResultV1
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Valid) != 1 || len(res.Invalid) != 1 || res.Invalid[0].Reason != "missing sequence" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestJSONLWriter(t *testing.T) {
	got := feed(t, "jsonl", Options{}, entries(t, ">a <x>\nACGT\n>b\nTT\n"))
	if !strings.Contains(got, `"a <x>"`) {
		t.Fatalf("expected unescaped header in JSONL: %s", got)
	}
	sc := bufio.NewScanner(strings.NewReader(got))
	var headers []string
	for sc.Scan() {
		var r api.RecordV1
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		headers = append(headers, r.Header)
	}
	if strings.Join(headers, "|") != "a <x>|b" {
		t.Fatalf("headers %q", headers)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterErrorDrainsInput(t *testing.T) {
	in, done := Start(failWriter{}, "fasta", Options{}, 1)
	for _, e := range entries(t, ">a\nAC\n>b\nAC\n>c\nAC\n>d\nAC\n") {
		in <- e
	}
	close(in)
	if err := <-done; err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected disk full, got %v", err)
	}
}
