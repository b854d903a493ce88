package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fastakit/internal/fasta"
	"fastakit/pkg/api"
)

func parsed(t *testing.T, text string) []Entry {
	t.Helper()
	res, err := fasta.ParseString(text, fasta.WithType(fasta.Protein))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return EntriesFromResult("in.fa", res)
}

func TestEntriesFromResultKeepsInputOrder(t *testing.T) {
	list := parsed(t, "#c1\n>h1\nACGTQ\n;c2\n>h2\nACGTQTR\n>h3\n")
	var headers []string
	for i, e := range list {
		if e.Index != i+1 || e.Source != "in.fa" {
			t.Fatalf("entry %d: %+v", i, e)
		}
		headers = append(headers, e.Record.Header)
	}
	if strings.Join(headers, ",") != "h1,,h2,h3" {
		t.Fatalf("order %q", headers)
	}
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteJSON(buf, parsed(t, ">h1 d\nMKV\n;x\n")); err != nil {
		t.Fatalf("json: %v", err)
	}
	var res api.ResultV1
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(res.Valid) != 1 || len(res.Invalid) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	v := res.Valid[0]
	if v.Header != "h1 d" || v.ID != "h1" || v.Sequence != "MKV" || v.Length != 3 || v.Type != "protein" || len(v.CRC64) != 16 {
		t.Fatalf("unexpected valid record %+v", v)
	}
	if res.Invalid[0].Reason != "missing header and sequence" || res.Invalid[0].Comments[0] != ";x" {
		t.Fatalf("unexpected invalid record %+v", res.Invalid[0])
	}
}

func TestWriteJSONEmptyListsAreArrays(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteJSON(buf, nil); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"valid": []`) || !strings.Contains(buf.String(), `"invalid": []`) {
		t.Fatalf("expected empty arrays, got %s", buf.String())
	}
}

func TestWriteTSV(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteTSV(buf, parsed(t, ">h1\tx\nMKV\n"), true); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || lines[0] != TSVHeader {
		t.Fatalf("unexpected TSV: %q", buf.String())
	}
	cols := strings.Split(lines[1], "\t")
	if len(cols) != 10 || cols[2] != "true" || cols[5] != "h1 x" || cols[6] != "3" {
		t.Fatalf("unexpected row %q", cols)
	}
}
