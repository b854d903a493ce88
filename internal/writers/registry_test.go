package writers

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"syscall"
	"testing"

	"fastakit/internal/fasta"
	"fastakit/internal/output"
)

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := Start(&b, "nope-format", Options{}, 1)
	in <- output.Entry{} // must not block
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown record format") {
		t.Fatalf("want 'unknown record format' error, got: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	want := []string{"fasta", "json", "jsonl", "tsv"}
	if got := Formats(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("pipe errors not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("other")) {
		t.Fatalf("false positive")
	}
}

func entries(t *testing.T, text string) []output.Entry {
	t.Helper()
	res, err := fasta.ParseString(text, fasta.WithType(fasta.Dna))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return output.EntriesFromResult("s.fa", res)
}
