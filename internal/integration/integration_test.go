// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fastakit/internal/app"
	"fastakit/internal/output"
	"fastakit/pkg/api"
)

const mixed = "#c1\n>h1\nACGTQ\n;c2\n>h2\nACGTQTR\n"

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// run isolates the user config directory so local config files never leak
// into the test.
func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errBuf bytes.Buffer
	code := app.Run(context.Background(), argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndFASTA(t *testing.T) {
	fa := write(t, "in.fa", mixed)

	code, out, errOut := run(t, "parse", fa)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errOut)
	}
	want := "#c1\n>h1\nACGTQ\n>h2\nACGTQTR\n"
	if out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
	if !strings.Contains(errOut, "invalid record") || !strings.Contains(errOut, "missing header and sequence") {
		t.Fatalf("expected a warning for the invalid record, got %q", errOut)
	}
}

func TestQuietSuppressesWarnings(t *testing.T) {
	fa := write(t, "in.fa", mixed)

	code, _, errOut := run(t, "parse", "--quiet", "--log-level", "warn", fa)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("expected no log output, got %q", errOut)
	}
}

func TestEndToEndJSON(t *testing.T) {
	fa := write(t, "in.fa", mixed)

	code, out, errOut := run(t, "parse", "--format", "json", fa)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errOut)
	}
	var res api.ResultV1
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(res.Valid) != 2 || len(res.Invalid) != 1 {
		t.Fatalf("expected 2 valid and 1 invalid, got %d/%d", len(res.Valid), len(res.Invalid))
	}
	if res.Invalid[0].Index != 2 || res.Invalid[0].StartLine != 4 || res.Valid[1].Index != 3 {
		t.Fatalf("unexpected indexes: %+v", res)
	}
	if res.Valid[0].Source != fa {
		t.Fatalf("source = %q, want %q", res.Valid[0].Source, fa)
	}
}

func TestInvalidFlagIncludesInvalidRecords(t *testing.T) {
	fa := write(t, "in.fa", mixed)

	code, out, _ := run(t, "parse", "--quiet", "--format", "jsonl", "--invalid", fa)
	if code != 0 {
		t.Fatalf("run exit %d", code)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 jsonl lines, got %d:\n%s", len(lines), out)
	}
	var r api.RecordV1
	if err := json.Unmarshal([]byte(lines[1]), &r); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if r.Valid || r.Reason == "" {
		t.Fatalf("second line should be the invalid record: %+v", r)
	}
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	fa := write(t, "in.fa", ">a\nAC-GU\n")
	cfg := write(t, "config.yaml", "sequence_type: dna\nkeep: \"-\"\nformat: tsv\n")

	code, out, errOut := run(t, "--config", cfg, "parse", fa)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errOut)
	}
	if !strings.HasPrefix(out, output.TSVHeader+"\n") {
		t.Fatalf("config format not applied:\n%s", out)
	}
	if !strings.Contains(out, "\t4\t") {
		t.Fatalf("expected length 4 (AC-G) in tsv row:\n%s", out)
	}

	code, out, _ = run(t, "--config", cfg, "parse", "--format", "fasta", fa)
	if code != 0 || out != ">a\nAC-G\n" {
		t.Fatalf("flag did not override config: code=%d out=%q", code, out)
	}
}

func TestWrapAndCRLF(t *testing.T) {
	fa := write(t, "in.fa", ">p\nMKVLAAGIW\n")

	code, out, _ := run(t, "parse", "--wrap", "4", "--crlf", fa)
	if code != 0 {
		t.Fatalf("run exit %d", code)
	}
	if want := ">p\r\nMKVL\r\nAAGI\r\nW\r\n"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestGzipInput(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(">z\nMKV\n"))
	_ = zw.Close()
	fa := write(t, "in.fa.gz", buf.String())

	code, out, errOut := run(t, "parse", fa)
	if code != 0 || out != ">z\nMKV\n" {
		t.Fatalf("gzip: code=%d out=%q err=%s", code, out, errOut)
	}
}

func TestGlobExpansionKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	_ = os.WriteFile(filepath.Join(dir, "a.fa"), []byte(">a\nMK\n"), 0644)
	_ = os.WriteFile(filepath.Join(dir, "b.fa"), []byte(">b\nVL\n"), 0644)

	code, out, _ := run(t, "parse", filepath.Join(dir, "*.fa"))
	if code != 0 || out != ">a\nMK\n>b\nVL\n" {
		t.Fatalf("glob: code=%d out=%q", code, out)
	}
}

func TestSplitCommand(t *testing.T) {
	fa := write(t, "in.fa", ">p\nMKVLAAGIW\n>q\nMK\n")

	code, out, errOut := run(t, "split", "--size", "4", fa)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errOut)
	}
	want := ">p[1-3]\nMKV\n>p[4-6]\nLAA\n>p[7-9]\nGIW\n>q\nMK\n"
	if out != want {
		t.Fatalf("split mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestExitCodes(t *testing.T) {
	comments := write(t, "c.fa", "#only\n;comments\n")
	ok := write(t, "ok.fa", ">a\nMK\n")
	cases := []struct {
		name string
		argv []string
		code int
	}{
		{"require-valid", []string{"parse", "--require-valid", comments}, 1},
		{"no require-valid", []string{"parse", comments}, 0},
		{"bad type", []string{"parse", "--type", "peptide", ok}, 2},
		{"bad format", []string{"parse", "--format", "xml", ok}, 2},
		{"unknown flag", []string{"parse", "--bogus", ok}, 2},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "parse", ok}, 2},
		{"missing file", []string{"parse", filepath.Join(t.TempDir(), "none.fa")}, 3},
		{"help", []string{"--help"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, _, errOut := run(t, c.argv...)
			if code != c.code {
				t.Fatalf("exit %d, want %d (stderr: %s)", code, c.code, errOut)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	if code != 0 || !strings.HasPrefix(out, "fastakit version ") {
		t.Fatalf("version: code=%d out=%q", code, out)
	}
}

func TestCanceledContextExit130(t *testing.T) {
	fa := write(t, "big.fa", strings.Repeat(">s\nMKV\n", 1000))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := app.Run(ctx, []string{"parse", fa}, &out, &errBuf)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d (stderr: %s)", code, errBuf.String())
	}
}
