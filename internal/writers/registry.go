package writers

import (
	"fmt"
	"io"
	"sort"

	"fastakit/internal/output"
)

// Options are shared by all record writers; each format uses what applies.
type Options struct {
	FASTA  output.FASTAFormat
	Header bool // TSV header row
}

// Factory starts a writer goroutine. The returned error channel receives
// exactly one value once the input channel is closed and drained.
type Factory func(out io.Writer, o Options, bufSize int) (chan<- output.Entry, <-chan error)

// Writer registry (format → factory), filled from init() blocks of the
// format files.
var recordWriters = map[string]Factory{}

// Register adds or replaces (last wins) the factory for format.
func Register(format string, f Factory) { recordWriters[format] = f }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(recordWriters))
	for k := range recordWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the registered factory. An unknown format still
// returns a usable channel pair: the input is drained and the error
// channel reports the problem.
func Start(out io.Writer, format string, o Options, bufSize int) (chan<- output.Entry, <-chan error) {
	if f, ok := recordWriters[format]; ok {
		return f(out, o, bufSize)
	}
	return run(bufSize, func(in <-chan output.Entry) error {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	})
}

// run owns the channel plumbing common to every writer.
func run(bufSize int, body func(<-chan output.Entry) error) (chan<- output.Entry, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Entry, bufSize)
	done := make(chan error, 1)
	go func() {
		err := body(in)
		for range in {
		}
		done <- err
	}()
	return in, done
}
