// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"fastakit/internal/fasta"
	"fastakit/internal/logging"
	"fastakit/internal/output"
	"fastakit/internal/writers"
)

type Options struct {
	Files []string
	Parse fasta.Options

	Quiet        bool
	RequireValid bool
}

// VisitorFunc maps one parsed entry to the entries that get written.
type VisitorFunc func(output.Entry) (keep bool, out []output.Entry, err error)

type WriterFactory interface {
	// NeedInvalid reports whether invalid records reach the writer.
	NeedInvalid() bool
	Start(out io.Writer, bufSize int) (chan<- output.Entry, <-chan error)
}

// Run parses every input in order, sends visited entries to the writer and
// maps the outcome to a process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc,
	wf WriterFactory,
) int {
	logger := log.FromContext(parent)
	outw := bufio.NewWriter(stdout)

	inCh, writeErr := wf.Start(outw, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	send := func(e output.Entry) error {
		select {
		case inCh <- e:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	valid := 0
	var perr error
	for _, path := range o.Files {
		source := path
		if source == "-" {
			source = "stdin"
		}
		s, err := streamOne(ctx, logger, path, source, o, wf.NeedInvalid(), visit, send)
		valid += s.valid
		if err != nil {
			perr = err
			break
		}
		logger.Info("parsed input", "source", source, "valid", s.valid, "invalid", s.invalid)
	}

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if o.RequireValid && valid == 0 {
		logger.Error("no valid records", "inputs", len(o.Files))
		return 1
	}
	return 0
}

type stats struct{ valid, invalid int }

func streamOne(
	ctx context.Context,
	logger *log.Logger,
	path, source string,
	o Options,
	needInvalid bool,
	visit VisitorFunc,
	send func(output.Entry) error,
) (stats, error) {
	var s stats
	index := 0
	err := fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
		index++
		if r.Valid {
			s.valid++
		} else {
			s.invalid++
			logging.Warnf(logger, o.Quiet, "%s:%d: invalid record %q: %s", source, r.StartLine, r.Header, r.Reason())
			if !needInvalid {
				return nil
			}
		}
		keep, out, err := visit(output.Entry{Source: source, Index: index, Record: r})
		if err != nil {
			return err
		}
		if !keep {
			return nil
		}
		for _, e := range out {
			if err := send(e); err != nil {
				return err
			}
		}
		return nil
	}, fasta.WithOptions(o.Parse))
	if err != nil && !errors.Is(err, context.Canceled) {
		err = fmt.Errorf("%s: %w", source, err)
	}
	return s, err
}
