package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// LineSource supplies input lines with their terminators stripped. Next
// returns io.EOF once the input is exhausted.
type LineSource interface {
	Next() (string, error)
}

// MaxLineSize bounds a single physical line read from a stream (64 MiB),
// enough for unwrapped chromosome-scale sequence lines.
const MaxLineSize = 64 * 1024 * 1024

// NormalizeNewlines rewrites "\r\n" and bare "\r" to "\n".
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// SplitLines materializes text into lines. A final terminator does not
// produce a trailing empty line, matching what a stream reader yields, and
// empty text yields no lines at all.
func SplitLines(text string) []string {
	text = NormalizeNewlines(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type sliceSource struct {
	lines []string
	i     int
}

// StringLines returns a LineSource over pre-split text.
func StringLines(text string) LineSource {
	return &sliceSource{lines: SplitLines(text)}
}

func (s *sliceSource) Next() (string, error) {
	if s.i >= len(s.lines) {
		return "", io.EOF
	}
	l := s.lines[s.i]
	s.i++
	return l, nil
}

type readerSource struct {
	sc *bufio.Scanner
}

// ReaderLines returns a LineSource reading r one line at a time. "\n",
// "\r\n" and bare "\r" all terminate a line.
func ReaderLines(r io.Reader) LineSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), MaxLineSize)
	sc.Split(scanLines)
	return &readerSource{sc: sc}
}

func (s *readerSource) Next() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", fmt.Errorf("fasta scan: %w", err)
	}
	return "", io.EOF
}

// scanLines is bufio.ScanLines extended to treat a lone '\r' as a
// terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// '\r' at the end of the buffer: need one more byte.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

type ctxSource struct {
	ctx context.Context
	src LineSource
}

// WithContext makes src fail with ctx.Err() once ctx is done, checked
// before every line.
func WithContext(ctx context.Context, src LineSource) LineSource {
	return &ctxSource{ctx: ctx, src: src}
}

func (s *ctxSource) Next() (string, error) {
	if err := s.ctx.Err(); err != nil {
		return "", err
	}
	return s.src.Next()
}

// lookahead reads one line ahead of the caller so the last line can be
// recognized as such without a sentinel.
type lookahead struct {
	src    LineSource
	next   string
	err    error
	primed bool
}

// read returns the next line and whether it is the last one. It returns
// io.EOF only when the input had no lines left to begin with.
func (l *lookahead) read() (line string, last bool, err error) {
	if !l.primed {
		l.next, l.err = l.src.Next()
		l.primed = true
	}
	if l.err != nil {
		return "", false, l.err
	}
	line = l.next
	l.next, l.err = l.src.Next()
	return line, l.err == io.EOF, nil
}
