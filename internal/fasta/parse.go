package fasta

import (
	"context"
	"errors"
	"io"
	"iter"
	"strings"
)

// ErrNoValidRecords is returned by the ValidRecords helpers when the input
// produced no valid record. It is a caller policy, not a parse failure.
var ErrNoValidRecords = errors.New("fasta: no valid records")

const utf8BOM = "\ufeff"

// Options configure one parse call.
type Options struct {
	Type SequenceType
	// Keep lists extra characters retained in sequence text.
	Keep string
	// CarryComments attaches comments that follow a sequence block to the
	// next header instead of emitting them as their own invalid record.
	CarryComments bool
}

type Option func(*Options)

func WithType(t SequenceType) Option { return func(o *Options) { o.Type = t } }

func WithKeep(chars string) Option { return func(o *Options) { o.Keep = chars } }

func WithCommentCarryOver(on bool) Option { return func(o *Options) { o.CarryComments = on } }

// WithOptions replaces the whole option set.
func WithOptions(v Options) Option { return func(o *Options) { *o = v } }

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func checkOptions(opts []Option) error {
	o := buildOptions(opts)
	_, err := NewAlphabet(o.Type, o.Keep)
	return err
}

// Result holds the outcome of an eager parse. Both lists keep input order.
type Result struct {
	Valid   []Record
	Invalid []Record
}

// Total is the number of finalized records.
func (r Result) Total() int { return len(r.Valid) + len(r.Invalid) }

func (r *Result) add(rec Record) {
	if rec.Valid {
		r.Valid = append(r.Valid, rec)
	} else {
		r.Invalid = append(r.Invalid, rec)
	}
}

// parser drives the machine from a LineSource. All entry shapes go
// through next.
type parser struct {
	la      lookahead
	m       *machine
	lineNo  int
	pending []Record
	done    bool
}

func newParser(src LineSource, opts []Option) (*parser, error) {
	o := buildOptions(opts)
	b, err := NewBuilder(o.Type, o.Keep)
	if err != nil {
		return nil, err
	}
	return &parser{la: lookahead{src: src}, m: newMachine(b, o.CarryComments)}, nil
}

// next returns the next finalized record, or ok == false at end of input.
func (p *parser) next() (rec Record, ok bool, err error) {
	for {
		if len(p.pending) > 0 {
			rec, p.pending = p.pending[0], p.pending[1:]
			return rec, true, nil
		}
		if p.done {
			return Record{}, false, nil
		}
		line, last, err := p.la.read()
		if err != nil {
			p.done = true
			if err == io.EOF {
				return Record{}, false, nil
			}
			return Record{}, false, err
		}
		p.lineNo++
		if p.lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if r, emitted := p.m.feed(p.lineNo, line); emitted {
			p.pending = append(p.pending, r)
		}
		if last {
			if r, emitted := p.m.finish(); emitted {
				p.pending = append(p.pending, r)
			}
			p.done = true
		}
	}
}

// ParseLines eagerly parses every line src supplies.
func ParseLines(src LineSource, opts ...Option) (Result, error) {
	var res Result
	p, err := newParser(src, opts)
	if err != nil {
		return res, err
	}
	for {
		rec, ok, err := p.next()
		if err != nil {
			return res, err
		}
		if !ok {
			return res, nil
		}
		res.add(rec)
	}
}

// ParseString splits text on normalized newlines and parses it eagerly.
func ParseString(text string, opts ...Option) (Result, error) {
	return ParseLines(StringLines(text), opts...)
}

// ParseReader drains r eagerly; it yields exactly what a Scanner over r
// would, split into valid and invalid lists.
func ParseReader(r io.Reader, opts ...Option) (Result, error) {
	return ParseLines(ReaderLines(r), opts...)
}

// StreamCtx parses r and calls emit for each record in input order.
// Cancellation via ctx is checked before every line; returning an error
// from emit stops the parse and returns that error.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error, opts ...Option) error {
	p, err := newParser(WithContext(ctx, ReaderLines(r)), opts)
	if err != nil {
		return err
	}
	for {
		rec, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// ValidRecords parses text and returns only the valid records, or
// ErrNoValidRecords when there are none.
func ValidRecords(text string, opts ...Option) ([]Record, error) {
	res, err := ParseString(text, opts...)
	if err != nil {
		return nil, err
	}
	if len(res.Valid) == 0 {
		return nil, ErrNoValidRecords
	}
	return res.Valid, nil
}

// ValidRecordsReader is ValidRecords over a stream.
func ValidRecordsReader(r io.Reader, opts ...Option) ([]Record, error) {
	res, err := ParseReader(r, opts...)
	if err != nil {
		return nil, err
	}
	if len(res.Valid) == 0 {
		return nil, ErrNoValidRecords
	}
	return res.Valid, nil
}

// ParseSingle treats text as exactly one entry: the first line is the
// header and every following line is sequence. Comment symbols get no
// special treatment.
func ParseSingle(text string, t SequenceType) (Record, error) {
	b, err := NewBuilder(t, "")
	if err != nil {
		return Record{}, err
	}
	lines := strings.Split(text, "\n")
	seq := strings.Join(lines[1:], "")
	return b.Build(lines[0], true, nil, seq, len(lines) > 1), nil
}

// Scanner reads records lazily from a stream. Each Scan reads lines only
// until the next record boundary; a caller may stop at any point without
// draining the input.
type Scanner struct {
	p   *parser
	rec Record
	err error
}

// NewScanner fails only on configuration errors; nothing is read from r
// until the first Scan.
func NewScanner(r io.Reader, opts ...Option) (*Scanner, error) {
	return NewLineScanner(ReaderLines(r), opts...)
}

// NewLineScanner is NewScanner over an arbitrary LineSource.
func NewLineScanner(src LineSource, opts ...Option) (*Scanner, error) {
	p, err := newParser(src, opts)
	if err != nil {
		return nil, err
	}
	return &Scanner{p: p}, nil
}

// Scan advances to the next record. It returns false at end of input or on
// a read error, which Err then reports.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	rec, ok, err := s.p.next()
	if err != nil {
		s.err = err
		return false
	}
	s.rec = rec
	return ok
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error { return s.err }

// All yields (valid, record) pairs until the input ends or the caller
// breaks. Check Err afterwards.
func (s *Scanner) All() iter.Seq2[bool, Record] {
	return func(yield func(bool, Record) bool) {
		for s.Scan() {
			if !yield(s.rec.Valid, s.rec) {
				return
			}
		}
	}
}
