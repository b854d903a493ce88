package fasta

import "strings"

// accumulator is the working state for the record being built. It is owned
// by exactly one machine; reset hands the comment slice over to the emitted
// record and starts a fresh one.
type accumulator struct {
	header      string
	hasHeader   bool
	comments    []string
	fragments   strings.Builder
	hasSequence bool

	// detached marks a record opened by a comment that followed sequence
	// lines. Unless comments carry over, a header closes it.
	detached bool

	startLine int
	touched   bool
}

func (a *accumulator) touch(lineNo int) {
	if !a.touched {
		a.touched = true
		a.startLine = lineNo
	}
}

func (a *accumulator) reset() {
	a.header = ""
	a.hasHeader = false
	a.comments = nil
	a.fragments.Reset()
	a.hasSequence = false
	a.detached = false
	a.startLine = 0
	a.touched = false
}

// machine is the record boundary state machine. It is Idle while the
// accumulator is untouched and Accumulating otherwise.
type machine struct {
	b     *Builder
	carry bool
	acc   accumulator
}

func newMachine(b *Builder, carryComments bool) *machine {
	return &machine{b: b, carry: carryComments}
}

// feed processes one line. When the line closes the current record, the
// finalized record is returned with emitted == true and the line opens the
// next accumulator.
func (m *machine) feed(lineNo int, line string) (rec Record, emitted bool) {
	switch Classify(line) {
	case HeaderLine:
		if m.acc.hasHeader || (m.acc.detached && !m.carry) {
			rec, emitted = m.finalize(), true
		}
		m.acc.touch(lineNo)
		m.acc.header = line
		m.acc.hasHeader = true
	case CommentLine:
		if m.acc.hasSequence {
			rec, emitted = m.finalize(), true
			m.acc.detached = true
		}
		m.acc.touch(lineNo)
		m.acc.comments = append(m.acc.comments, line)
	default:
		m.acc.touch(lineNo)
		m.acc.fragments.WriteString(line)
		m.acc.hasSequence = true
	}
	return rec, emitted
}

// finish flushes the last record at end of input. Nothing is emitted when
// no line was ever fed.
func (m *machine) finish() (Record, bool) {
	if !m.acc.touched {
		return Record{}, false
	}
	return m.finalize(), true
}

func (m *machine) finalize() Record {
	a := &m.acc
	rec := m.b.Build(a.header, a.hasHeader, a.comments, a.fragments.String(), a.hasSequence)
	rec.StartLine = a.startLine
	a.reset()
	return rec
}
