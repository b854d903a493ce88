package fasta

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SequenceType selects the base alphabet retained in sequence text.
type SequenceType int

const (
	Protein SequenceType = iota
	Dna
	Rna
	Other
)

// ErrUnknownSequenceType is returned before any input is read when a parse
// is configured with a SequenceType outside the enumerated set.
var ErrUnknownSequenceType = errors.New("fasta: unknown sequence type")

// Base alphabets per type. Rna shares the Dna letters, without U.
var baseAlphabets = map[SequenceType]string{
	Protein: "ACDEFGHIKLMNPQRSTVWXYacdefghiklmnpqrstvwxy",
	Dna:     "ACGTacgt",
	Rna:     "ACGTacgt",
	Other:   "",
}

var typeNames = map[SequenceType]string{
	Protein: "protein",
	Dna:     "dna",
	Rna:     "rna",
	Other:   "other",
}

func (t SequenceType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("SequenceType(%d)", int(t))
}

// Valid reports whether t is one of the enumerated types.
func (t SequenceType) Valid() bool {
	_, ok := baseAlphabets[t]
	return ok
}

// ParseSequenceType maps a case-insensitive name ("protein", "dna", "rna",
// "other") to its SequenceType.
func ParseSequenceType(s string) (SequenceType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSequenceType, s)
}

// MarshalText / UnmarshalText let the type appear directly in config files.
func (t SequenceType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSequenceType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *SequenceType) UnmarshalText(b []byte) error {
	v, err := ParseSequenceType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Alphabet is the immutable set of characters kept by Filter. It is built
// once per parse and is safe for concurrent use.
type Alphabet struct {
	ascii [utf8.RuneSelf]bool
	wide  map[rune]struct{}
	empty bool
}

// NewAlphabet builds the union of t's base alphabet and the extra
// characters in keep. An empty union (only possible for Other without
// extras) keeps every character.
func NewAlphabet(t SequenceType, keep string) (*Alphabet, error) {
	base, ok := baseAlphabets[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSequenceType, int(t))
	}
	a := &Alphabet{}
	for _, r := range base + keep {
		if r < utf8.RuneSelf {
			a.ascii[r] = true
			continue
		}
		if a.wide == nil {
			a.wide = make(map[rune]struct{})
		}
		a.wide[r] = struct{}{}
	}
	a.empty = base == "" && keep == ""
	return a, nil
}

// Contains reports whether r survives filtering.
func (a *Alphabet) Contains(r rune) bool {
	if a.empty {
		return true
	}
	if r >= 0 && r < utf8.RuneSelf {
		return a.ascii[r]
	}
	_, ok := a.wide[r]
	return ok
}

// Filter returns s with every character outside the alphabet removed,
// preserving order and multiplicity.
func (a *Alphabet) Filter(s string) string {
	if a.empty {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if a.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
