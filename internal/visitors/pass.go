package visitors

import "fastakit/internal/output"

// PassThrough returns the entry unchanged.
type PassThrough struct{}

func (PassThrough) Visit(e output.Entry) (keep bool, out []output.Entry, err error) {
	return true, []output.Entry{e}, nil
}
