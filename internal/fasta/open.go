package fasta

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is stdin; gzip input is detected by
// its magic number or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// StreamPathCtx opens path and streams its records to emit in input order.
// Cancellation via ctx is honored between lines.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error, opts ...Option) error {
	// Configuration errors come before the file is touched.
	if err := checkOptions(opts); err != nil {
		return err
	}
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit, opts...)
}

// StreamPath is the channel wrapper around StreamPathCtx. Open and
// configuration errors are reported immediately; the returned error
// channel receives the scan result (nil on success) once the record
// channel is closed.
func StreamPath(ctx context.Context, path string, opts ...Option) (<-chan Record, <-chan error, error) {
	if err := checkOptions(opts); err != nil {
		return nil, nil, err
	}
	rc, err := Open(path)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan Record, 8)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(out)
		defer rc.Close()
		errc <- StreamCtx(ctx, rc, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}, opts...)
	}()
	return out, errc, nil
}
