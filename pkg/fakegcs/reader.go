package fakegcs

import (
	"bytes"
	"io"
)

// Reader is a seekable view of a blob's content. Every method fails with
// ErrClosed once the reader is closed.
type Reader struct {
	r      *bytes.Reader
	attrs  Attrs
	closed bool
}

var (
	_ io.ReadSeekCloser = (*Reader)(nil)
	_ io.ReaderAt       = (*Reader)(nil)
	_ io.WriterTo       = (*Reader)(nil)
)

func newReader(content []byte, attrs Attrs) *Reader {
	return &Reader{r: bytes.NewReader(content), attrs: attrs}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}

	return r.r.Read(p)
}

func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}

	return r.r.ReadAt(p, off)
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.closed {
		return 0, ErrClosed
	}

	return r.r.Seek(offset, whence)
}

func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if r.closed {
		return 0, ErrClosed
	}

	return r.r.WriteTo(w)
}

func (r *Reader) Attrs() Attrs {
	return r.attrs
}

func (r *Reader) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true

	return nil
}
