package fakegcs

import (
	"context"
	"io"
	"sync"
)

// Writer replaces a blob's content. Written bytes are visible to readers
// as soon as Write returns; Close finalizes the blob.
//
// A Writer holds the blob's name lock from its first Write until Close, so
// a second writer on the same name blocks until the first one closes.
type Writer struct {
	// ContentType is stored on Close. Empty means detect from the content.
	ContentType string

	ctx    context.Context
	handle *Blob

	mu     sync.Mutex
	blob   *Blob
	closed bool
}

var _ io.WriteCloser = (*Writer)(nil)

func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, ErrClosed
	}
	if w.handle.name == "" {
		return 0, ErrInvalidBlobName
	}
	w.openLocked()
	w.blob.appendContent(p)

	return len(p), nil
}

func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return ErrClosed
	}
	w.closed = true
	if w.handle.name == "" {
		w.mu.Unlock()

		return ErrInvalidBlobName
	}
	w.openLocked()

	bucket := w.blob.bucket
	attrs := w.blob.finalize(w.ContentType)
	bucket.locks.Unlock(w.blob.name)
	w.mu.Unlock()

	bucket.client.notify(w.ctx, attrs)

	return nil
}

// Attrs returns the attributes of the blob being written.
func (w *Writer) Attrs() Attrs {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.blob == nil {
		return w.handle.Attrs()
	}

	return w.blob.Attrs()
}

func (w *Writer) openLocked() {
	if w.blob != nil {
		return
	}

	bucket := w.handle.bucket
	bucket.locks.Lock(w.handle.name)
	w.blob = bucket.register(w.handle)
	w.blob.replace(nil)
}
