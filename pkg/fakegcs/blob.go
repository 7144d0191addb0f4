package fakegcs

import (
	"bytes"
	"context"
	"crypto/md5" //nolint
	"hash/crc32"
	"io"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Attrs describes a stored blob.
type Attrs struct {
	Bucket         string
	Name           string
	ContentType    string
	Size           int64
	MD5            []byte
	CRC32C         uint32
	ETag           string
	Generation     int64
	Metageneration int64
	Created        time.Time
	Updated        time.Time
}

type Blob struct {
	bucket *Bucket
	name   string

	mu          sync.RWMutex
	content     []byte
	contentType string
	etag        string
	generation  int64
	created     time.Time
	updated     time.Time
}

func (b *Blob) Name() string {
	return b.name
}

func (b *Blob) BucketName() string {
	return b.bucket.name
}

// Exists reports whether the blob is stored in its bucket.
func (b *Blob) Exists() bool {
	_, ok := b.bucket.lookup(b.name)

	return ok
}

// Content returns a copy of the blob's bytes.
func (b *Blob) Content() []byte {
	s := b.stored()
	s.mu.RLock()
	defer s.mu.RUnlock()

	return bytes.Clone(s.content)
}

func (b *Blob) Attrs() Attrs {
	s := b.stored()
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.attrsLocked()
}

// NewReader opens the blob for reading. The reader sees the content as it
// was when NewReader was called; a blob that was never written reads as
// empty.
func (b *Blob) NewReader() (*Reader, error) {
	s := b.stored()
	s.mu.RLock()
	r := newReader(bytes.Clone(s.content), s.attrsLocked())
	s.mu.RUnlock()

	return r, nil
}

// NewWriter opens the blob for writing, replacing its content. The blob is
// stored on the first Write or on Close, whichever comes first.
func (b *Blob) NewWriter(ctx context.Context) *Writer {
	return &Writer{ctx: ctx, handle: b}
}

// Open opens the blob with a file style mode: "r" or "rb" returns a
// *Reader, "w" or "wb" returns a *Writer.
func (b *Blob) Open(mode string) (io.Closer, error) {
	switch mode {
	case "r", "rb":
		r, err := b.NewReader()
		if err != nil {
			return nil, err
		}

		return r, nil
	case "w", "wb":
		return b.NewWriter(context.Background()), nil
	default:
		return nil, ErrInvalidMode
	}
}

// DownloadTo copies the full content of the blob into w.
func (b *Blob) DownloadTo(w io.Writer) (int64, error) {
	r, err := b.NewReader()
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return io.Copy(w, r)
}

// stored returns the blob kept by the bucket, or b itself when nothing is
// stored under its name yet.
func (b *Blob) stored() *Blob {
	if s, ok := b.bucket.lookup(b.name); ok {
		return s
	}

	return b
}

func (b *Blob) replace(content []byte) {
	b.mu.Lock()
	b.content = bytes.Clone(content)
	b.mu.Unlock()
}

func (b *Blob) appendContent(p []byte) {
	b.mu.Lock()
	b.content = append(b.content, p...)
	b.mu.Unlock()
}

// finalize stamps a new generation on the blob and returns its attributes.
// An empty contentType is detected from the content.
func (b *Blob) finalize(contentType string) Attrs {
	now := b.bucket.client.clock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if contentType == "" {
		contentType = mimetype.Detect(b.content).String()
	}
	if b.created.IsZero() {
		b.created = now
	}
	b.contentType = contentType
	b.updated = now
	b.etag = uuid.NewString()

	gen := now.UnixMicro()
	if gen <= b.generation {
		gen = b.generation + 1
	}
	b.generation = gen

	return b.attrsLocked()
}

func (b *Blob) attrsLocked() Attrs {
	sum := md5.Sum(b.content) //nolint

	return Attrs{
		Bucket:         b.bucket.name,
		Name:           b.name,
		ContentType:    b.contentType,
		Size:           int64(len(b.content)),
		MD5:            sum[:],
		CRC32C:         crc32.Checksum(b.content, crc32cTable),
		ETag:           b.etag,
		Generation:     b.generation,
		Metageneration: 1,
		Created:        b.created,
		Updated:        b.updated,
	}
}
