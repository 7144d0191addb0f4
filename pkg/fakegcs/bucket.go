package fakegcs

import (
	"context"
	"sync"

	"github.com/fishy/rowlock"

	"gcsfake/internal/lister"
)

// Bucket owns its blobs, keyed by name and kept in insertion order.
type Bucket struct {
	name   string
	client *Client

	mu    sync.RWMutex
	blobs map[string]*Blob
	order []*Blob

	// serialises finalization of blobs sharing a name.
	locks *rowlock.RowLock
}

// NewBucket creates a bucket that is not attached to any client. It has no
// permission grants and publishes no notifications.
func NewBucket(name string) (*Bucket, error) {
	if name == "" {
		return nil, ErrInvalidBucketName
	}

	return newBucket(name, nil), nil
}

func newBucket(name string, client *Client) *Bucket {
	return &Bucket{
		name:   name,
		client: client,
		blobs:  make(map[string]*Blob),
		locks:  rowlock.NewRowLock(rowlock.MutexNewLocker),
	}
}

func (b *Bucket) Name() string {
	return b.name
}

// Blob returns a handle for name. The handle refers to the stored blob when
// one exists; otherwise the blob is stored on its first write.
func (b *Bucket) Blob(name string) *Blob {
	if blob, ok := b.lookup(name); ok {
		return blob
	}

	return &Blob{bucket: b, name: name}
}

// AddFile stores content under name, replacing any previous content.
func (b *Bucket) AddFile(name string, content []byte) (*Blob, error) {
	if name == "" {
		return nil, ErrInvalidBlobName
	}

	b.locks.Lock(name)
	blob := b.register(&Blob{bucket: b, name: name})
	blob.replace(content)
	attrs := blob.finalize("")
	b.locks.Unlock(name)

	b.client.notify(context.Background(), attrs)

	return blob, nil
}

// ListBlobs lists a snapshot of the bucket's blobs filtered by q.
func (b *Bucket) ListBlobs(q lister.Query) []*Blob {
	b.mu.RLock()
	snapshot := make([]*Blob, len(b.order))
	copy(snapshot, b.order)
	b.mu.RUnlock()

	return lister.List(snapshot, q)
}

// TestIAMPermissions returns the subset of perms granted on this bucket,
// in request order.
func (b *Bucket) TestIAMPermissions(perms []string) []string {
	out := make([]string, 0, len(perms))
	if b.client == nil || len(perms) == 0 {
		return out
	}

	granted := b.client.granted(b.name)
	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		if _, ok := granted[p]; !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

func (b *Bucket) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.order)
}

func (b *Bucket) lookup(name string) (*Blob, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	blob, ok := b.blobs[name]

	return blob, ok
}

// register stores blob unless a blob with the same name exists, and
// returns the stored one.
func (b *Bucket) register(blob *Blob) *Blob {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.blobs[blob.name]; ok {
		return existing
	}

	b.blobs[blob.name] = blob
	b.order = append(b.order, blob)

	return blob
}
