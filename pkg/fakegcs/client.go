// Package fakegcs is an in-memory stand-in for a GCS style object storage
// client. It keeps buckets, blobs and per-bucket permission grants in
// memory and is safe for concurrent use.
package fakegcs

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
)

// Notifier receives object change events encoded as JSON.
type Notifier interface {
	Publish(ctx context.Context, message string) error
}

type Option func(*Client)

// WithNotifier publishes an Event for every finalized blob.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithClock overrides the time source used for blob timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

type Client struct {
	mu          sync.RWMutex
	buckets     map[string]*Bucket
	permissions map[string][]string

	notifier Notifier
	now      func() time.Time
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		buckets:     make(map[string]*Bucket),
		permissions: make(map[string][]string),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Bucket returns the named bucket, creating it on first use.
func (c *Client) Bucket(name string) (*Bucket, error) {
	if b, ok := c.Lookup(name); ok {
		return b, nil
	}

	b, _, err := c.CreateBucket(name)

	return b, err
}

// CreateBucket returns the named bucket and whether this call created it.
func (c *Client) CreateBucket(name string) (*Bucket, bool, error) {
	if name == "" {
		return nil, false, ErrInvalidBucketName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.buckets[name]; ok {
		return b, false, nil
	}

	b := newBucket(name, c)
	c.buckets[name] = b
	logger.Info("bucket created", "bucket", name)

	return b, true, nil
}

// Lookup returns an existing bucket without creating it.
func (c *Client) Lookup(name string) (*Bucket, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.buckets[name]

	return b, ok
}

func (c *Client) BucketNames() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.buckets))
	for name := range c.buckets {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)

	return names
}

// SetPermissions replaces the permissions granted on bucket.
func (c *Client) SetPermissions(bucket string, perms []string) {
	granted := make([]string, len(perms))
	copy(granted, perms)

	c.mu.Lock()
	c.permissions[bucket] = granted
	c.mu.Unlock()

	logger.Info("bucket permissions set", "bucket", bucket, "count", len(granted))
}

func (c *Client) granted(bucket string) map[string]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set := make(map[string]struct{}, len(c.permissions[bucket]))
	for _, p := range c.permissions[bucket] {
		set[p] = struct{}{}
	}

	return set
}

func (c *Client) notify(ctx context.Context, attrs Attrs) {
	if c == nil || c.notifier == nil {
		return
	}

	msg, err := json.Marshal(newFinalizeEvent(attrs))
	if err != nil {
		logger.Error("can't encode object notification", "err", err)

		return
	}

	if err := c.notifier.Publish(ctx, string(msg)); err != nil {
		logger.Error("can't publish object notification", "bucket", attrs.Bucket,
			"name", attrs.Name, "err", err)
	}
}

func (c *Client) clock() time.Time {
	if c == nil || c.now == nil {
		return time.Now()
	}

	return c.now()
}
