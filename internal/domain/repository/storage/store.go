package storage

import "gcsfake/pkg/fakegcs"

// Store is the bucket registry the use cases work against.
type Store interface {
	Bucket(name string) (*fakegcs.Bucket, error)
	CreateBucket(name string) (*fakegcs.Bucket, bool, error)
	Lookup(name string) (*fakegcs.Bucket, bool)
	BucketNames() []string
}
