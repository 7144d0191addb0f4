package abstraction

import (
	"context"

	"gcsfake/internal/domain/dto"
)

// BucketManager defines the interface for creating and listing buckets.
type BucketManager interface {
	CreateBucket(ctx context.Context, name string) (dto.Bucket, int, error)
	ListBuckets(ctx context.Context) dto.BucketList
}
