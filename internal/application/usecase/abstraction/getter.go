package abstraction

import (
	"context"

	"gcsfake/internal/domain/dto"
	"gcsfake/pkg/fakegcs"
)

// Getter defines the interface for reading objects.
type Getter interface {
	GetObject(ctx context.Context, bucket, name string) (dto.Object, int, error)
	Download(ctx context.Context, bucket, name string) (*fakegcs.Reader, int, error)
}
