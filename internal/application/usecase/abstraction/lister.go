package abstraction

import (
	"context"

	"gcsfake/internal/domain/dto"
)

type Lister interface {
	ListObjects(ctx context.Context, bucket string, params dto.ListParams) (dto.ObjectList, int, error)
}
