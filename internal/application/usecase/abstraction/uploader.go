package abstraction

import (
	"context"
	"io"

	"gcsfake/internal/domain/dto"
)

type Uploader interface {
	Upload(ctx context.Context, bucket, name, contentType string, body io.Reader) (dto.Object, int, error)
}
