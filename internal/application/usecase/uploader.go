package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"

	"gcsfake/internal/domain/dto"
	"gcsfake/internal/domain/repository/storage"
	"gcsfake/pkg/fakegcs"
)

type Uploader struct {
	store          storage.Store
	defaultAddress string
}

func NewUploader(store storage.Store, address string) *Uploader {
	return &Uploader{
		store:          store,
		defaultAddress: address,
	}
}

// Upload writes body to the named object, replacing its content. An empty
// contentType is detected from the content.
func (u *Uploader) Upload(ctx context.Context, bucketName, name, contentType string, body io.Reader,
) (dto.Object, int, error) {
	if name == "" {
		return dto.Object{}, http.StatusBadRequest, fakegcs.ErrInvalidBlobName
	}

	bucket, ok := u.store.Lookup(bucketName)
	if !ok {
		return dto.Object{}, http.StatusNotFound, errors.New("bucket not found")
	}

	// the body is read fully first so a broken upload leaves the object as it was.
	data, err := io.ReadAll(body)
	if err != nil {
		logger.Error("upload failed", "bucket", bucketName, "name", name, "err", err)

		return dto.Object{}, http.StatusBadRequest, fmt.Errorf("read error: %w", err)
	}

	w := bucket.Blob(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		return dto.Object{}, http.StatusInternalServerError, err
	}
	if err := w.Close(); err != nil {
		return dto.Object{}, http.StatusInternalServerError, err
	}

	return toObject(w.Attrs(), u.defaultAddress), http.StatusOK, nil
}
