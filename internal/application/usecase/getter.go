package usecase

import (
	"context"
	"errors"
	"net/http"

	"gcsfake/internal/domain/dto"
	"gcsfake/internal/domain/repository/storage"
	"gcsfake/pkg/fakegcs"
)

// Getter implements the Getter abstraction for reading objects.
type Getter struct {
	store          storage.Store
	defaultAddress string
}

// NewGetter creates a new Getter usecase.
func NewGetter(store storage.Store, address string) *Getter {
	return &Getter{
		store:          store,
		defaultAddress: address,
	}
}

// GetObject returns the metadata of a stored object.
func (g *Getter) GetObject(ctx context.Context, bucketName, name string) (dto.Object, int, error) {
	r, status, err := g.Download(ctx, bucketName, name)
	if err != nil {
		return dto.Object{}, status, err
	}
	defer r.Close()

	return toObject(r.Attrs(), g.defaultAddress), http.StatusOK, nil
}

// Download opens a stored object for reading. The caller closes the reader.
func (g *Getter) Download(_ context.Context, bucketName, name string) (*fakegcs.Reader, int, error) {
	bucket, ok := g.store.Lookup(bucketName)
	if !ok {
		return nil, http.StatusNotFound, errors.New("bucket not found")
	}

	blob := bucket.Blob(name)
	if !blob.Exists() {
		return nil, http.StatusNotFound, errors.New("object not found")
	}

	r, err := blob.NewReader()
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return r, http.StatusOK, nil
}
