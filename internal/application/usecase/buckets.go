package usecase

import (
	"context"
	"errors"
	"net/http"

	"gcsfake/internal/domain/dto"
	"gcsfake/internal/domain/repository/storage"
	"gcsfake/pkg/fakegcs"
)

// BucketManager implements the BucketManager abstraction.
type BucketManager struct {
	store storage.Store
}

func NewBucketManager(store storage.Store) *BucketManager {
	return &BucketManager{
		store: store,
	}
}

// CreateBucket creates a bucket. A bucket that already exists is a conflict.
func (m *BucketManager) CreateBucket(_ context.Context, name string) (dto.Bucket, int, error) {
	bucket, created, err := m.store.CreateBucket(name)
	if err != nil {
		if errors.Is(err, fakegcs.ErrInvalidBucketName) {
			return dto.Bucket{}, http.StatusBadRequest, err
		}

		return dto.Bucket{}, http.StatusInternalServerError, err
	}
	if !created {
		return dto.Bucket{}, http.StatusConflict, errors.New("bucket already exists")
	}

	return toBucket(bucket.Name()), http.StatusOK, nil
}

func (m *BucketManager) ListBuckets(_ context.Context) dto.BucketList {
	names := m.store.BucketNames()
	list := dto.BucketList{
		Kind:  bucketsKind,
		Items: make([]dto.Bucket, 0, len(names)),
	}
	for _, name := range names {
		list.Items = append(list.Items, toBucket(name))
	}

	return list
}

func toBucket(name string) dto.Bucket {
	return dto.Bucket{Kind: bucketKind, ID: name, Name: name}
}
