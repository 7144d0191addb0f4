package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"slices"
	"strings"

	"gcsfake/internal/domain/dto"
	"gcsfake/internal/domain/repository/storage"
	"gcsfake/internal/lister"
	"gcsfake/pkg/fakegcs"
)

const (
	DefaultPageSize = 1000
	MaxPageSize     = 1000
)

// Lister implements the Lister abstraction for paginated object listings.
type Lister struct {
	store          storage.Store
	defaultAddress string
}

// NewLister creates a new Lister usecase.
func NewLister(store storage.Store, address string) *Lister {
	return &Lister{
		store:          store,
		defaultAddress: address,
	}
}

// ListObjects lists a bucket in name order, one page at a time. A page token
// holds the name of the first object of the next page and resumes the
// listing as an inclusive start bound.
func (l *Lister) ListObjects(_ context.Context, bucketName string, params dto.ListParams,
) (dto.ObjectList, int, error) {
	bucket, ok := l.store.Lookup(bucketName)
	if !ok {
		return dto.ObjectList{}, http.StatusNotFound, errors.New("bucket not found")
	}

	pageSize, err := pageSize(params.MaxResults)
	if err != nil {
		return dto.ObjectList{}, http.StatusBadRequest, err
	}

	start := params.StartOffset
	if params.PageToken != "" {
		next, err := decodePageToken(params.PageToken)
		if err != nil {
			return dto.ObjectList{}, http.StatusBadRequest, err
		}
		if next > start {
			start = next
		}
	}

	blobs := bucket.ListBlobs(lister.Query{
		Prefix:      params.Prefix,
		StartOffset: start,
		EndOffset:   params.EndOffset,
	})
	slices.SortFunc(blobs, func(a, b *fakegcs.Blob) int {
		return strings.Compare(a.Name(), b.Name())
	})

	list := dto.ObjectList{Kind: objectsKind}
	if len(blobs) > pageSize {
		list.NextPageToken = encodePageToken(blobs[pageSize].Name())
		blobs = blobs[:pageSize]
	}

	list.Items = make([]dto.Object, 0, len(blobs))
	for _, blob := range blobs {
		list.Items = append(list.Items, toObject(blob.Attrs(), l.defaultAddress))
	}

	return list, http.StatusOK, nil
}

func pageSize(maxResults int) (int, error) {
	if err := (lister.Query{MaxResults: maxResults}).Validate(); err != nil {
		return 0, err
	}
	if maxResults == 0 {
		return DefaultPageSize, nil
	}

	return min(maxResults, MaxPageSize), nil
}

func encodePageToken(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(name))
}

func decodePageToken(token string) (string, error) {
	name, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(name) == 0 {
		return "", errors.New("invalid page token")
	}

	return string(name), nil
}
