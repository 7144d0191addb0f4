package usecase

import (
	"context"
	"errors"
	"net/http"

	"gcsfake/internal/domain/dto"
	"gcsfake/internal/domain/repository/storage"
)

type PermissionTester struct {
	store storage.Store
}

func NewPermissionTester(store storage.Store) *PermissionTester {
	return &PermissionTester{
		store: store,
	}
}

// TestPermissions returns the requested permissions granted on the bucket.
func (p *PermissionTester) TestPermissions(_ context.Context, bucketName string, perms []string,
) (dto.Permissions, int, error) {
	bucket, ok := p.store.Lookup(bucketName)
	if !ok {
		return dto.Permissions{}, http.StatusNotFound, errors.New("bucket not found")
	}

	return dto.Permissions{
		Kind:        permissionsKind,
		Permissions: bucket.TestIAMPermissions(perms),
	}, http.StatusOK, nil
}
