package abstraction

import (
	"context"

	"gcsfake/internal/domain/dto"
)

type PermissionTester interface {
	TestPermissions(ctx context.Context, bucket string, perms []string) (dto.Permissions, int, error)
}
