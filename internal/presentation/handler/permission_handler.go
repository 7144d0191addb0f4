package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gcsfake/internal/application/usecase/abstraction"
	"gcsfake/internal/presentation"
)

type PermissionHandler struct {
	tester abstraction.PermissionTester
}

func NewPermissionHandler(tester abstraction.PermissionTester) *PermissionHandler {
	return &PermissionHandler{
		tester: tester,
	}
}

// HandleTest handles GET /storage/v1/b/:bucket/iam/testPermissions requests.
func (h *PermissionHandler) HandleTest(c echo.Context) error {
	bucket, err := pathParam(c, presentation.BucketParam)
	if err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	perms, status, err := h.tester.TestPermissions(c.Request().Context(), bucket,
		c.QueryParams()[presentation.PermissionsQuery])
	if err != nil {
		return fail(c, status, err)
	}

	return c.JSON(http.StatusOK, perms)
}
