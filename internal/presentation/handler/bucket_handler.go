package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gcsfake/internal/application/usecase/abstraction"
	"gcsfake/internal/domain/dto"
)

type BucketHandler struct {
	manager abstraction.BucketManager
}

func NewBucketHandler(manager abstraction.BucketManager) *BucketHandler {
	return &BucketHandler{
		manager: manager,
	}
}

// HandleList handles GET /storage/v1/b requests.
func (h *BucketHandler) HandleList(c echo.Context) error {
	return c.JSON(http.StatusOK, h.manager.ListBuckets(c.Request().Context()))
}

// HandleCreate handles POST /storage/v1/b requests carrying a bucket resource.
func (h *BucketHandler) HandleCreate(c echo.Context) error {
	var req dto.Bucket
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.New("invalid bucket resource"))
	}

	bucket, status, err := h.manager.CreateBucket(c.Request().Context(), req.Name)
	if err != nil {
		return fail(c, status, err)
	}

	return c.JSON(http.StatusOK, bucket)
}
