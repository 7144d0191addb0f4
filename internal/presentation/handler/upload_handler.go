package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"gcsfake/internal/application/usecase/abstraction"
	"gcsfake/internal/presentation"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload handles POST /upload/storage/v1/b/:bucket/o?uploadType=media
// requests. The request body is the object content.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	bucket, err := pathParam(c, presentation.BucketParam)
	if err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	if t := c.QueryParam(presentation.UploadTypeQuery); t != presentation.UploadTypeMedia {
		return fail(c, http.StatusBadRequest, fmt.Errorf("unsupported uploadType '%s'", t))
	}

	name := c.QueryParam(presentation.NameQuery)
	if name == "" {
		return fail(c, http.StatusBadRequest, errors.New("missing object name"))
	}

	obj, status, err := h.uploader.Upload(c.Request().Context(), bucket, name,
		c.Request().Header.Get(presentation.TypeKey), c.Request().Body)
	if err != nil {
		return fail(c, status, err)
	}

	return c.JSON(http.StatusOK, obj)
}
