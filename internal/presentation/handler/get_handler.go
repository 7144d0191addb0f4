package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gcsfake/internal/application/usecase/abstraction"
	"gcsfake/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /storage/v1/b/:bucket/o/:object requests. With
// alt=media the object content is returned instead of its metadata.
func (h *GetHandler) HandleGet(c echo.Context) error {
	if c.QueryParam(presentation.AltQuery) == presentation.AltMedia {
		return h.HandleDownload(c)
	}

	bucket, name, err := objectParams(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	obj, status, err := h.getter.GetObject(c.Request().Context(), bucket, name)
	if err != nil {
		return fail(c, status, err)
	}

	return c.JSON(http.StatusOK, obj)
}

// HandleDownload handles GET /download/storage/v1/b/:bucket/o/:object requests.
func (h *GetHandler) HandleDownload(c echo.Context) error {
	bucket, name, err := objectParams(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	r, status, err := h.getter.Download(c.Request().Context(), bucket, name)
	if err != nil {
		return fail(c, status, err)
	}
	defer r.Close()

	attrs := r.Attrs()
	c.Response().Header().Set("Accept-Ranges", "bytes")
	c.Response().Header().Set("Content-Length", strconv.FormatInt(attrs.Size, 10))
	c.Response().Header().Set(presentation.GenerationHeader, strconv.FormatInt(attrs.Generation, 10))

	return c.Stream(http.StatusOK, attrs.ContentType, r)
}

func objectParams(c echo.Context) (string, string, error) {
	bucket, err := pathParam(c, presentation.BucketParam)
	if err != nil {
		return "", "", err
	}

	name, err := pathParam(c, presentation.ObjectParam)
	if err != nil {
		return "", "", err
	}

	return bucket, name, nil
}
