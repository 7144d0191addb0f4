package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gcsfake/internal/application/usecase/abstraction"
	"gcsfake/internal/domain/dto"
	"gcsfake/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /storage/v1/b/:bucket/o requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	bucket, err := pathParam(c, presentation.BucketParam)
	if err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	maxResults, err := parseIntQueryParam(c, presentation.MaxResultsQuery)
	if err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	list, status, err := h.lister.ListObjects(c.Request().Context(), bucket, dto.ListParams{
		Prefix:      c.QueryParam(presentation.PrefixQuery),
		StartOffset: c.QueryParam(presentation.StartOffsetQuery),
		EndOffset:   c.QueryParam(presentation.EndOffsetQuery),
		PageToken:   c.QueryParam(presentation.PageTokenQuery),
		MaxResults:  maxResults,
	})
	if err != nil {
		return fail(c, status, err)
	}

	return c.JSON(http.StatusOK, list)
}

// parseIntQueryParam parses an optional integer query parameter. An absent
// parameter is zero.
func parseIntQueryParam(c echo.Context, paramName string) (int, error) {
	s := c.QueryParam(paramName)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid '%s' value", paramName)
	}

	return n, nil
}
