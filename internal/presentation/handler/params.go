package handler

import (
	"fmt"
	"net/url"

	"github.com/labstack/echo/v4"
)

// pathParam returns the decoded value of a path parameter. Echo routes on
// the raw path when the request has one, and only then are parameters
// still escaped.
func pathParam(c echo.Context, name string) (string, error) {
	v := c.Param(name)
	if c.Request().URL.RawPath != "" {
		var err error
		if v, err = url.PathUnescape(v); err != nil {
			return "", fmt.Errorf("invalid %s", name)
		}
	}

	if v == "" {
		return "", fmt.Errorf("missing %s", name)
	}

	return v, nil
}
