package handler

import (
	"github.com/labstack/echo/v4"

	"gcsfake/internal/domain/dto"
	"gcsfake/internal/presentation"
)

// fail writes err as a storage API error body and mirrors it in the
// X-Reason header.
func fail(c echo.Context, status int, err error) error {
	c.Response().Header().Set(presentation.ReasonTag, err.Error())

	return c.JSON(status, dto.Error{
		Error: dto.ErrorBody{
			Code:    status,
			Message: err.Error(),
		},
	})
}
