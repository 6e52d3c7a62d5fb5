package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request into req and runs its validation tags.
// On failure the error response is already written and handled is true.
func bindAndValidate(c echo.Context, req any) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, response.BindingError(c, "INVALID_INPUT", "Request body could not be parsed")
	}

	if err := c.Validate(req); err != nil {
		if fieldErrs, ok := errors.AsType[validator.FieldErrors](err); ok {
			return true, response.ValidationFailed(c, fieldErrs.Error(), fieldErrs.Fields())
		}

		return true, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return false, nil
}

func viewerFrom(c echo.Context) (usecase.Viewer, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return usecase.Viewer{}, false
	}

	return usecase.Viewer{Identity: identity, IsOperator: middleware.IsOperator(c)}, true
}

func requestMeta(c echo.Context) entity.RequestMeta {
	return entity.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

func pagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = min(v, maxPageSize)
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}

	return limit, offset
}
