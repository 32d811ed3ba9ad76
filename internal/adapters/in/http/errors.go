package http

import (
	"net/http"

	"bookstore/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusOf maps an error kind to the HTTP status reported for it.
func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidValue, errs.KindInvalidQuery:
		return http.StatusBadRequest
	case errs.KindEmptyOrder:
		return http.StatusUnprocessableEntity
	case errs.KindInsufficientStock,
		errs.KindUniqueConstraintViolation,
		errs.KindReferentialIntegrityViolation,
		errs.KindTransactionConflict:
		return http.StatusConflict
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// respondError writes err as an errorResponse. Errors of unknown kind are
// logged and reported without their text.
func (s *Server) respondError(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	status := statusOf(kind)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return c.JSON(status, errorResponse{Code: status, Kind: kind.String(), Message: message})
}

// badRequest reports a body that could not be decoded or failed struct validation.
func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Kind:    "InvalidRequest",
		Message: err.Error(),
	})
}

// structValidator plugs go-playground/validator into echo.Context.Validate.
type structValidator struct {
	validate *validator.Validate
}

func newStructValidator() structValidator {
	return structValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v structValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// bindBody decodes and validates the JSON body into dst.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return err
	}
	return c.Validate(dst)
}
