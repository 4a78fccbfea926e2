package http

import (
	"errors"
	"net/http"

	"farmmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorBody is the JSON error envelope for every failure response.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error to its HTTP status.
//
// Validation problems are 400, missing or invisible objects 404, role denials
// 403, lost concurrent races 409, attempts to move a finished order 409,
// transitions the graph does not allow 422, and upstream trouble 503. Errors
// outside the taxonomy become an opaque 500 so internals never leak.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorBody{
			Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrUnauthorizedRole):
		return c.JSON(http.StatusForbidden, errorBody{
			Code: http.StatusForbidden, Message: err.Error()})
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrAlreadyFinalized):
		return c.JSON(http.StatusConflict, errorBody{
			Code: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidTransition):
		return c.JSON(http.StatusUnprocessableEntity, errorBody{
			Code: http.StatusUnprocessableEntity, Message: err.Error()})
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorBody{
			Code: http.StatusServiceUnavailable, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorBody{
			Code: http.StatusInternalServerError, Message: "internal error"})
	}
}
