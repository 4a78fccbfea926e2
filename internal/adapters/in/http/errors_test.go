package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_MapsDomainErrorsToStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", kernel.NewUUID()), http.StatusNotFound},
		{"unauthorized role", errs.NewUnauthorizedRoleError("buyer", "ship order"), http.StatusForbidden},
		{"conflict", errs.NewConflictError("order", kernel.NewUUID()), http.StatusConflict},
		{"already finalized", errs.NewAlreadyFinalizedError("delivered"), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("confirmed", "delivered"), http.StatusUnprocessableEntity},
		{"upstream unavailable", errs.NewUpstreamUnavailableError("payment gateway", nil), http.StatusServiceUnavailable},
		{"invalid value", errs.NewValueIsInvalidError("quantity"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("estimatedDelivery"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("pageSize", 500, 1, 100), http.StatusBadRequest},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, tc.err))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestWriteError_UnknownErrorIsOpaque(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, writeError(c, errors.New("pq: connection refused on 10.0.3.7")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.3.7")
	assert.Contains(t, rec.Body.String(), "internal error")
}
