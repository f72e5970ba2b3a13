package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("service: %w", apperrors.NewNotFoundError("expense not found"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "expense not found")
}

func TestNewRateUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewRateUnavailableError("fetch ARS", cause)

	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "fetch ARS")

	noCause := apperrors.NewRateUnavailableError("missing USD", nil)
	assert.ErrorIs(t, noCause, apperrors.ErrRateUnavailable)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: bad", apperrors.ErrValidation), http.StatusBadRequest},
		{"not found", apperrors.NewNotFoundError("x"), http.StatusNotFound},
		{"duplicate", apperrors.NewConflictError("x"), http.StatusConflict},
		{"tenant", apperrors.ErrTenantUnavailable, http.StatusForbidden},
		{"rate", apperrors.NewRateUnavailableError("x", nil), http.StatusBadGateway},
		{"app error code", apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errors.New("bad")), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}
