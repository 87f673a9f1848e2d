package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteError(rr, "order not found", http.StatusOK))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"order not found"}`, rr.Body.String())
}

func TestWriteValidationError(t *testing.T) {
	type request struct {
		Service string `validate:"required"`
	}
	err := validator.New().Struct(request{})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid request","fields":{"Service":"required"}}`, rr.Body.String())
}

func TestWriteValidationError_PlainError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, errors.New("unexpected EOF")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid request"}`, rr.Body.String())
}
