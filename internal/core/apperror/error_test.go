package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownEntityType(t *testing.T) {
	err := NewUnknownEntityType("storys")

	assert.Equal(t, CodeUnknownEntityType, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "storys", err.Details["type"])
	assert.True(t, IsUnknownEntityType(err))
	assert.False(t, IsNotFound(err))
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("render row: %w", NewNotCreatable("stories"))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotCreatable, appErr.Code)
	assert.True(t, IsNotCreatable(wrapped))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(wrapped))
}

func TestGetHTTPStatusPlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("boom")))
	assert.False(t, IsAppError(errors.New("boom")))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("decode failed")
	err := NewInternal(cause)

	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "decode failed")
	assert.ErrorIs(t, err, cause)
}

func TestWithDetailInitializesMap(t *testing.T) {
	err := NewValidation("bad").WithDetail("key", "name")
	assert.Equal(t, "name", err.Details["key"])
}
