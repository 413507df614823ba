package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_TypesAndStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("contact").HTTPStatus)
	assert.Equal(t, http.StatusConflict, NewConflictError("dup").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("boom").HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, NewUnavailableError("store", nil).HTTPStatus)
}

func TestRetryableFlags(t *testing.T) {
	assert.True(t, IsRetryable(NewTimeoutError("query")))
	assert.True(t, IsRetryable(NewUnavailableError("store", nil)))
	assert.False(t, IsRetryable(NewValidationError("bad")))
	assert.False(t, IsRetryable(NewCancelledError("query")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("contact")))
	assert.True(t, IsValidation(NewValidationError("bad")))
	assert.True(t, IsCancelled(NewCancelledError("op")))
	assert.True(t, IsUnavailable(NewUnavailableError("store", nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestWrap_PreservesAppErrorType(t *testing.T) {
	inner := NewNotFoundError("contact")

	wrapped := Wrap(inner, "resolving candidate")

	require.True(t, IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "resolving candidate")
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(errors.New("socket closed"), "loading contacts")

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorContains(t, appErr, "socket closed")
}

func TestWrap_NilPassesThrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing happened"))
}

func TestUnwrap_ReachesCause(t *testing.T) {
	cause := errors.New("throttled")
	err := NewDatabaseError("Query", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestErrorString(t *testing.T) {
	err := NewDatabaseError("Query", fmt.Errorf("throttled"))

	assert.Contains(t, err.Error(), "DATABASE")
	assert.Contains(t, err.Error(), "throttled")
}
