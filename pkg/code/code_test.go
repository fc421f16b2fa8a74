package code

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_StatusCodeMapping(t *testing.T) {
	assert.Equal(t, http.StatusOK, Success.StatusCode())
	assert.Equal(t, http.StatusCreated, SuccessCreated.StatusCode())
	assert.Equal(t, http.StatusUnprocessableEntity, ErrorInvalidParams.StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrorUserEmailAlreadyExists.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, ErrorUserLoginFailed.StatusCode())
	assert.Equal(t, http.StatusForbidden, ErrorNoteAccessForbidden.StatusCode())
	assert.Equal(t, http.StatusNotFound, ErrorNoteNotFound.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, ErrorServerInternal.StatusCode())
}

func TestCode_WithDetailsDoesNotMutateRegistered(t *testing.T) {
	c := ErrorInvalidParams.WithDetails("email is required")

	assert.True(t, c.HaveDetails())
	assert.Equal(t, []string{"email is required"}, c.Details())

	// The registered code must stay pristine
	// 注册的错误码对象必须保持不变
	assert.False(t, ErrorInvalidParams.HaveDetails())
	assert.Empty(t, ErrorInvalidParams.Details())
	assert.Equal(t, ErrorInvalidParams.Code(), c.Code())
}

func TestCode_ErrorsIsByBusinessCode(t *testing.T) {
	var err error = ErrorNoteNotFound.WithDetails("id=42")
	assert.True(t, errors.Is(err, ErrorNoteNotFound))
	assert.False(t, errors.Is(err, ErrorNoteAccessForbidden))
}
