package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(ErrRequiredFieldMissing))
	assert.Equal(t, KindAuthorization, KindOf(ErrUnauthorized))
	assert.Equal(t, KindAuthentication, KindOf(ErrInvalidCredentials))
	assert.Equal(t, KindConflict, KindOf(ErrUsernameTaken))

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestErrorKindOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("resolve createAnimal: %w", NewError(KindOperationFailed, "Failed to create animal"))
	assert.Equal(t, KindOperationFailed, KindOf(wrapped))
}

func TestErrorExtensions(t *testing.T) {
	err := NewError(KindPersistence, "Database error")
	assert.Equal(t, "Database error", err.Error())
	assert.Equal(t, map[string]interface{}{"code": "PERSISTENCE"}, err.Extensions())
}
