package errors_test

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"cosmos-server/internal/shared/errors"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorType
	}{
		{"NotFound", errors.NotFoundf("universe %d not found", 3), errors.ErrorTypeNotFound},
		{"Validation", errors.Validation("bad"), errors.ErrorTypeValidation},
		{"Conflict", errors.Conflictf("name %q taken", "a"), errors.ErrorTypeConflict},
		{"Forbidden", errors.Forbidden("admin only"), errors.ErrorTypeForbidden},
		{"External", errors.External("redis down"), errors.ErrorTypeExternal},
		{"RateLimited", errors.RateLimited("slow down"), errors.ErrorTypeRateLimited},
		{"Plain", stderrors.New("boom"), errors.ErrorTypeInternal},
		{"WrappedAppError", fmt.Errorf("repo: %w", errors.NotFoundf("gone")), errors.ErrorTypeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetType(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := errors.WrapValidation("invalid seed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid seed: ")
	assert.True(t, errors.Is(err, errors.ErrorTypeValidation))
	assert.False(t, errors.Is(err, errors.ErrorTypeNotFound))
}

func TestMethodNotAllowed(t *testing.T) {
	assert.EqualError(t, errors.MethodNotAllowed("PUT"), "method PUT not allowed")
}
