package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").StatusCode())
	assert.Equal(t, http.StatusForbidden, Forbidden("x").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("x").StatusCode())
	assert.Equal(t, http.StatusConflict, Duplicate("x").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal("x", nil).StatusCode())
}

func TestFrom(t *testing.T) {
	t.Run("direct error", func(t *testing.T) {
		err := NotFound("missing")
		assert.Equal(t, err, From(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", Duplicate("taken"))
		assert.True(t, IsKind(wrapped, KindDuplicate))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Nil(t, From(errors.New("boom")))
		assert.False(t, IsKind(errors.New("boom"), KindInternal))
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("smtp down")
	err := Internal("Failed to send verification email", cause)
	assert.True(t, errors.Is(err, cause))
}
