package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	var ve ValidationError
	assert.False(t, ve.HasAny())
	assert.Equal(t, "validation failed", ve.Error())

	ve.Add("a", "bad")
	ve.Addf("b", "want %d", 3)
	assert.True(t, ve.HasAny())
	assert.Equal(t, []string{"a", "b"}, ve.Fields())
	assert.Equal(t, "validation failed:\n - a: bad\n - b: want 3\n", ve.Error())

	wrapped := fmt.Errorf("config: %w", ve)
	assert.True(t, errors.Is(wrapped, ErrInvalid))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}

func TestFieldError(t *testing.T) {
	assert.Equal(t, "msg", FieldError{Message: "msg"}.Error())
	assert.Equal(t, "f: msg", FieldError{Field: "f", Message: "msg"}.Error())
}
