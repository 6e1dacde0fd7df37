package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError(t *testing.T) {
	wrapped := fmt.Errorf("loading profile: %w", NewNotFoundError("Commission profile"))

	got := GetAppError(wrapped)
	assert.Equal(t, http.StatusNotFound, got.Code)
	assert.Equal(t, "Commission profile not found", got.Message)

	internal := GetAppError(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.Equal(t, "Internal server error", internal.Message)
}

func TestNewValidationMessages(t *testing.T) {
	err := NewValidationMessages("commission", []string{"a", "b"})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, []FieldError{{Field: "commission", Message: "a"}, {Field: "commission", Message: "b"}}, err.Errors)
	assert.True(t, IsAppError(err))
}
