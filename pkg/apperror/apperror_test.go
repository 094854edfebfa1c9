package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("user", "ana@x.com"), http.StatusNotFound},
		{"invalid input", NewInvalidInput("missing email", nil), http.StatusBadRequest},
		{"conflict", NewConflict("user", "email", "ana@x.com", nil), http.StatusConflict},
		{"internal", NewInternal("db down", errors.New("dial tcp")), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("register: %w", NewNotFound("user", "x")), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestAppError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("failed to save user", cause)

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppError_ToJSON(t *testing.T) {
	err := NewNotFound("user", "none@x.com")

	body := err.ToJSON()

	assert.Equal(t, "not found", body["error"])
	assert.Equal(t, "user not found", body["message"])
	assert.Equal(t, "user with identifier 'none@x.com' was not found", body["details"])
}
