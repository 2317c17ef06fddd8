package dto

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"REFERENCE_IN_USE", http.StatusConflict},
		{"DUPLICATE_REQUEST", http.StatusConflict},
		{"INVALID_NAME", http.StatusUnprocessableEntity},
		{"INVALID_REFERENCE", http.StatusUnprocessableEntity},
		{"SOMETHING_UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestFieldErrors(t *testing.T) {
	type payload struct {
		Firstname string `json:"firstname" binding:"required"`
		Line1     string `json:"line_1" binding:"required"`
		Email     string `json:"email" binding:"omitempty,email"`
	}

	t.Run("maps validator errors to field messages", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(payload{Email: "not-an-email"})
		require.Error(t, err)

		fields := FieldErrors(err)
		require.NotNil(t, fields)
		assert.Equal(t, "field is required", fields["firstname"])
		assert.Equal(t, "field is required", fields["line_1"])
		assert.Equal(t, "invalid email format", fields["email"])
	})

	t.Run("nil for non-validator errors", func(t *testing.T) {
		assert.Nil(t, FieldErrors(assert.AnError))
	})
}
