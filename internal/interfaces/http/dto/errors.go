package dto

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DetailResponse is the error body shape for every error the API emits.
// Detail is either a human-readable string or a field-to-message object
// for validation failures.
type DetailResponse struct {
	Detail interface{} `json:"detail"`
}

// NewDetail creates an error body with a string detail
func NewDetail(message string) DetailResponse {
	return DetailResponse{Detail: message}
}

// NewFieldDetail creates an error body with field-level messages
func NewFieldDetail(fields map[string]string) DetailResponse {
	return DetailResponse{Detail: fields}
}

// DomainErrorStatus maps domain error codes to HTTP status codes
var DomainErrorStatus = map[string]int{
	"NOT_FOUND":         http.StatusNotFound,
	"ALREADY_EXISTS":    http.StatusConflict,
	"REFERENCE_IN_USE":  http.StatusConflict,
	"DUPLICATE_REQUEST": http.StatusConflict,
	"INVALID_INPUT":     http.StatusUnprocessableEntity,
	"INVALID_ADDRESS":   http.StatusUnprocessableEntity,
	"INVALID_NAME":      http.StatusUnprocessableEntity,
	"INVALID_DOB":       http.StatusUnprocessableEntity,
	"INVALID_EMAIL":     http.StatusUnprocessableEntity,
	"INVALID_INCOME":    http.StatusUnprocessableEntity,
	"INVALID_NINO":      http.StatusUnprocessableEntity,
	"INVALID_TYPE":      http.StatusUnprocessableEntity,
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"INVALID_REFERENCE": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for a domain error code,
// defaulting to 500 for unmapped codes
func GetHTTPStatus(code string) int {
	if status, ok := DomainErrorStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FieldErrors converts validator errors into a field-to-message map.
// Non-validator errors produce a nil map, the caller should fall back
// to the error's string form.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &validationErrs); !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fieldName(fe)] = fieldMessage(fe)
	}
	return fields
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = ve
	return true
}

// fieldName converts the struct field name to snake_case, matching the
// json tags used in request DTOs
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	var b strings.Builder
	for i, r := range name {
		prevLower := i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z'
		switch {
		case r >= 'A' && r <= 'Z':
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		case r >= '0' && r <= '9':
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "email":
		return "invalid email format"
	case "oneof":
		return "value must be one of: " + fe.Param()
	case "datetime":
		return "value must match format " + fe.Param()
	case "uuid":
		return "value must be a valid UUID"
	default:
		return "invalid value"
	}
}
