package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// statusByCode maps domain and application error codes to HTTP status codes.
// Codes not listed here fall back to 500.
var statusByCode = map[string]int{
	// Input errors
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeValidation:        http.StatusBadRequest,
	"INVALID_INPUT":          http.StatusBadRequest,
	"MISSING_REQUIRED_FIELD": http.StatusBadRequest,
	"INVALID_QUANTITY":       http.StatusBadRequest,
	"INVALID_PRICE":          http.StatusBadRequest,
	"INVALID_CLASSIFICATION": http.StatusBadRequest,
	"INVALID_POSTAL_CODE":    http.StatusBadRequest,

	// Authentication
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,
	"EXPIRED_TOKEN":       http.StatusUnauthorized,

	// Resources
	"NOT_FOUND":             http.StatusNotFound,
	"POSTAL_CODE_NOT_FOUND": http.StatusNotFound,
	"ALREADY_EXISTS":        http.StatusConflict,

	// Business rules
	"HAS_DEPENDENT_PRODUCTS": http.StatusConflict,

	// Infrastructure
	"UPSTREAM_ERROR": http.StatusInternalServerError,
	"STORAGE_ERROR":  http.StatusInternalServerError,
	ErrCodeInternal:  http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
