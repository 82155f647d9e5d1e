package dto

import "net/http"

// Transport-level error codes. Domain error codes pass through to the
// client unchanged; these cover failures that happen before a request
// reaches the application layer.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeValidation is used when request binding fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a route or resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
	// ErrCodeRemoteUnavailable is used when the remote store cannot be reached
	ErrCodeRemoteUnavailable = "ERR_REMOTE_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps transport error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeConflict:          http.StatusConflict,
	ErrCodeRateLimited:       http.StatusTooManyRequests,
	ErrCodeRequestTooLarge:   http.StatusRequestEntityTooLarge,
	ErrCodeRemoteUnavailable: http.StatusBadGateway,
}

// DomainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Field-level validation failures are 400, referential and state rule
// violations are 422, uniqueness and in-use conflicts are 409.
var DomainErrorHTTPStatus = map[string]int{
	"NOT_FOUND": http.StatusNotFound,

	// Field validation -> 400 Bad Request
	"INVALID_INPUT":    http.StatusBadRequest,
	"INVALID_NAME":     http.StatusBadRequest,
	"INVALID_SKU":      http.StatusBadRequest,
	"INVALID_SLUG":     http.StatusBadRequest,
	"INVALID_TYPE":     http.StatusBadRequest,
	"INVALID_STATUS":   http.StatusBadRequest,
	"INVALID_PRICE":    http.StatusBadRequest,
	"INVALID_STOCK":    http.StatusBadRequest,
	"INVALID_WEIGHT":   http.StatusBadRequest,
	"INVALID_URL":      http.StatusBadRequest,
	"INVALID_POSITION": http.StatusBadRequest,
	"INVALID_VALUE":    http.StatusBadRequest,
	"INVALID_JOB_TYPE": http.StatusBadRequest,

	// Business rules -> 422 Unprocessable Entity
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"INVALID_CATEGORY":  http.StatusUnprocessableEntity,
	"INVALID_PARENT":    http.StatusUnprocessableEntity,
	"INVALID_ATTRIBUTE": http.StatusUnprocessableEntity,
	"INVALID_IMAGES":    http.StatusUnprocessableEntity,
	"UNKNOWN_CRITERION": http.StatusUnprocessableEntity,

	// Conflicts -> 409 Conflict
	"ALREADY_EXISTS":       http.StatusConflict,
	"DUPLICATE_ATTRIBUTE":  http.StatusConflict,
	"HAS_CHILDREN":         http.StatusConflict,
	"HAS_PRODUCTS":         http.StatusConflict,
	"ATTRIBUTE_IN_USE":     http.StatusConflict,
	"REMOTE_ID_CONFLICT":   http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"INVALID_REMOTE_ID":    http.StatusBadRequest,

	// Remote store failures -> 502 Bad Gateway
	"REMOTE_UNAVAILABLE": http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code. Domain
// codes not listed above are treated as business rule violations.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if status, ok := DomainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
