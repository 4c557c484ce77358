package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrNotSeller is returned when a non-seller profile attempts a seller operation.
	ErrNotSeller = errors.New("profile is not a seller")
	// ErrNotOwner is returned when a seller mutates a product it does not own.
	ErrNotOwner = errors.New("product is owned by another seller")
	// ErrInvalidPrice is returned when a product price fails numeric parsing.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrAlreadyDecided is returned when a swipe targets an already-decided card.
	ErrAlreadyDecided = errors.New("card already decided")
	// ErrItemNotFound is returned when a cart or saved row is not found.
	ErrItemNotFound = errors.New("item not found")
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProductNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case ErrItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case ErrProfileNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case ErrNotSeller:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_SELLER")
	case ErrNotOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_OWNER")
	case ErrInvalidPrice:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case ErrAlreadyDecided:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_DECIDED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
