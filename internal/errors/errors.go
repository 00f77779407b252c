package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidTarget is returned when a vote does not name exactly one content item.
	ErrInvalidTarget = errors.New("vote must target exactly one question or answer")
	// ErrInvalidValue is returned when a vote value is outside {-1, 0, 1}.
	ErrInvalidValue = errors.New("vote value must be -1, 0 or 1")
	// ErrQuestionNotFound is returned when a question is not found.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAnswerNotFound is returned when an answer is not found.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnauthenticated is returned when no authenticated identity is present.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotQuestionAuthor is returned when a non-author tries to accept an answer.
	ErrNotQuestionAuthor = errors.New("only the question author can accept an answer")
	// ErrInvalidVisibility is returned when an answer carries an unknown visibility mode.
	ErrInvalidVisibility = errors.New("invalid visibility type")
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
	switch {
	case errors.Is(err, ErrInvalidTarget):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TARGET")
	case errors.Is(err, ErrInvalidValue):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_VALUE")
	case errors.Is(err, ErrInvalidVisibility):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_VISIBILITY")
	case errors.Is(err, ErrQuestionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "QUESTION_NOT_FOUND")
	case errors.Is(err, ErrAnswerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ANSWER_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrNotQuestionAuthor):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
