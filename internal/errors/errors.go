package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized is returned when a protected route is called without a token.
	ErrUnauthorized = errors.New("no authorization found")
	// ErrInvalidToken is returned when the presented token cannot be verified.
	ErrInvalidToken = errors.New("authorization failed")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailInUse is returned when signing up or switching to a taken email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidID is returned when a path parameter is not a valid id.
	ErrInvalidID = errors.New("invalid id")

	// ErrProfileNotFound is returned when no profile matches an id or email.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrPlanNotFound is returned when a plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrNoPendingRequest is returned when confirming a request that was never sent.
	ErrNoPendingRequest = errors.New("no pending friend request from this profile")

	// ErrSelfRequest is returned when a profile sends itself a friend request.
	ErrSelfRequest = errors.New("cannot send a friend request to yourself")
	// ErrAlreadyFriends is returned when the target already lists the requester as a friend.
	ErrAlreadyFriends = errors.New("already friends")

	// ErrNotYourFriend guards access to another profile's details.
	ErrNotYourFriend = errors.New("not your friend")
	// ErrNotFriends is returned when removing a friendship that does not exist.
	ErrNotFriends = errors.New("not friends with this profile")
	// ErrNotOwner is returned when mutating a shareable owned by someone else.
	ErrNotOwner = errors.New("you do not own this shareable")
)

// ValidationError carries one message per missing or malformed field.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a validation error from field messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ErrorResponse represents a standardized error response. Error is a string,
// or a list of strings for multi-field validation failures.
type ErrorResponse struct {
	Error interface{} `json:"error"`
	Code  string      `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    interface{}
	Code       string
}

func (e *HTTPError) Error() string {
	if s, ok := e.Message.(string); ok {
		return s
	}
	if msgs, ok := e.Message.([]string); ok {
		return strings.Join(msgs, "; ")
	}
	return http.StatusText(e.StatusCode)
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message interface{}, code string) *HTTPError {
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

var sentinels = []struct {
	err    error
	status int
	code   string
}{
	{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrInvalidID, http.StatusBadRequest, "INVALID_ID"},
	{ErrEmailInUse, http.StatusBadRequest, "EMAIL_IN_USE"},
	{ErrSelfRequest, http.StatusBadRequest, "SELF_REQUEST"},
	{ErrAlreadyFriends, http.StatusBadRequest, "ALREADY_FRIENDS"},
	{ErrNotYourFriend, http.StatusForbidden, "NOT_AUTHORIZED"},
	{ErrNotFriends, http.StatusForbidden, "NOT_FRIENDS"},
	{ErrNotOwner, http.StatusForbidden, "NOT_OWNER"},
	{ErrProfileNotFound, http.StatusNotFound, "PROFILE_NOT_FOUND"},
	{ErrPlanNotFound, http.StatusNotFound, "PLAN_NOT_FOUND"},
	{ErrNoPendingRequest, http.StatusNotFound, "NO_PENDING_REQUEST"},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown becomes
// a generic 500 so store errors never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if len(verr.Messages) == 1 {
			return NewHTTPError(http.StatusBadRequest, verr.Messages[0], "VALIDATION_ERROR")
		}
		return NewHTTPError(http.StatusBadRequest, verr.Messages, "VALIDATION_ERROR")
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return NewHTTPError(s.status, s.err.Error(), s.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}

// CodeForStatus picks an error code for errors raised outside the domain,
// such as unknown routes or malformed bodies.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "NOT_AUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status >= http.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
