package errs

import "net/http"

// HTTPError is the error type returned to API clients.
//
// It satisfies the error interface and serializes directly into the wire
// shape {"Error": "<message>"}.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"Error"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It intentionally does not
// compare status or message; it exists so errors.Is can match the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// NewBadRequestError creates a 400 error carrying a client-facing message.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates a 404 error. Used for unknown routes and missing
// resources; unknown port codes and region slugs are 400s instead, since they
// are malformed input rather than missing resources.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NewTooManyRequestsError creates a 429 error for rate-limited clients.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusTooManyRequests,
		Message: http.StatusText(http.StatusTooManyRequests),
	}
}

// NewInternalServerError creates a generic 500 error. The message is always
// the bare status text; internal detail belongs in logs, not in responses.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
