package client

import (
	"errors"
	"fmt"
)

// ErrTokenMissing is returned before any request is made when the token is empty.
var ErrTokenMissing = errors.New("token missing")

// HTTPError reports a non-2xx answer from CORE_AUTH.
type HTTPError struct {
	Op         string
	StatusCode int
	Status     string
	// Body is the decoded error document, nil when the body was not JSON.
	Body Document
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s failed: %d", e.Op, e.StatusCode)
}

// IsHTTPStatus reports whether err is an *HTTPError with the given status code.
func IsHTTPStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}
