package api

import "errors"

// Error is an application-level failure: the API answered, and the body
// carried a message field. The server uses this convention on any status
// code, including 200, so it is detected from the body alone.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsApplication reports whether err is an application-level API error,
// as opposed to a transport failure.
func IsApplication(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
