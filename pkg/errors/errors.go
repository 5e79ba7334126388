package errors

import "fmt"

// HTTPError is a domain error annotated with the status code the
// delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError builds an HTTPError for delivery-layer error mapping.
func NewHTTPError(status int, message string) HTTPError {
	return HTTPError{StatusCode: status, Message: message}
}
