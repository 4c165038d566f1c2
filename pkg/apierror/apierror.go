package apierror

import "fmt"

// APIError is the error shape carried through every layer. Its JSON form is
// the uniform rejection envelope written to clients.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *APIError {
	return &APIError{Message: message, Status: status}
}
