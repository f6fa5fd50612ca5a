package api

import "fmt"

// ErrResponse represents a non successful response from the Python API.
type ErrResponse struct {
	StatusCode int
	Message    string
}

// Satisfy the error interface.
func (e ErrResponse) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Python API responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("Python API responded with status %d: %s", e.StatusCode, e.Message)
}
