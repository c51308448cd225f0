package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork indicates the request failed or returned a non-2xx status.
	ErrNetwork = errors.New("network error")

	// ErrApplication indicates the server rejected the request with a 4xx status.
	ErrApplication = errors.New("application server error")

	// ErrDecode indicates the response body could not be decoded.
	ErrDecode = errors.New("failed to decode response")
)

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.clientError() {
		return fmt.Sprintf("%v: %s", ErrApplication, e.Status)
	}
	return fmt.Sprintf("%v: %s", ErrNetwork, e.Status)
}

// Is matches ErrNetwork for every status error and ErrApplication for 4xx.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return true
	case ErrApplication:
		return e.clientError()
	}
	return false
}

func (e *StatusError) clientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
