package port_banking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnavailable       = errors.New("banking: service unavailable")
	ErrMalformedResponse = errors.New("banking: malformed response")
)

// ServiceError is a non-success HTTP answer from the remote service.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("banking: service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("banking: service returned status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage extracts the server-provided message carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var se *ServiceError
	if !errors.As(err, &se) {
		return "", false
	}

	msg := strings.TrimSpace(se.Message)
	return msg, msg != ""
}
