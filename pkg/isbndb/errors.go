package isbndb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNoAccessKey = errors.New("isbndb: access key is required")
	ErrUnknownKind = errors.New("isbndb: unknown resource kind")
	ErrReservedArg = errors.New("isbndb: reserved search arg")
)

// APIError is a non-successful response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("isbndb: status %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the request later may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		ErrorMessage string `json:"errorMessage"`
		Message      string `json:"message"`
	}
	msg := http.StatusText(status)
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.ErrorMessage != "":
			msg = payload.ErrorMessage
		case payload.Message != "":
			msg = payload.Message
		}
	} else if s := strings.TrimSpace(string(body)); s != "" && len(s) <= 200 {
		msg = s
	}
	return &APIError{StatusCode: status, Message: msg}
}
