package kontent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError is one entry of an API error's validation_errors list.
type ValidationError struct {
	Message  string `json:"message"`
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line,omitempty"`
	Position int    `json:"position,omitempty"`
}

// APIError is a non-2xx response from Kontent.ai.
type APIError struct {
	StatusCode       int               `json:"-"`
	RequestID        string            `json:"request_id,omitempty"`
	ErrorCode        int               `json:"error_code,omitempty"`
	Message          string            `json:"message,omitempty"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
	// Body holds the raw response when it is not a Kontent.ai error document.
	Body string `json:"-"`
}

func newAPIError(status int, raw []byte) *APIError {
	e := &APIError{StatusCode: status}
	if err := json.Unmarshal(raw, e); err != nil || e.Message == "" {
		e.Body = strings.TrimSpace(string(raw))
	}
	return e
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "kontent: %d: %s", e.StatusCode, msg)
	for _, v := range e.ValidationErrors {
		b.WriteString("; ")
		if v.Path != "" {
			b.WriteString(v.Path)
			b.WriteString(": ")
		}
		b.WriteString(v.Message)
	}
	return b.String()
}

// StatusCode returns the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool  { return StatusCode(err) == http.StatusNotFound }
func IsForbidden(err error) bool { return StatusCode(err) == http.StatusForbidden }
