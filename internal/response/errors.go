package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kontentmcp/kontentmcp/internal/kontent"
)

// Error reports a failed tool call. The text names operation and, for
// Kontent.ai API errors, carries the status, request id and validation errors.
func Error(err error, operation string) *mcp.CallToolResult {
	return Errorf(operation, "%s", describe(err))
}

// Errorf reports a failed tool call with a formatted message.
func Errorf(operation, format string, args ...any) *mcp.CallToolResult {
	text := fmt.Sprintf(format, args...)
	if operation != "" {
		text = operation + ": " + text
	}
	res := textResult(text)
	res.IsError = true
	return res
}

func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	var apiErr *kontent.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	var b strings.Builder
	msg := apiErr.Message
	if msg == "" {
		msg = apiErr.Body
	}
	if msg == "" {
		msg = err.Error()
	}
	b.WriteString(msg)
	fmt.Fprintf(&b, " (status %d", apiErr.StatusCode)
	if apiErr.ErrorCode != 0 {
		fmt.Fprintf(&b, ", error code %d", apiErr.ErrorCode)
	}
	if apiErr.RequestID != "" {
		fmt.Fprintf(&b, ", request id %s", apiErr.RequestID)
	}
	b.WriteString(")")
	if len(apiErr.ValidationErrors) > 0 {
		b.WriteString("\nValidation errors:")
		for _, v := range apiErr.ValidationErrors {
			b.WriteString("\n- ")
			if v.Path != "" {
				b.WriteString(v.Path)
				b.WriteString(": ")
			}
			b.WriteString(v.Message)
		}
	}
	return b.String()
}
