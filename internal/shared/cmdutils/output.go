// Package cmdutils holds small printing helpers shared by the CLI commands.
package cmdutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Mark renders ok as a check or a cross.
func Mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// Truncate shortens s to at most n runes, adding "..." if it was truncated.
// Only the first line of s is kept.
func Truncate(s string, n int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// PrintResponse writes a tool result to w. JSON text is re-indented; anything
// else is written as is.
func PrintResponse(w io.Writer, text string, isError bool) {
	if text == "" {
		return
	}
	if isError {
		fmt.Fprintln(w, "✗ tool returned an error")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err == nil {
		text = buf.String()
	}
	fmt.Fprintln(w, text)
}
