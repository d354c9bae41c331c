package tools

import (
	"fmt"
	"net/url"
)

// Args are the decoded arguments of one tool call.
type Args map[string]any

// Has reports whether key is present with a non-null value.
func (a Args) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// String returns the string at key, or "" when absent or not a string.
func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// RequireString returns the non-empty string at key.
func (a Args) RequireString(key string) (string, error) {
	s := a.String(key)
	if s == "" {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return s, nil
}

// Bool returns the boolean at key and whether it was set.
func (a Args) Bool(key string) (bool, bool) {
	b, ok := a[key].(bool)
	return b, ok
}

// Pick copies the present keys into a request body.
func (a Args) Pick(keys ...string) map[string]any {
	body := make(map[string]any, len(keys))
	for _, k := range keys {
		if a.Has(k) {
			body[k] = a[k]
		}
	}
	return body
}

// apiPath fills format with escaped ids so they cannot break out of their
// path segment.
func apiPath(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
