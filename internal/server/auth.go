package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kontentmcp/kontentmcp/internal/kontent"
)

const environmentVar = "environmentId"

// isGUID accepts only the canonical 8-4-4-4-12 form.
func isGUID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// requireEnvironment rejects routes whose environment id is not a GUID.
func requireEnvironment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isGUID(mux.Vars(r)[environmentVar]) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid environment ID format. Must be a valid GUID.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireBearer rejects requests without a bearer token.
func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := bearerToken(r); !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "Authorization header with Bearer token is required.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// methodNotAllowed answers GET and DELETE on the stateless MCP endpoint.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
		"jsonrpc": "2.0",
		"error":   map[string]any{"code": -32000, "message": "Method not allowed."},
		"id":      nil,
	})
}

// requestCredentials carries the route's environment id and bearer token to
// the tools. Routes without an environment use the configured credentials.
func requestCredentials(r *http.Request) (kontent.Credentials, bool) {
	env := mux.Vars(r)[environmentVar]
	if env == "" {
		return kontent.Credentials{}, false
	}
	token, _ := bearerToken(r)
	return kontent.Credentials{EnvironmentID: env, APIKey: token}, true
}
