package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the same error envelope the REST handlers use, so that
// rejections produced before a handler runs look identical to handler errors.
func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"kind":    kind,
			"message": message,
		},
	})
}
