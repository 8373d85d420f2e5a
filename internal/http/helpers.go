package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"moneytracker/internal/core"
)

// writeJSON renders a success payload. All success paths go through here
// so the API keeps one shape.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes and renders
// {"error": "..."}.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrInvalidKind):
		code = http.StatusBadRequest
	case errors.Is(err, core.ErrIndexOutOfRange):
		code = http.StatusNotFound
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// sanitizeInput trims whitespace and strips control characters from
// user-supplied text fields.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
