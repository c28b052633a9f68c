package httpapi

import (
	"encoding/json"
	"net/http"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encode errors past WriteHeader are unrecoverable; the client sees a
	// truncated body and the status line already sent.
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}
