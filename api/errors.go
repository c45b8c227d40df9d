package api

import (
	"encoding/json"
	"net/http"
)

// User-facing messages are Norwegian, matching the portal frontend.
const (
	msgNotLoggedIn     = "Ikke innlogget."
	msgInvalidSession  = "Ugyldig sesjon."
	msgNoAccess        = "Ingen tilgang."
	msgAthleteNotFound = "Finner ingen utøver med det navnet."
	msgWrongPassword   = "Feil passord."
	msgInvalidUsername = "Ugyldig brukernavn."
	msgInternalError   = "Noe gikk galt."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// decodeJSON reads a size-capped JSON request body into T.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, maxBytes int64) (T, error) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}
