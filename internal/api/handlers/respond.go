// Package handlers holds the JSON helpers shared by all HTTP handlers. Error
// responses use the store's {"erro": message} envelope.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "Erro interno do servidor"

// ErrorResponse is the error envelope for non-2xx statuses.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// RespondJSON writes v as a JSON response with the given status. A nil v
// writes only the status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError writes the {"erro": message} envelope with the given status.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Erro: message})
}

// RespondBadRequest writes a 400 error envelope.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 error envelope.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError writes the generic 500 error envelope.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON decodes the request body into v. Unknown fields are tolerated.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
