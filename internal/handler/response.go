package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/suar-net/suar-time/internal/model"
)

// marshalFailureBody is written when a payload cannot be encoded.
const marshalFailureBody = `{"error":{"code":"212090","message":"Internal server error."},"documentation":""}`

// respondWithError sends the failure envelope.
func respondWithError(w http.ResponseWriter, r *http.Request, status int, code, message, documentation string) {
	respondWithJson(w, r, status, model.DTOErrorResponse{
		Error:         model.DTOError{Code: code, Message: message},
		Documentation: documentation,
	})
}

// respondWithJson marshals payload and writes it with the given status.
func respondWithJson(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	dat, err := json.Marshal(payload)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(marshalFailureBody))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(dat)
}
