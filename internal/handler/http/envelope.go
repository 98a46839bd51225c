package http

import (
	"net/http"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/utils"
)

// Every response carries exactly one of two envelopes: `{"data": ...}` on
// success, `{"errors": "<message>"}` on failure.

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Errors string `json:"errors"`
}

func writeData(w http.ResponseWriter, r *http.Request, payload any, statusCode int) {
	if _, err := utils.WriteJSON(w, dataEnvelope{Data: payload}, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response body failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	if _, err := utils.WriteJSON(w, errorEnvelope{Errors: message}, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing error body failed")
	}
}
