package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"travelhub/internal/domain"
)

// envelope is the uniform response shape. Lists set Count, errors set Message
// and, outside production, Error with the underlying detail.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: true, Message: msg})
}

func writeValidation(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: msg})
}

// writeError maps the domain error taxonomy onto status codes: validation
// failures 400, missed lookups 404, everything else a generic 500. The
// underlying error text leaves the process only in dev deployments.
func (h *Handlers) writeError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidation(w, domain.ValidationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: notFoundMsg})
	default:
		log.Error().Err(err).Msg("request failed")
		e := envelope{Success: false, Message: "internal server error"}
		if h.Env == "dev" || h.Env == "development" {
			e.Error = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, e)
	}
}
