package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"placedir/src/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to write JSON response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorBody{Error: message})
}

// writeServiceError maps the domain error taxonomy onto HTTP.
// Validation causes are safe to return; store failures are logged
// server-side and replaced with the generic message.
func (s *Server) writeServiceError(w http.ResponseWriter, op string, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		s.writeError(w, http.StatusBadRequest, validationErr.Cause)
	case errors.Is(err, domain.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error("request failed", "op", op, "error", err)
		s.writeError(w, http.StatusInternalServerError, domain.ErrUnavailableServer.Error())
	}
}
