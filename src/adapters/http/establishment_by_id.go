package http

import (
	"encoding/json"
	"net/http"

	"placedir/src/domain"
)

func (s *Server) GetEstablishment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	record, err := s.directoryService.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, "GetEstablishment", err)
		return
	}

	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) UpdateEstablishment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	var patch domain.EstablishmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeServiceError(w, "UpdateEstablishment", domain.NewValidationError(err))
		return
	}

	record, err := s.directoryService.Update(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, "UpdateEstablishment", err)
		return
	}

	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) DeleteEstablishment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := s.directoryService.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, "DeleteEstablishment", err)
		return
	}

	s.writeJSON(w, http.StatusOK, messageBody{Message: "Deleted"})
}
