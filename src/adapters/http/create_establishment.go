package http

import (
	"encoding/json"
	"net/http"

	"placedir/src/domain"
)

// CreateEstablishment decodes a draft and persists it. Only the
// structural shape is checked: a field of the wrong JSON type is a
// 400 with the decoder's cause message; missing fields, out-of-range
// ratings and unknown categories all pass through as given.
func (s *Server) CreateEstablishment(w http.ResponseWriter, r *http.Request) {
	var draft domain.EstablishmentDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeServiceError(w, "CreateEstablishment", domain.NewValidationError(err))
		return
	}

	record, err := s.directoryService.Create(r.Context(), draft)
	if err != nil {
		s.writeServiceError(w, "CreateEstablishment", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, record)
}
