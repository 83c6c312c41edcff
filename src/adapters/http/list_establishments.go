package http

import "net/http"

// ListEstablishments returns the full directory as a JSON array in
// storage order. The map client fetches this exactly once at startup.
func (s *Server) ListEstablishments(w http.ResponseWriter, r *http.Request) {
	records, err := s.directoryService.List(r.Context())
	if err != nil {
		s.writeServiceError(w, "ListEstablishments", err)
		return
	}

	s.writeJSON(w, http.StatusOK, records)
}
