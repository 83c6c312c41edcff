package http

import (
	"net/http"
	"strconv"
)

// Geocode reverse-geocodes a coordinate pair. Upstream failures are
// absorbed by the service into a fallback address, so this endpoint
// only fails on malformed parameters.
func (s *Server) Geocode(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "lat must be a number")
		return
	}

	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "lng must be a number")
		return
	}

	s.writeJSON(w, http.StatusOK, s.directoryService.ReverseGeocode(r.Context(), lat, lng))
}
