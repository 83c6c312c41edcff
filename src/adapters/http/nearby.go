package http

import (
	"net/http"
	"strconv"

	"placedir/src/services/directory"
)

// Nearby returns establishments within a radius of the query point,
// sorted ascending by distance in metres.
func (s *Server) Nearby(w http.ResponseWriter, r *http.Request) {
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

	radius := float64(directory.DefaultNearbyRadiusMeters)
	if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "radius must be a number")
			return
		}
	}

	nearby, err := s.directoryService.Nearby(r.Context(), lat, lng, radius)
	if err != nil {
		s.writeServiceError(w, "Nearby", err)
		return
	}

	s.writeJSON(w, http.StatusOK, nearby)
}
