package directory

import (
	"context"
	"fmt"

	"placedir/src/domain"
)

// The directory serves Cagayan de Oro; coordinates inside this box
// fall back to the city name when the geocoder returns no city.
const (
	homeCityName   = "Cagayan de Oro City"
	homeCityLatMin = 8.3
	homeCityLatMax = 8.6
	homeCityLngMin = 124.5
	homeCityLngMax = 124.8
)

// ReverseGeocode resolves coordinates to a display address. The
// upstream geocoder is best-effort: any failure degrades to a
// coordinate-formatted fallback address instead of an error, so the
// map client always has something to show.
func (s *DirectoryService) ReverseGeocode(ctx context.Context, lat, lng float64) domain.GeocodeResult {
	fallback := domain.GeocodeResult{
		Address: fmt.Sprintf("%s (Lat: %.6f, Lng: %.6f)", homeCityName, lat, lng),
		Lat:     lat,
		Lng:     lng,
	}

	result, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		s.logger.Warn("reverse geocoding failed", "lat", lat, "lng", lng, "error", err)
		return fallback
	}

	address := assembleAddress(result.Address, lat, lng)
	if address == "" {
		if result.DisplayName != "" {
			fallback.Address = result.DisplayName
		}
		return fallback
	}

	return domain.GeocodeResult{Address: address, Lat: lat, Lng: lng}
}

// assembleAddress builds "neighbourhood, road, city, state" from the
// raw Nominatim address fields, preferring the most specific of the
// alternatives Nominatim uses for each slot.
func assembleAddress(addr map[string]string, lat, lng float64) string {
	if len(addr) == 0 {
		return ""
	}

	var parts []string

	for _, key := range []string{"neighbourhood", "suburb", "village", "quarter"} {
		if addr[key] != "" {
			parts = append(parts, addr[key])
			break
		}
	}

	if addr["road"] != "" {
		parts = append(parts, addr["road"])
	}

	city := addr["city"]
	if city == "" {
		city = addr["town"]
	}
	if city == "" {
		city = addr["municipality"]
	}
	if city != "" {
		parts = append(parts, city)
	} else if lat >= homeCityLatMin && lat <= homeCityLatMax && lng >= homeCityLngMin && lng <= homeCityLngMax {
		parts = append(parts, homeCityName)
	}

	if addr["state"] != "" {
		parts = append(parts, addr["state"])
	}

	if len(parts) == 0 {
		return ""
	}

	address := parts[0]
	for _, part := range parts[1:] {
		address += ", " + part
	}
	return address
}
