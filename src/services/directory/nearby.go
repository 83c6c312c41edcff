package directory

import (
	"context"
	"math"
	"sort"

	"placedir/src/domain"
)

const earthRadiusMeters = 6371000

// DefaultNearbyRadiusMeters is used when the caller omits the radius.
const DefaultNearbyRadiusMeters = 5000

// Nearby returns every establishment within radius metres of the
// query point, sorted ascending by great-circle distance. Distances
// are rounded to whole metres.
func (s *DirectoryService) Nearby(ctx context.Context, lat, lng, radius float64) ([]domain.NearbyEstablishment, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]domain.NearbyEstablishment, 0)
	for _, record := range records {
		distance := haversineMeters(lat, lng, record.Lat, record.Lng)
		if distance <= radius {
			nearby = append(nearby, domain.NearbyEstablishment{
				Establishment:  record,
				DistanceMeters: math.Round(distance),
			})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}

func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
