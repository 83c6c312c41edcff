package client

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"placedir/src/domain/entities"
)

// DefaultIconKey is the marker icon for unrecognized categories.
const DefaultIconKey = "default"

var categoryIcons = map[string]string{
	entities.CategoryMall:       "shopping",
	entities.CategoryRestaurant: "restaurant",
	entities.CategoryDormHotel:  "hotel",
	entities.CategoryLandmark:   "attraction",
}

// IconKeyFor maps a category to its marker icon key, degrading to
// DefaultIconKey for anything unrecognized.
func IconKeyFor(category string) string {
	if key, ok := categoryIcons[category]; ok {
		return key
	}
	return DefaultIconKey
}

// StarGlyphs renders floor(rating) star characters.
func StarGlyphs(rating float64) string {
	count := int(math.Floor(rating))
	if count < 0 {
		count = 0
	}
	return strings.Repeat("★", count)
}

// RatingLabel renders the numeric rating suffixed with "/5", without
// trailing zeros ("4.5/5", "4/5").
func RatingLabel(rating float64) string {
	return fmt.Sprintf("%s/5", strconv.FormatFloat(rating, 'f', -1, 64))
}

func newListEntry(record entities.Establishment) ListEntry {
	return ListEntry{
		ID:          record.ID,
		Name:        record.Name,
		Category:    record.Category,
		Stars:       StarGlyphs(record.Rating),
		RatingLabel: RatingLabel(record.Rating),
		Description: record.Description,
	}
}

func newMarker(record entities.Establishment) Marker {
	return Marker{
		ID:       record.ID,
		Position: LatLng{Lat: record.Lat, Lng: record.Lng},
		IconKey:  IconKeyFor(record.Category),
	}
}
