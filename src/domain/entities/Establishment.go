package entities

import "time"

// Establishment is the single record type of the directory: a
// point-of-interest rendered as a marker on the map client.
type Establishment struct {
	// ID is opaque to callers. The record store assigns it exactly
	// once at insert; it never changes afterwards.
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`

	// Bookkeeping columns. They order ListAll and are not part of
	// the public wire format.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Display categories with a dedicated marker icon. Anything else is
// allowed and falls back to the default icon.
const (
	CategoryMall       = "Mall"
	CategoryRestaurant = "Restaurant"
	CategoryDormHotel  = "Dorm/Hotel"
	CategoryLandmark   = "Landmark"
)
