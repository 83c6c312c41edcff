package client

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// ListEntry is one row of the rendered listing: name, category, a
// star glyph string of length floor(rating), the numeric rating label
// and the description.
type ListEntry struct {
	ID          string
	Name        string
	Category    string
	Stars       string
	RatingLabel string
	Description string
}

// Marker is one map pin for a visible record. IconKey selects the
// category icon, falling back to the default for unrecognized
// categories.
type Marker struct {
	ID       string
	Position LatLng
	IconKey  string
}

// VisibleSetChanged carries the full derived view after a filter
// recomputation: the presentation adapter replaces the listing and
// the marker set with exactly this content.
type VisibleSetChanged struct {
	Entries []ListEntry
	Markers []Marker
}

// MapPresenter is the external map-rendering/routing capability. It
// is consumed, never implemented, by the directory core.
type MapPresenter interface {
	// ApplyVisibleSet replaces the listing and marker set: stale
	// markers removed, markers added for exactly the new set.
	ApplyVisibleSet(change VisibleSetChanged)

	// CenterOn moves the map viewport to the given position.
	CenterOn(position LatLng)

	// RequestRoute asks the routing provider for a route between the
	// two points, replacing any route currently shown.
	RequestRoute(from, to LatLng)

	// ShowUserLocation drops or moves the "you are here" marker.
	ShowUserLocation(position LatLng)

	// ShowError surfaces a blocking, user-visible notification.
	ShowError(message string)
}
