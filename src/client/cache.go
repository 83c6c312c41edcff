package client

import (
	"context"
	"fmt"

	"placedir/src/domain/entities"
)

// State of the directory cache. The transition Empty -> Loaded
// happens on the first successful fetch and is terminal for the
// process lifetime; no refresh operation exists.
type State int

const (
	StateEmpty State = iota
	StateLoaded
)

// RouteOrigin is the fixed reference point routes start from when the
// user's own location is unknown (the city center).
var RouteOrigin = LatLng{Lat: 8.483, Lng: 124.648}

// ListingSource fetches the full establishment list. The HTTP API
// client implements it.
type ListingSource interface {
	FetchListing(ctx context.Context) ([]entities.Establishment, error)
}

// DirectoryCache holds the client-side copy of the full directory and
// recomputes the visible subset on every filter command. It owns no
// rendering: derived views go to the presenter as VisibleSetChanged.
//
// The cache is single-threaded by contract: commands are discrete,
// non-overlapping input events dispatched by the caller.
type DirectoryCache struct {
	source    ListingSource
	presenter MapPresenter

	state        State
	base         []entities.Establishment
	filter       FilterState
	visible      []entities.Establishment
	userLocation *LatLng
}

func NewDirectoryCache(source ListingSource, presenter MapPresenter) *DirectoryCache {
	return &DirectoryCache{
		source:    source,
		presenter: presenter,
		state:     StateEmpty,
	}
}

func (c *DirectoryCache) State() State { return c.state }

// Visible returns the current visible subset.
func (c *DirectoryCache) Visible() []entities.Establishment { return c.visible }

// Load fetches the full list once and renders it unfiltered. On fetch
// failure the cache stays Empty and the failure is surfaced through
// the presenter instead of leaving the UI silently blank. Calling
// Load on a Loaded cache is a no-op.
func (c *DirectoryCache) Load(ctx context.Context) error {
	if c.state == StateLoaded {
		return nil
	}

	records, err := c.source.FetchListing(ctx)
	if err != nil {
		c.presenter.ShowError("Could not load establishments. Please try again later.")
		return fmt.Errorf("directory fetch failed: %w", err)
	}

	c.base = records
	c.state = StateLoaded
	c.recompute()
	return nil
}

// ApplyFilter consumes a FilterChanged command: merge the changed
// inputs into the filter state, recompute the visible subset from the
// base set, and emit the derived views. Filtering never changes the
// cache state, only the visible subset.
func (c *DirectoryCache) ApplyFilter(cmd FilterChanged) {
	if cmd.Query != nil {
		c.filter.Query = *cmd.Query
	}
	if cmd.Category != nil {
		c.filter.Category = *cmd.Category
	}
	c.recompute()
}

// Select consumes a RecordSelected command: center the map on the
// record and request a route to it from the user's location, or from
// the fixed reference point when the location is unknown.
func (c *DirectoryCache) Select(cmd RecordSelected) error {
	for _, record := range c.base {
		if record.ID == cmd.ID {
			destination := LatLng{Lat: record.Lat, Lng: record.Lng}
			c.presenter.CenterOn(destination)
			c.presenter.RequestRoute(c.routeOrigin(), destination)
			return nil
		}
	}
	return fmt.Errorf("selected record %q is not in the directory", cmd.ID)
}

func (c *DirectoryCache) routeOrigin() LatLng {
	if c.userLocation != nil {
		return *c.userLocation
	}
	return RouteOrigin
}

func (c *DirectoryCache) recompute() {
	c.visible = VisibleSubset(c.base, c.filter)

	change := VisibleSetChanged{
		Entries: make([]ListEntry, 0, len(c.visible)),
		Markers: make([]Marker, 0, len(c.visible)),
	}
	for _, record := range c.visible {
		change.Entries = append(change.Entries, newListEntry(record))
		change.Markers = append(change.Markers, newMarker(record))
	}

	c.presenter.ApplyVisibleSet(change)
}
