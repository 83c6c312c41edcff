package domain

import (
	"errors"
	"fmt"

	"placedir/src/domain/entities"
)

var (
	ErrNotFound = errors.New("establishment not found")

	// ErrStoreUnavailable wraps any failure to reach the record
	// store. The HTTP boundary must never leak the driver cause.
	ErrStoreUnavailable = errors.New("record store unavailable")

	ErrUnavailableServer = errors.New("Oops, something unexpected happened. Please try again later.")
)

// ValidationError is a structural payload rejection: the request had
// the wrong shape (a field of the wrong type, malformed JSON). The
// cause message is safe to return to the caller.
type ValidationError struct {
	Cause string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: %s", e.Cause)
}

func NewValidationError(cause error) *ValidationError {
	return &ValidationError{Cause: cause.Error()}
}

// ############################################################
// ################### WRITE-SIDE DTOS ########################
// ############################################################

// EstablishmentDraft is a record as submitted by a client, before the
// store has assigned an id. Fields are forwarded as given; only
// structural mismatches are rejected, no range or enum checks.
type EstablishmentDraft struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// EstablishmentPatch is a partial update. Nil fields are left
// untouched.
type EstablishmentPatch struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Description *string  `json:"description,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// ############################################################
// #################### READ-SIDE VIEWS #######################
// ############################################################

// NearbyEstablishment is a listing hit annotated with its great-circle
// distance from the query point, rounded to whole metres.
type NearbyEstablishment struct {
	entities.Establishment
	DistanceMeters float64 `json:"distance"`
}

// GeocodeResult is a reverse-geocoded human-readable address for a
// coordinate pair.
type GeocodeResult struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
