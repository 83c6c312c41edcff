package client

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// LocateTimeout bounds a single position request.
const LocateTimeout = 10 * time.Second

// Platform-defined geolocation failure codes.
const (
	CodeUnknownError        = 0
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// PositionError is a geolocation failure reported asynchronously by
// the platform provider.
type PositionError struct {
	Code    int
	Message string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("geolocation error %d: %s", e.Code, e.Message)
}

// Locator acquires the device position. The implementation wraps
// whatever platform capability is available; the core never
// implements it.
type Locator interface {
	CurrentPosition(ctx context.Context) (LatLng, error)
}

// locateFailureMessage maps every platform failure code to its fixed
// user-facing message. Unlisted codes fall through to the catch-all
// carrying the raw code and message.
func locateFailureMessage(posErr *PositionError) string {
	const prefix = "Geolocation failed: "
	switch posErr.Code {
	case CodePermissionDenied:
		return prefix + "You denied the request for Geolocation. Please allow location access in your browser settings and try again."
	case CodePositionUnavailable:
		return prefix + "Location information is unavailable. Please ensure your device's location services are enabled."
	case CodeTimeout:
		return prefix + "The request to get user location timed out. Please try again."
	case CodeUnknownError:
		return prefix + "An unknown error occurred. Please try again."
	default:
		return prefix + fmt.Sprintf("Error message: %s (code: %d)", posErr.Message, posErr.Code)
	}
}

// LocateMe requests the device position with the 10-second timeout,
// centers the map on it and drops the user marker. Failures surface
// as blocking notifications with the enumerated messages; a panicking
// provider is recovered and reported with a distinct generic alert.
// There is no guard against overlapping requests: a second call while
// one is pending simply issues a second request.
func (c *DirectoryCache) LocateMe(ctx context.Context, locator Locator) {
	defer func() {
		if r := recover(); r != nil {
			c.presenter.ShowError(fmt.Sprintf("An unexpected error occurred while trying to get your location: %v", r))
		}
	}()

	if locator == nil {
		c.presenter.ShowError("Geolocation not supported by this browser.")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, LocateTimeout)
	defer cancel()

	position, err := locator.CurrentPosition(ctx)
	if err != nil {
		var posErr *PositionError
		switch {
		case errors.As(err, &posErr):
			c.presenter.ShowError(locateFailureMessage(posErr))
		case errors.Is(err, context.DeadlineExceeded):
			c.presenter.ShowError(locateFailureMessage(&PositionError{Code: CodeTimeout}))
		default:
			c.presenter.ShowError(locateFailureMessage(&PositionError{Code: CodeUnknownError}))
		}
		return
	}

	c.userLocation = &position
	c.presenter.CenterOn(position)
	c.presenter.ShowUserLocation(position)
}
