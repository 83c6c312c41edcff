package client_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"placedir/src/client"
)

var _ = Describe("LocateMe", func() {
	var (
		presenter *fakePresenter
		cache     *client.DirectoryCache
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		presenter = &fakePresenter{}
		cache = client.NewDirectoryCache(&fakeListingSource{}, presenter)
	})

	When("the provider returns a position", func() {
		It("centers the map and shows the user marker", func() {
			position := client.LatLng{Lat: 8.5, Lng: 124.6}

			cache.LocateMe(ctx, &fakeLocator{position: position})

			Expect(presenter.centers).To(Equal([]client.LatLng{position}))
			Expect(presenter.userLocations).To(Equal([]client.LatLng{position}))
			Expect(presenter.errors).To(BeEmpty())
		})
	})

	DescribeTable("failure codes map to their fixed messages",
		func(code int, wantSubstring string) {
			cache.LocateMe(ctx, &fakeLocator{err: &client.PositionError{Code: code, Message: "raw cause"}})

			Expect(presenter.errors).To(HaveLen(1))
			Expect(presenter.errors[0]).To(HavePrefix("Geolocation failed: "))
			Expect(presenter.errors[0]).To(ContainSubstring(wantSubstring))
		},
		Entry("permission denied", client.CodePermissionDenied,
			"You denied the request for Geolocation. Please allow location access in your browser settings and try again."),
		Entry("position unavailable", client.CodePositionUnavailable,
			"Location information is unavailable. Please ensure your device's location services are enabled."),
		Entry("timeout", client.CodeTimeout,
			"The request to get user location timed out. Please try again."),
		Entry("unknown error", client.CodeUnknownError,
			"An unknown error occurred. Please try again."),
		Entry("unlisted code falls through to the catch-all", 42,
			"Error message: raw cause (code: 42)"),
	)

	When("the request exceeds the deadline", func() {
		It("reports the timeout message", func() {
			cache.LocateMe(ctx, &fakeLocator{err: context.DeadlineExceeded})

			Expect(presenter.errors).To(HaveLen(1))
			Expect(presenter.errors[0]).To(ContainSubstring("timed out"))
		})
	})

	When("the provider panics synchronously", func() {
		It("recovers and reports the distinct generic alert", func() {
			cache.LocateMe(ctx, &fakeLocator{panicked: "boom"})

			Expect(presenter.errors).To(HaveLen(1))
			Expect(presenter.errors[0]).To(Equal(
				"An unexpected error occurred while trying to get your location: boom"))
		})
	})

	When("no provider is available", func() {
		It("reports geolocation as unsupported", func() {
			cache.LocateMe(ctx, nil)

			Expect(presenter.errors).To(Equal([]string{"Geolocation not supported by this browser."}))
		})
	})
})
