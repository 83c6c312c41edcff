package directory_test

import (
	"context"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"placedir/src/domain"
	"placedir/src/domain/entities"
	"placedir/src/services/directory"
	"placedir/src/test_artefacts/comparer"
	"placedir/src/test_artefacts/stubs"
)

var _ = Describe("DirectoryService", func() {
	var (
		store   *fakeStore
		service *directory.DirectoryService
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = &fakeStore{}
		service = directory.NewDirectoryService(store, &fakeGeocoder{}, slog.Default())
	})

	Context("creating establishments", func() {
		It("round-trips every field and assigns a fresh id", func() {
			draft := domain.EstablishmentDraft{
				Name:        "Ayala Mall",
				Category:    entities.CategoryMall,
				Rating:      4.5,
				Description: "Big mall",
				Lat:         8.48,
				Lng:         124.65,
			}

			created, err := service.Create(ctx, draft)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())

			listed, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(1))
			Expect(listed[0]).To(BeComparableTo(created, comparer.TimeWithinTolerance(200)))
			Expect(listed[0].Name).To(Equal(draft.Name))
			Expect(listed[0].Rating).To(Equal(draft.Rating))
			Expect(listed[0].Description).To(Equal(draft.Description))
		})

		It("forwards drafts without rating range or category checks", func() {
			created, err := service.Create(ctx, domain.EstablishmentDraft{
				Name:     "Sketchy Place",
				Category: "Not A Real Category",
				Rating:   9.9,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Rating).To(Equal(9.9))
			Expect(created.Category).To(Equal("Not A Real Category"))
		})

		It("propagates store unavailability", func() {
			store.failErr = domain.ErrStoreUnavailable

			_, err := service.Create(ctx, stubs.NewEstablishmentStub().Draft())

			Expect(errors.Is(err, domain.ErrStoreUnavailable)).To(BeTrue())
		})
	})

	Context("listing establishments", func() {
		It("returns records in insertion order and is idempotent", func() {
			first, err := service.Create(ctx, stubs.NewEstablishmentStub().WithName("First").Draft())
			Expect(err).NotTo(HaveOccurred())
			second, err := service.Create(ctx, stubs.NewEstablishmentStub().WithName("Second").Draft())
			Expect(err).NotTo(HaveOccurred())

			listedOnce, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			listedTwice, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(listedOnce).To(Equal(listedTwice))
			Expect(listedOnce[0].ID).To(Equal(first.ID))
			Expect(listedOnce[1].ID).To(Equal(second.ID))
		})

		It("propagates store unavailability without masking it", func() {
			store.failErr = domain.ErrStoreUnavailable

			_, err := service.List(ctx)

			Expect(errors.Is(err, domain.ErrStoreUnavailable)).To(BeTrue())
		})
	})

	Context("id-addressed operations", func() {
		It("gets, patches and deletes by id", func() {
			created, err := service.Create(ctx, stubs.NewEstablishmentStub().WithName("Original").Draft())
			Expect(err).NotTo(HaveOccurred())

			fetched, err := service.Get(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(Equal(created))

			newName := "Renamed"
			updated, err := service.Update(ctx, created.ID, domain.EstablishmentPatch{Name: &newName})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Renamed"))
			Expect(updated.ID).To(Equal(created.ID))
			Expect(updated.Category).To(Equal(created.Category))

			Expect(service.Delete(ctx, created.ID)).To(Succeed())

			_, err = service.Get(ctx, created.ID)
			Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())
		})

		It("reports not-found for unknown ids", func() {
			_, err := service.Get(ctx, "missing")
			Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())

			Expect(errors.Is(service.Delete(ctx, "missing"), domain.ErrNotFound)).To(BeTrue())
		})
	})

	Context("nearby search", func() {
		BeforeEach(func() {
			// 0.01 degrees of latitude is roughly 1112 metres
			seed := []struct {
				name     string
				lat, lng float64
			}{
				{"Center", 8.48, 124.65},
				{"North", 8.49, 124.65},
				{"Far", 9.48, 124.65},
			}
			for _, s := range seed {
				_, err := service.Create(ctx, domain.EstablishmentDraft{Name: s.name, Lat: s.lat, Lng: s.lng})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("returns records within the radius sorted by rounded distance", func() {
			nearby, err := service.Nearby(ctx, 8.48, 124.65, 5000)

			Expect(err).NotTo(HaveOccurred())
			Expect(nearby).To(HaveLen(2))
			Expect(nearby[0].Name).To(Equal("Center"))
			Expect(nearby[0].DistanceMeters).To(Equal(0.0))
			Expect(nearby[1].Name).To(Equal("North"))
			Expect(nearby[1].DistanceMeters).To(BeNumerically("~", 1112, 1))
		})

		It("excludes everything outside a tight radius", func() {
			nearby, err := service.Nearby(ctx, 8.48, 124.65, 100)

			Expect(err).NotTo(HaveOccurred())
			Expect(nearby).To(HaveLen(1))
			Expect(nearby[0].Name).To(Equal("Center"))
		})
	})
})
