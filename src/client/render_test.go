package client_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"placedir/src/client"
	"placedir/src/domain/entities"
)

var _ = Describe("StarGlyphs", func() {
	It("renders floor(rating) stars across the whole range", func() {
		cases := map[float64]int{
			0:    0,
			0.5:  0,
			1:    1,
			2.9:  2,
			4.5:  4,
			4.99: 4,
			5:    5,
		}

		for rating, want := range cases {
			stars := client.StarGlyphs(rating)
			Expect([]rune(stars)).To(HaveLen(want), "rating %v", rating)
		}
	})

	It("never renders a negative count", func() {
		Expect(client.StarGlyphs(-1)).To(BeEmpty())
	})
})

var _ = Describe("RatingLabel", func() {
	It("formats the numeric rating over five", func() {
		Expect(client.RatingLabel(4.5)).To(Equal("4.5/5"))
		Expect(client.RatingLabel(4)).To(Equal("4/5"))
	})
})

var _ = Describe("IconKeyFor", func() {
	It("maps the recognized categories to their icons", func() {
		Expect(client.IconKeyFor(entities.CategoryMall)).To(Equal("shopping"))
		Expect(client.IconKeyFor(entities.CategoryRestaurant)).To(Equal("restaurant"))
		Expect(client.IconKeyFor(entities.CategoryDormHotel)).To(Equal("hotel"))
		Expect(client.IconKeyFor(entities.CategoryLandmark)).To(Equal("attraction"))
	})

	It("degrades gracefully for unrecognized categories", func() {
		Expect(client.IconKeyFor("Karaoke Bar")).To(Equal(client.DefaultIconKey))
		Expect(client.IconKeyFor("")).To(Equal(client.DefaultIconKey))
	})
})
