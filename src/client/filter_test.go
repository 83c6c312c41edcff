package client_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"placedir/src/client"
	"placedir/src/domain/entities"
	"placedir/src/test_artefacts/stubs"
)

var _ = Describe("VisibleSubset", func() {
	var base []entities.Establishment

	BeforeEach(func() {
		base = []entities.Establishment{
			stubs.NewEstablishmentStub().
				WithID("ayala").
				WithName("Ayala Mall").
				WithCategory(entities.CategoryMall).
				WithDescription("Big mall").
				Get(),
			stubs.NewEstablishmentStub().
				WithID("sm").
				WithName("SM").
				WithCategory(entities.CategoryMall).
				WithDescription("Shopping center downtown").
				Get(),
			stubs.NewEstablishmentStub().
				WithID("bigbys").
				WithName("Bigby's").
				WithCategory(entities.CategoryRestaurant).
				WithDescription("Family restaurant").
				Get(),
			stubs.NewEstablishmentStub().
				WithID("divisoria").
				WithName("Divisoria Night Market").
				WithCategory(entities.CategoryLandmark).
				WithDescription("").
				Get(),
		}
	})

	Context("text filter", func() {
		When("the query is empty", func() {
			It("returns the full base set", func() {
				visible := client.VisibleSubset(base, client.FilterState{})

				Expect(visible).To(Equal(base))
			})
		})

		When("the query matches names and categories", func() {
			It("returns every record matching on at least one text field", func() {
				// "mall" matches "Ayala Mall" by name and "SM" by
				// category; exact membership, nothing else
				visible := client.VisibleSubset(base, client.FilterState{Query: "mall"})

				Expect(ids(visible)).To(Equal([]string{"ayala", "sm"}))
			})
		})

		When("the query matches case-insensitively", func() {
			It("case-folds both sides", func() {
				visible := client.VisibleSubset(base, client.FilterState{Query: "BIGBY"})

				Expect(ids(visible)).To(Equal([]string{"bigbys"}))
			})
		})

		When("the query matches a description substring", func() {
			It("matches inside the description", func() {
				visible := client.VisibleSubset(base, client.FilterState{Query: "downtown"})

				Expect(ids(visible)).To(Equal([]string{"sm"}))
			})
		})

		When("a record has no description", func() {
			It("still matches on the other fields", func() {
				visible := client.VisibleSubset(base, client.FilterState{Query: "night"})

				Expect(ids(visible)).To(Equal([]string{"divisoria"}))
			})
		})

		It("always yields a subset of the base set satisfying the predicate", func() {
			for _, query := range []string{"", "a", "mall", "restaurant", "zzz", "NIGHT"} {
				visible := client.VisibleSubset(base, client.FilterState{Query: query})

				Expect(len(visible)).To(BeNumerically("<=", len(base)))
				for _, record := range visible {
					Expect(base).To(ContainElement(record))
				}
			}
		})
	})

	Context("category filter", func() {
		When("no category is selected", func() {
			It("returns the full base set", func() {
				visible := client.VisibleSubset(base, client.FilterState{Category: ""})

				Expect(visible).To(Equal(base))
			})
		})

		When("a category is selected", func() {
			It("returns exactly the records of that category, in base order", func() {
				visible := client.VisibleSubset(base, client.FilterState{Category: entities.CategoryMall})

				Expect(ids(visible)).To(Equal([]string{"ayala", "sm"}))
			})
		})

		It("matches exactly and case-sensitively", func() {
			visible := client.VisibleSubset(base, client.FilterState{Category: "mall"})

			Expect(visible).To(BeEmpty())
		})
	})

	Context("combined filters", func() {
		It("applies both predicates", func() {
			visible := client.VisibleSubset(base, client.FilterState{
				Query:    "mall",
				Category: entities.CategoryMall,
			})

			Expect(ids(visible)).To(Equal([]string{"ayala", "sm"}))

			visible = client.VisibleSubset(base, client.FilterState{
				Query:    "ayala",
				Category: entities.CategoryMall,
			})

			Expect(ids(visible)).To(Equal([]string{"ayala"}))
		})

		It("returns nothing when the predicates are disjoint", func() {
			visible := client.VisibleSubset(base, client.FilterState{
				Query:    "ayala",
				Category: entities.CategoryRestaurant,
			})

			Expect(visible).To(BeEmpty())
		})
	})
})

func ids(records []entities.Establishment) []string {
	result := make([]string, 0, len(records))
	for _, record := range records {
		result = append(result, record.ID)
	}
	return result
}
