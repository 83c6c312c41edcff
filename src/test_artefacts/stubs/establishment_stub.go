package stubs

import (
	"math"
	"time"

	"placedir/src/domain"
	"placedir/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type EstablishmentStub struct {
	establishment entities.Establishment
}

func NewEstablishmentStub() EstablishmentStub {
	now := time.Now().UTC()

	establishment := entities.Establishment{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.Company(),
		Category: gofakeit.RandomString([]string{
			entities.CategoryMall,
			entities.CategoryRestaurant,
			entities.CategoryDormHotel,
			entities.CategoryLandmark,
		}),
		Rating:      math.Round(gofakeit.Float64Range(0, 5)*10) / 10,
		Description: gofakeit.Sentence(8),
		// Coordinates inside the city the directory serves
		Lat:       gofakeit.Float64Range(8.3, 8.6),
		Lng:       gofakeit.Float64Range(124.5, 124.8),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return EstablishmentStub{establishment: establishment}
}

func (es EstablishmentStub) WithID(id string) EstablishmentStub {
	es.establishment.ID = id
	return es
}

func (es EstablishmentStub) WithName(name string) EstablishmentStub {
	es.establishment.Name = name
	return es
}

func (es EstablishmentStub) WithCategory(category string) EstablishmentStub {
	es.establishment.Category = category
	return es
}

func (es EstablishmentStub) WithRating(rating float64) EstablishmentStub {
	es.establishment.Rating = rating
	return es
}

func (es EstablishmentStub) WithDescription(description string) EstablishmentStub {
	es.establishment.Description = description
	return es
}

func (es EstablishmentStub) WithCoordinates(lat, lng float64) EstablishmentStub {
	es.establishment.Lat = lat
	es.establishment.Lng = lng
	return es
}

func (es EstablishmentStub) Get() entities.Establishment {
	return es.establishment
}

// Draft strips the store-assigned fields, producing the payload a
// client would submit.
func (es EstablishmentStub) Draft() domain.EstablishmentDraft {
	return domain.EstablishmentDraft{
		Name:        es.establishment.Name,
		Category:    es.establishment.Category,
		Rating:      es.establishment.Rating,
		Description: es.establishment.Description,
		Lat:         es.establishment.Lat,
		Lng:         es.establishment.Lng,
	}
}
