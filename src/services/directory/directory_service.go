package directory

import (
	"context"
	"log/slog"

	"placedir/src/domain"
	"placedir/src/domain/entities"
	"placedir/src/infra/nominatim"
)

// RecordStore is the persistence contract the service runs on. The
// concrete implementation is EstablishmentRepository, optionally
// wrapped by the Redis listing cache.
type RecordStore interface {
	Insert(ctx context.Context, draft domain.EstablishmentDraft) (entities.Establishment, error)
	ListAll(ctx context.Context) ([]entities.Establishment, error)
	GetByID(ctx context.Context, id string) (entities.Establishment, error)
	Update(ctx context.Context, id string, patch domain.EstablishmentPatch) (entities.Establishment, error)
	Delete(ctx context.Context, id string) error
}

// Geocoder resolves coordinates to a raw reverse-geocoding result.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (*nominatim.ReverseResult, error)
}

// DirectoryService is the request/response contract layered over the
// record store. Thin, but the semantics must stay exact: create
// forwards drafts without range or enum checks, list returns storage
// order, store failures surface as a generic message at the boundary.
type DirectoryService struct {
	store    RecordStore
	geocoder Geocoder
	logger   *slog.Logger
}

func NewDirectoryService(store RecordStore, geocoder Geocoder, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		store:    store,
		geocoder: geocoder,
		logger:   logger,
	}
}
