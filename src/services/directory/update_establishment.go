package directory

import (
	"context"

	"placedir/src/domain"
	"placedir/src/domain/entities"
)

// Update applies a partial patch to an existing record. The id stays
// immutable; untouched fields keep their stored values.
func (s *DirectoryService) Update(ctx context.Context, id string, patch domain.EstablishmentPatch) (entities.Establishment, error) {
	return s.store.Update(ctx, id, patch)
}
