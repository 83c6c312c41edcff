package directory

import (
	"context"

	"placedir/src/domain/entities"
)

func (s *DirectoryService) Get(ctx context.Context, id string) (entities.Establishment, error) {
	return s.store.GetByID(ctx, id)
}
