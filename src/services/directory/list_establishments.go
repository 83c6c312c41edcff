package directory

import (
	"context"

	"placedir/src/domain/entities"
)

// List returns every establishment in storage order. Clients fetch
// this once at startup and filter locally; there is no pagination.
func (s *DirectoryService) List(ctx context.Context) ([]entities.Establishment, error) {
	return s.store.ListAll(ctx)
}
