package directory

import (
	"context"

	"placedir/src/domain"
	"placedir/src/domain/entities"
)

// Create persists a draft and returns the stored record with its
// assigned id. The draft is forwarded as given: rating range and
// category values are deliberately not enforced, only the structural
// shape of the payload is (and that already happened at decode time).
func (s *DirectoryService) Create(ctx context.Context, draft domain.EstablishmentDraft) (entities.Establishment, error) {
	return s.store.Insert(ctx, draft)
}
