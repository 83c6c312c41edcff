package directory

import "context"

func (s *DirectoryService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
