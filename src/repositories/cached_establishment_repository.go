package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"placedir/src/domain"
	"placedir/src/domain/entities"
	"placedir/src/infra/redis"
)

const listingCacheKey = "directory:listing"

// CachedEstablishmentRepository layers a Redis read-through cache
// over the record store's full listing. Every write invalidates the
// cached listing; cache failures degrade to Postgres and are never
// surfaced to callers.
type CachedEstablishmentRepository struct {
	repository  *EstablishmentRepository
	redisClient *redis.RedisClient
	logger      *slog.Logger
}

func NewCachedEstablishmentRepository(
	repository *EstablishmentRepository,
	redisClient *redis.RedisClient,
	logger *slog.Logger,
) *CachedEstablishmentRepository {
	return &CachedEstablishmentRepository{
		repository:  repository,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (r *CachedEstablishmentRepository) ListAll(ctx context.Context) ([]entities.Establishment, error) {
	cachedJSON, found, err := r.redisClient.GetKey(ctx, listingCacheKey)
	if err != nil {
		// Log the cache error but keep serving from Postgres
		r.logger.Warn("listing cache read failed", "error", err)
	}

	if found && err == nil {
		var records []entities.Establishment
		if err := json.Unmarshal([]byte(cachedJSON), &records); err == nil {
			return records, nil
		}
		r.logger.Warn("listing cache held invalid JSON, falling back", "error", err)
	}

	records, err := r.repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres listing failed: %w", err)
	}

	// A populate racing a concurrent write's invalidation can land
	// after it and reinstate a stale listing. The key TTL bounds how
	// long that copy survives.
	go func() {
		ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		encoded, err := json.Marshal(records)
		if err != nil {
			r.logger.Warn("failed to encode listing for cache", "error", err)
			return
		}

		if err := r.redisClient.SetKey(ctxWithTimeout, listingCacheKey, string(encoded)); err != nil {
			r.logger.Warn("failed to populate listing cache", "error", err)
		}
	}()

	return records, nil
}

func (r *CachedEstablishmentRepository) Insert(ctx context.Context, draft domain.EstablishmentDraft) (entities.Establishment, error) {
	record, err := r.repository.Insert(ctx, draft)
	if err != nil {
		return entities.Establishment{}, err
	}

	r.invalidateListing()
	return record, nil
}

func (r *CachedEstablishmentRepository) GetByID(ctx context.Context, id string) (entities.Establishment, error) {
	return r.repository.GetByID(ctx, id)
}

func (r *CachedEstablishmentRepository) Update(ctx context.Context, id string, patch domain.EstablishmentPatch) (entities.Establishment, error) {
	record, err := r.repository.Update(ctx, id, patch)
	if err != nil {
		return entities.Establishment{}, err
	}

	r.invalidateListing()
	return record, nil
}

func (r *CachedEstablishmentRepository) Delete(ctx context.Context, id string) error {
	if err := r.repository.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidateListing()
	return nil
}

func (r *CachedEstablishmentRepository) invalidateListing() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.redisClient.Invalidate(ctx, listingCacheKey); err != nil {
			r.logger.Warn("failed to invalidate listing cache", "error", err)
		}
	}()
}
