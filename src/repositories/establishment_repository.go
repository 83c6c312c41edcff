package repositories

import (
	"context"
	"fmt"

	"placedir/src/domain"
	"placedir/src/domain/entities"
	"placedir/src/infra/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EstablishmentRepository is the record store: durable persistence of
// establishments over Postgres. It assigns the opaque id at insert;
// all query logic beyond materializing the full list lives in the
// callers.
type EstablishmentRepository struct {
	pool *pgxpool.Pool
}

func NewEstablishmentRepository(pool *pgxpool.Pool) *EstablishmentRepository {
	return &EstablishmentRepository{pool: pool}
}

// storeErr keeps the driver cause in the message while letting
// callers match domain.ErrStoreUnavailable. The cause is for
// server-side logs only and must not reach HTTP responses.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStoreUnavailable)
}

// Insert persists a draft and returns the stored record with its
// newly assigned id. Fields are stored as given, no coercion.
func (r *EstablishmentRepository) Insert(ctx context.Context, draft domain.EstablishmentDraft) (entities.Establishment, error) {
	record := entities.Establishment{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Category:    draft.Category,
		Rating:      draft.Rating,
		Description: draft.Description,
		Lat:         draft.Lat,
		Lng:         draft.Lng,
	}

	query := `
		INSERT INTO establishments (id, name, category, rating, description, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		record.ID,
		record.Name,
		record.Category,
		record.Rating,
		postgres.NewNullString(record.Description),
		record.Lat,
		record.Lng,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return entities.Establishment{}, storeErr("EstablishmentRepository.Insert - insert failed", err)
	}

	return record, nil
}

// ListAll returns every record in storage (insertion) order, fully
// materialized. No filtering or sorting happens here.
func (r *EstablishmentRepository) ListAll(ctx context.Context) ([]entities.Establishment, error) {
	query := `
		SELECT id, name, category, rating, description, lat, lng, created_at, updated_at
		FROM establishments
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("EstablishmentRepository.ListAll - query failed", err)
	}
	defer rows.Close()

	records := make([]entities.Establishment, 0)
	for rows.Next() {
		record, err := scanEstablishment(rows.Scan)
		if err != nil {
			return nil, storeErr("EstablishmentRepository.ListAll - scan failed", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("EstablishmentRepository.ListAll - row iteration failed", err)
	}

	return records, nil
}

func (r *EstablishmentRepository) GetByID(ctx context.Context, id string) (entities.Establishment, error) {
	query := `
		SELECT id, name, category, rating, description, lat, lng, created_at, updated_at
		FROM establishments
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	record, err := scanEstablishment(row.Scan)
	if err != nil {
		if postgres.IsNoRows(err) {
			return entities.Establishment{}, fmt.Errorf("EstablishmentRepository.GetByID - %s: %w", id, domain.ErrNotFound)
		}
		return entities.Establishment{}, storeErr("EstablishmentRepository.GetByID - query failed", err)
	}

	return record, nil
}

// Update applies a partial patch. Nil patch fields keep the stored
// value. The id itself is immutable.
func (r *EstablishmentRepository) Update(ctx context.Context, id string, patch domain.EstablishmentPatch) (entities.Establishment, error) {
	query := `
		UPDATE establishments SET
			name = COALESCE($2, name),
			category = COALESCE($3, category),
			rating = COALESCE($4, rating),
			description = COALESCE($5, description),
			lat = COALESCE($6, lat),
			lng = COALESCE($7, lng),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, category, rating, description, lat, lng, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, id,
		patch.Name,
		patch.Category,
		patch.Rating,
		patch.Description,
		patch.Lat,
		patch.Lng,
	)
	record, err := scanEstablishment(row.Scan)
	if err != nil {
		if postgres.IsNoRows(err) {
			return entities.Establishment{}, fmt.Errorf("EstablishmentRepository.Update - %s: %w", id, domain.ErrNotFound)
		}
		return entities.Establishment{}, storeErr("EstablishmentRepository.Update - update failed", err)
	}

	return record, nil
}

func (r *EstablishmentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM establishments WHERE id = $1`, id)
	if err != nil {
		return storeErr("EstablishmentRepository.Delete - delete failed", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("EstablishmentRepository.Delete - %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanEstablishment(scan func(dest ...any) error) (entities.Establishment, error) {
	var record entities.Establishment
	var description *string

	err := scan(
		&record.ID,
		&record.Name,
		&record.Category,
		&record.Rating,
		&description,
		&record.Lat,
		&record.Lng,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return entities.Establishment{}, err
	}

	if description != nil {
		record.Description = *description
	}

	return record, nil
}
