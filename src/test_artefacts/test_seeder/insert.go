package test_seeder

import (
	"context"
	"fmt"

	"placedir/src/domain/entities"
	"placedir/src/infra/postgres"
)

// InsertEstablishment inserts a record directly, bypassing the
// repository under test. The stub's id and timestamps are kept.
func (ts TestSeeder) InsertEstablishment(ctx context.Context, establishment *entities.Establishment) {
	query := `
		INSERT INTO establishments (id, name, category, rating, description, lat, lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := ts.pool.Exec(ctx, query,
		establishment.ID,
		establishment.Name,
		establishment.Category,
		establishment.Rating,
		postgres.NewNullString(establishment.Description),
		establishment.Lat,
		establishment.Lng,
		establishment.CreatedAt,
		establishment.UpdatedAt,
	)
	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertEstablishment failed: %v", err))
	}
}
