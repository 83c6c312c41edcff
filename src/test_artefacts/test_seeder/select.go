package test_seeder

import (
	"context"

	"placedir/src/domain/entities"
)

func (ts TestSeeder) SelectEstablishmentsByIDs(ctx context.Context, ids []string) ([]entities.Establishment, error) {
	query := `
		SELECT id, name, category, rating, COALESCE(description, ''), lat, lng, created_at, updated_at
		FROM establishments
		WHERE id = ANY($1)
		ORDER BY created_at, id`

	rows, err := ts.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entities.Establishment
	for rows.Next() {
		var record entities.Establishment
		err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Category,
			&record.Rating,
			&record.Description,
			&record.Lat,
			&record.Lng,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
