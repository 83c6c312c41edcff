package test_seeder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TestSeeder struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) TestSeeder {
	return TestSeeder{pool: pool}
}

func (ts TestSeeder) TruncateTables(ctx context.Context) {
	_, err := ts.pool.Exec(ctx, "TRUNCATE TABLE establishments")
	if err != nil {
		panic(fmt.Sprintf("Failed to truncate establishments: %v", err))
	}
}
