package sequence

import (
	"context"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/usecase/shared"
)

const nextValueSQL = `INSERT INTO sequence_counters (name, value) VALUES ($1, 1)
	ON CONFLICT (name) DO UPDATE SET value = sequence_counters.value + 1
	RETURNING value`

// PostgresAllocator increments a row in sequence_counters. It runs on its own
// connection, so a value taken by a transaction that later rolls back is not reused.
type PostgresAllocator struct {
	db shared.DBTX
}

func NewPostgresAllocator(db shared.DBTX) *PostgresAllocator {
	return &PostgresAllocator{db: db}
}

func (a *PostgresAllocator) Next(ctx context.Context, name string) (int64, error) {
	var v int64
	if err := a.db.QueryRow(ctx, nextValueSQL, name).Scan(&v); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate sequence value", err)
	}
	return v, nil
}
