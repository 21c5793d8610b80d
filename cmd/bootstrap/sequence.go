package bootstrap

import (
	"context"
	"log/slog"

	"marketplace-core/internal/infra/sequence"
	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var SequenceModule = fx.Module("sequence",
	fx.Provide(
		NewSequenceAllocator,
	),
)

// NewSequenceAllocator builds the allocator named by SEQUENCE_BACKEND.
func NewSequenceAllocator(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (shared.SequenceAllocator, error) {
	logger.Info("Sequence allocator selected", "backend", cfg.Sequence.Backend)

	switch cfg.Sequence.Backend {
	case config.SequenceBackendRedis:
		client, err := sequence.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return sequence.NewRedisAllocator(client, cfg.Redis.KeyPrefix), nil

	case config.SequenceBackendDynamoDB:
		client, err := sequence.NewDynamoClient(context.Background(), cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return sequence.NewDynamoAllocator(client, cfg.DynamoDB.Table), nil

	default:
		return sequence.NewPostgresAllocator(pool), nil
	}
}
