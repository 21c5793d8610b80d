package bootstrap

import (
	"context"
	"log/slog"

	"marketplace-core/internal/infra/notify"
	"marketplace-core/internal/infra/repository"
	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
		NewDispatcher,
		func(d *notify.Dispatcher) shared.EventDispatcher { return d },
	),
)

// NewNotifier builds the transport named by NOTIFY_BACKEND.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Notifier, error) {
	logger.Info("Notification transport selected", "backend", cfg.Notify.Backend)

	if cfg.Notify.Backend != config.NotifyBackendAMQP {
		return notify.NewLogNotifier(logger), nil
	}

	n, err := notify.NewAMQPNotifier(cfg.Notify)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n, nil
}

// NewDispatcher resolves recipients through the user repository. Pending deliveries are
// drained on stop before the transport closes.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config, users *repository.UserRepository, notifier notify.Notifier, logger *slog.Logger) *notify.Dispatcher {
	d := notify.NewDispatcher(users, notifier, cfg.Notify.Timeout, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Wait(ctx)
		},
	})
	return d
}
